//go:build !linux

package netio

// PacketSocket is a placeholder on platforms without AF_PACKET sockets.
// Raw link-layer sockets are a Linux-family facility; there is no
// portable equivalent, so every operation reports ErrUnsupported.
type PacketSocket struct{}

// Open always fails on non-Linux platforms.
func Open() (*PacketSocket, error) {
	return nil, ErrUnsupported
}

// Fd returns an invalid descriptor.
func (s *PacketSocket) Fd() int { return -1 }

// JoinMulticast always fails on non-Linux platforms.
func (s *PacketSocket) JoinMulticast(int, HardwareAddr) error { return ErrUnsupported }

// Handoff always fails on non-Linux platforms.
func (s *PacketSocket) Handoff(int) error { return ErrUnsupported }

// Close is a no-op on non-Linux platforms.
func (s *PacketSocket) Close() error { return nil }
