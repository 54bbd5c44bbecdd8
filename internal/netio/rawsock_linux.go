//go:build linux

package netio

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// -------------------------------------------------------------------------
// PacketSocket — AF_PACKET raw socket for zappi frames
// -------------------------------------------------------------------------

// PacketSocket is an open AF_PACKET raw socket filtered to the zappi
// EtherType. It is created unconfigured by Open, joined to the multicast
// group by JoinMulticast, and relocated to the fixed handoff descriptor
// by Handoff. There is exactly one owner at any time.
type PacketSocket struct {
	fd     int
	closed bool
	mu     sync.Mutex
}

// Open creates a raw link-layer socket receiving frames with EtherType
// 0x88b5. The protocol is passed in network byte order, as AF_PACKET
// requires.
//
// Creating the socket needs CAP_NET_RAW; without it the kernel returns
// EPERM and Open fails.
func Open() (*PacketSocket, error) {
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(hostToNet16(EtherTypeZappi)))
	if err != nil {
		return nil, fmt.Errorf("open AF_PACKET socket (proto 0x%04x): %w", EtherTypeZappi, err)
	}

	return &PacketSocket{fd: fd}, nil
}

// Fd returns the underlying descriptor number.
func (s *PacketSocket) Fd() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fd
}

// JoinMulticast adds the socket's membership in the given hardware
// multicast group on the interface identified by ifindex. The kernel
// reference-counts memberships, so concurrent launchers on the same
// interface do not conflict.
func (s *PacketSocket) JoinMulticast(ifindex int, group HardwareAddr) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSocketClosed
	}

	mreq := multicastMreq(ifindex, group)
	if err := unix.SetsockoptPacketMreq(s.fd, unix.SOL_PACKET, unix.PACKET_ADD_MEMBERSHIP, &mreq); err != nil {
		return fmt.Errorf("join multicast group %s on ifindex %d: %w", group, ifindex, err)
	}

	return nil
}

// Handoff relocates the socket to the target descriptor number and closes
// the original descriptor. The duplicate is created with dup3 flags 0, so
// it is not close-on-exec and survives process image replacement.
//
// Dup3 is used rather than Dup2 because newer Linux ports (arm64,
// riscv64) have no dup2 syscall.
func (s *PacketSocket) Handoff(target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSocketClosed
	}

	if s.fd == target {
		// Already at the target slot; unix.Socket descriptors are not
		// close-on-exec unless SOCK_CLOEXEC was requested, and it was not.
		return nil
	}

	if err := unix.Dup3(s.fd, target, 0); err != nil {
		return fmt.Errorf("dup socket onto fd %d: %w", target, err)
	}

	if err := unix.Close(s.fd); err != nil {
		return fmt.Errorf("close original socket fd %d: %w", s.fd, err)
	}

	s.fd = target
	return nil
}

// Close releases the socket. Closing an already-closed socket is a no-op.
func (s *PacketSocket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if err := unix.Close(s.fd); err != nil {
		return fmt.Errorf("close packet socket: %w", err)
	}
	return nil
}

// multicastMreq builds the packet_mreq structure for a
// PACKET_ADD_MEMBERSHIP request: interface index, PACKET_MR_MULTICAST,
// address length 6, and the raw group address bytes.
func multicastMreq(ifindex int, group HardwareAddr) unix.PacketMreq {
	mreq := unix.PacketMreq{
		Ifindex: int32(ifindex),
		Type:    unix.PACKET_MR_MULTICAST,
		Alen:    groupAddrLen,
	}
	copy(mreq.Address[:], group[:])
	return mreq
}
