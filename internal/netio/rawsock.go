package netio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
)

// -------------------------------------------------------------------------
// Wire Constants — fixed by the zappi sender, bit-exact
// -------------------------------------------------------------------------

const (
	// EtherTypeZappi is the EtherType zappi uses for its sensor broadcast
	// frames. 0x88b5 is reserved for local experimental use, so nothing
	// else on the LAN should be speaking it.
	EtherTypeZappi uint16 = 0x88b5

	// HandoffFD is the descriptor number at which the configured socket is
	// handed to the child process. The sensor readers hard-code
	// socket.fromfd(42, ...), so this number is part of the contract.
	// 42 is chosen to stay clear of 0/1/2 and anything a child opens early.
	HandoffFD = 42

	// groupAddrLen is the length of an Ethernet hardware address.
	groupAddrLen = 6
)

// HardwareAddr is a 6-byte Ethernet hardware address.
type HardwareAddr [groupAddrLen]byte

// ZappiGroup is the hardware multicast group zappi sends its frames to.
var ZappiGroup = HardwareAddr{0x71, 0xb3, 0xd5, 0x3a, 0x6f, 0x00}

// String formats the address in the usual colon-separated form,
// e.g. "71:b3:d5:3a:6f:00".
func (a HardwareAddr) String() string {
	return net.HardwareAddr(a[:]).String()
}

// -------------------------------------------------------------------------
// Sentinel Errors
// -------------------------------------------------------------------------

var (
	// ErrUnsupported indicates the platform has no AF_PACKET equivalent.
	// Raw link-layer sockets are Linux-only; there is no portable fallback.
	ErrUnsupported = errors.New("raw packet sockets are not supported on this platform")

	// ErrSocketClosed indicates an operation on an already-closed socket.
	ErrSocketClosed = errors.New("packet socket closed")
)

// -------------------------------------------------------------------------
// Interface Resolution
// -------------------------------------------------------------------------

// ResolveInterface resolves an interface name to its kernel interface
// index. The PACKET_ADD_MEMBERSHIP request identifies the interface by
// index, not by name.
func ResolveInterface(name string) (int, error) {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return 0, fmt.Errorf("resolve interface %q: %w", name, err)
	}
	return ifi.Index, nil
}

// -------------------------------------------------------------------------
// Byte Order
// -------------------------------------------------------------------------

// hostToNet16 converts a 16-bit value from host to network byte order.
// AF_PACKET sockets take their protocol argument in network byte order
// (the htons() in the classic socket(2) incantation).
func hostToNet16(v uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return binary.NativeEndian.Uint16(b[:])
}
