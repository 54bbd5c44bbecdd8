// Package netio provides the raw packet socket used to receive zappi
// sensor frames.
//
// Linux-specific implementation uses golang.org/x/sys/unix to open an
// AF_PACKET socket for EtherType 0x88b5 and join the zappi hardware
// multicast group on a named interface.
package netio
