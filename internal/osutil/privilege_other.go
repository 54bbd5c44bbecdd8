//go:build !linux

package osutil

// HasRawCapability is a Linux-only preflight; elsewhere the socket open
// itself is the only authority, so report true and let it fail.
func HasRawCapability() bool { return true }

// SetcapHint has no Linux capability system to point at off-Linux.
func SetcapHint() string { return "" }
