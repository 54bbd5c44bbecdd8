//go:build !unix

// Package osutil abstracts the OS interactions around the handoff:
// process image replacement and the raw-socket capability preflight.
package osutil

// ReplaceProcess is unavailable where there is no exec(2).
func ReplaceProcess([]string) error {
	return errExecUnsupported
}
