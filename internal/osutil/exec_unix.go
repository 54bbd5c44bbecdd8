//go:build unix

// Package osutil abstracts the OS interactions around the handoff:
// process image replacement and the raw-socket capability preflight.
package osutil

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// ReplaceProcess replaces the current process image with the named command,
// passing argv through verbatim and inheriting the current environment.
// Bare command names are resolved through PATH, matching execvp semantics.
//
// On success this function does not return; the calling program ceases to
// exist. Open descriptors that are not close-on-exec are inherited by
// the new image.
func ReplaceProcess(argv []string) error {
	if len(argv) == 0 {
		return errEmptyArgv
	}

	// The exec syscall needs an absolute path; resolve bare names via PATH.
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("look up %q: %w", argv[0], err)
	}

	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}

	// Unreachable: Exec either fails or never returns.
	return nil
}
