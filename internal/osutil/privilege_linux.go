//go:build linux

package osutil

import (
	"fmt"
	"os"
	"path/filepath"

	"kernel.org/pub/linux/libs/security/libcap/cap"
)

// HasRawCapability reports whether the process can expect to open raw
// link-layer sockets: either CAP_NET_RAW is in the effective set or the
// process runs as root. The kernel has the final say; this is a
// preflight used only to produce a better diagnostic.
func HasRawCapability() bool {
	if os.Geteuid() == 0 {
		return true
	}

	cv, err := cap.FromName("cap_net_raw")
	if err != nil {
		return false
	}

	has, err := cap.GetProc().GetFlag(cap.Effective, cv)
	if err != nil {
		return false
	}
	return has
}

// SetcapHint returns the remediation command for a missing CAP_NET_RAW
// grant, naming this binary's resolved path.
func SetcapHint() string {
	return fmt.Sprintf("sudo setcap cap_net_raw+ep %s", executablePath())
}

// executablePath resolves the running binary's path for the setcap hint,
// falling back to argv[0] when /proc is unhelpful.
func executablePath() string {
	exe, err := os.Executable()
	if err != nil || exe == "" {
		if len(os.Args) > 0 && os.Args[0] != "" {
			exe = os.Args[0]
		} else {
			exe = "opensock"
		}
	}

	if abs, err := filepath.Abs(exe); err == nil {
		exe = abs
	}
	return exe
}
