//go:build linux

package osutil

import (
	"os"
	"strings"
	"testing"
)

func TestSetcapHint(t *testing.T) {
	t.Parallel()

	hint := SetcapHint()
	if !strings.HasPrefix(hint, "sudo setcap cap_net_raw+ep ") {
		t.Errorf("SetcapHint() = %q, want setcap cap_net_raw+ep prefix", hint)
	}
	if !strings.Contains(hint, "/") {
		t.Errorf("SetcapHint() = %q, want an absolute binary path", hint)
	}
}

func TestHasRawCapabilityAsRoot(t *testing.T) {
	t.Parallel()

	if os.Geteuid() != 0 {
		t.Skip("meaningful only as root")
	}
	if !HasRawCapability() {
		t.Error("HasRawCapability() = false for root")
	}
}
