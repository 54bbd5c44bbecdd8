package commands

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

var testInfos = []ifaceInfo{
	{Index: 1, Name: "lo", HardwareAddr: "", Up: true, Multicast: false},
	{Index: 2, Name: "eth0", HardwareAddr: "aa:bb:cc:dd:ee:ff", Up: true, Multicast: true},
}

func TestFormatInterfacesTable(t *testing.T) {
	t.Parallel()

	out, err := formatInterfaces(testInfos, formatTable)
	if err != nil {
		t.Fatalf("formatInterfaces(table) error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("table has %d lines, want header + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "INDEX") {
		t.Errorf("missing header: %q", lines[0])
	}
	if !strings.Contains(lines[2], "eth0") || !strings.Contains(lines[2], "aa:bb:cc:dd:ee:ff") {
		t.Errorf("eth0 row malformed: %q", lines[2])
	}

	// Empty hardware address renders as a dash.
	if !strings.Contains(lines[1], "-") {
		t.Errorf("lo row should show - for missing hwaddr: %q", lines[1])
	}
}

func TestFormatInterfacesJSON(t *testing.T) {
	t.Parallel()

	out, err := formatInterfaces(testInfos, formatJSON)
	if err != nil {
		t.Fatalf("formatInterfaces(json) error: %v", err)
	}

	var decoded []ifaceInfo
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Name != "eth0" || !decoded[1].Multicast {
		t.Errorf("decoded = %+v, want the two fixture rows", decoded)
	}
}

func TestFormatInterfacesUnsupported(t *testing.T) {
	t.Parallel()

	if _, err := formatInterfaces(testInfos, "yaml"); !errors.Is(err, errUnsupportedFormat) {
		t.Errorf("formatInterfaces(yaml) = %v, want errUnsupportedFormat", err)
	}
}

func TestGatherInterfaces(t *testing.T) {
	t.Parallel()

	infos, err := gatherInterfaces()
	if err != nil {
		t.Skipf("cannot enumerate interfaces here: %v", err)
	}

	for _, info := range infos {
		if info.Index <= 0 {
			t.Errorf("interface %q has non-positive index %d", info.Name, info.Index)
		}
		if info.Name == "" {
			t.Error("interface with empty name")
		}
	}
}
