package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

// errUnsupportedFormat is returned when the requested output format is not supported.
var errUnsupportedFormat = errors.New("unsupported output format")

// formatInterfaces renders interface rows in the requested format.
func formatInterfaces(infos []ifaceInfo, format string) (string, error) {
	switch format {
	case formatJSON:
		return formatInterfacesJSON(infos)
	case formatTable:
		return formatInterfacesTable(infos)
	default:
		return "", fmt.Errorf("%w: %q", errUnsupportedFormat, format)
	}
}

func formatInterfacesJSON(infos []ifaceInfo) (string, error) {
	out, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal interfaces: %w", err)
	}
	return string(out) + "\n", nil
}

func formatInterfacesTable(infos []ifaceInfo) (string, error) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "INDEX\tNAME\tHWADDR\tUP\tMULTICAST")
	for _, info := range infos {
		hwaddr := info.HardwareAddr
		if hwaddr == "" {
			hwaddr = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%v\t%v\n",
			info.Index, info.Name, hwaddr, info.Up, info.Multicast)
	}

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush table: %w", err)
	}
	return sb.String(), nil
}
