package commands

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"
)

// ifaceInfo is one row of `opensock interfaces` output.
type ifaceInfo struct {
	Index        int    `json:"index"`
	Name         string `json:"name"`
	HardwareAddr string `json:"hardware_addr"`
	Up           bool   `json:"up"`
	Multicast    bool   `json:"multicast"`
}

func interfacesCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "interfaces",
		Short: "List network interfaces for the <interface> argument",
		Long: `Lists the system's network interfaces with their kernel index, hardware
address, and whether they are up and multicast-capable. The zappi socket
needs an up, multicast-capable interface.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := gatherInterfaces()
			if err != nil {
				return fmt.Errorf("list interfaces: %w", err)
			}

			out, err := formatInterfaces(infos, outputFormat)
			if err != nil {
				return fmt.Errorf("format interfaces: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "format", "table",
		"output format: table, json")

	return cmd
}

// gatherInterfaces collects every system interface into display rows.
func gatherInterfaces() ([]ifaceInfo, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	infos := make([]ifaceInfo, 0, len(ifaces))
	for _, ifi := range ifaces {
		infos = append(infos, ifaceInfo{
			Index:        ifi.Index,
			Name:         ifi.Name,
			HardwareAddr: ifi.HardwareAddr.String(),
			Up:           ifi.Flags&net.FlagUp != 0,
			Multicast:    ifi.Flags&net.FlagMulticast != 0,
		})
	}

	return infos, nil
}
