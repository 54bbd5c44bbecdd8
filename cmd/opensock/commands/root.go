// Package commands implements the opensock CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/divenal/sensors/internal/config"
	"github.com/divenal/sensors/internal/launcher"
)

// errUsage doubles as the usage message written to stderr when the
// positional arguments are missing.
var errUsage = errors.New("usage: opensock <interface> <command> [args...]")

// launchFn performs the launch; a variable so tests can intercept it
// without needing CAP_NET_RAW.
var launchFn = defaultLaunch

// rootCmd is the top-level cobra command. Invoked with positional
// arguments it runs the launch sequence; `version` and `interfaces` are
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "opensock <interface> <command> [args...]",
	Short: "Open the zappi raw socket and exec a child with it on fd 42",
	Long: `opensock opens a raw link-layer socket for EtherType 0x88b5, joins the
zappi hardware multicast group 71:b3:d5:3a:6f:00 on the named interface,
moves the socket to file descriptor 42, and execs the given command with
its arguments passed through verbatim.

The binary needs CAP_NET_RAW (setcap cap_net_raw+ep opensock); the child
it execs into does not.`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) < 2 {
			return errUsage
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launchFn(args[0], args[1:], cmd.ErrOrStderr())
	},
	// Silence cobra's built-in usage/error printing so we control it.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Child flags pass through verbatim: stop flag parsing at the first
	// positional argument so `opensock eth0 prog -x` needs no `--`.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(interfacesCmd())
}

// defaultLaunch loads configuration, builds the real launcher, and runs
// the launch sequence. It returns only on failure: on success the
// process image has been replaced.
func defaultLaunch(ifName string, argv []string, errW io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger := config.NewLogger(errW, cfg.Log)

	return launcher.New(logger).Run(ifName, argv)
}

// Execute runs the root command and exits with code 1 on error. A child
// command reached via a successful launch never returns here.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
