// Package launcher implements the opensock launch sequence.
//
// The sequence is strictly linear: open the raw packet socket, resolve
// the interface name, join the zappi multicast group, park the socket at
// the fixed handoff descriptor, and replace the process image with the
// child command. Any failure is terminal; there is no retry and no
// partial-success state. A failure before the handoff leaves nothing
// behind -- the socket is closed (and would be reclaimed by process exit
// anyway).
package launcher

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/divenal/sensors/internal/netio"
	"github.com/divenal/sensors/internal/osutil"
)

// ErrNoCommand indicates Run was called without a child command.
var ErrNoCommand = errors.New("no child command given")

// PacketSocket is the slice of netio socket behavior the launcher drives.
// Declared here so tests can substitute a fake without CAP_NET_RAW.
type PacketSocket interface {
	JoinMulticast(ifindex int, group netio.HardwareAddr) error
	Handoff(target int) error
	Close() error
	Fd() int
}

// Launcher runs the privileged setup and hands the socket to a child
// process. The function fields default to the real implementations;
// options replace them in tests.
type Launcher struct {
	logger *slog.Logger

	openSocket   func() (PacketSocket, error)
	resolveIface func(name string) (int, error)
	replaceProc  func(argv []string) error
	hasRawCap    func() bool
	setcapHint   func() string
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithOpenSocket replaces the packet socket constructor.
func WithOpenSocket(open func() (PacketSocket, error)) Option {
	return func(l *Launcher) { l.openSocket = open }
}

// WithInterfaceResolver replaces the interface name resolver.
func WithInterfaceResolver(resolve func(name string) (int, error)) Option {
	return func(l *Launcher) { l.resolveIface = resolve }
}

// WithReplaceProcess replaces the process image replacement step.
func WithReplaceProcess(replace func(argv []string) error) Option {
	return func(l *Launcher) { l.replaceProc = replace }
}

// WithPrivilegeCheck replaces the capability preflight and its
// remediation hint.
func WithPrivilegeCheck(has func() bool, hint func() string) Option {
	return func(l *Launcher) {
		l.hasRawCap = has
		l.setcapHint = hint
	}
}

// New creates a Launcher wired to the real socket, resolver, and exec
// implementations.
func New(logger *slog.Logger, opts ...Option) *Launcher {
	l := &Launcher{
		logger:       logger,
		openSocket:   func() (PacketSocket, error) { return netio.Open() },
		resolveIface: netio.ResolveInterface,
		replaceProc:  osutil.ReplaceProcess,
		hasRawCap:    osutil.HasRawCapability,
		setcapHint:   osutil.SetcapHint,
	}

	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run performs the launch sequence for the named interface and child
// argv. On success the process image is replaced and Run never returns.
// Every returned error is terminal and already carries its stage context.
func (l *Launcher) Run(ifName string, argv []string) error {
	if len(argv) == 0 {
		return ErrNoCommand
	}

	hasCap := l.hasRawCap()
	if !hasCap {
		l.logger.Debug("CAP_NET_RAW not in effective set; socket open will likely fail",
			slog.String("hint", l.setcapHint()),
		)
	}

	sock, err := l.openSocket()
	if err != nil {
		if !hasCap {
			if hint := l.setcapHint(); hint != "" {
				return fmt.Errorf("%w (missing CAP_NET_RAW? try: %s)", err, hint)
			}
		}
		return err
	}

	l.logger.Debug("packet socket open",
		slog.Int("fd", sock.Fd()),
		slog.String("ethertype", fmt.Sprintf("0x%04x", netio.EtherTypeZappi)),
	)

	ifindex, err := l.resolveIface(ifName)
	if err != nil {
		closeSocket(sock, l.logger)
		return err
	}

	l.logger.Debug("interface resolved",
		slog.String("interface", ifName),
		slog.Int("ifindex", ifindex),
	)

	if err := sock.JoinMulticast(ifindex, netio.ZappiGroup); err != nil {
		closeSocket(sock, l.logger)
		return err
	}

	l.logger.Debug("multicast membership added",
		slog.String("group", netio.ZappiGroup.String()),
		slog.Int("ifindex", ifindex),
	)

	if err := sock.Handoff(netio.HandoffFD); err != nil {
		closeSocket(sock, l.logger)
		return err
	}

	l.logger.Debug("handing off",
		slog.Int("fd", netio.HandoffFD),
		slog.Any("argv", argv),
	)

	// On success this never returns: the process image is replaced and
	// fd 42 rides across the exec.
	if err := l.replaceProc(argv); err != nil {
		closeSocket(sock, l.logger)
		return err
	}

	return nil
}

// closeSocket closes the socket on a failure path, logging rather than
// masking the original error.
func closeSocket(sock PacketSocket, logger *slog.Logger) {
	if err := sock.Close(); err != nil {
		logger.Warn("failed to close packet socket",
			slog.String("error", err.Error()),
		)
	}
}
