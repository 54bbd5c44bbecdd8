package osutil

import "errors"

var (
	// errEmptyArgv indicates ReplaceProcess was called without a command.
	errEmptyArgv = errors.New("replace process: empty argv")

	// errExecUnsupported indicates the platform has no exec(2).
	errExecUnsupported = errors.New("process image replacement is not supported on this platform")
)
