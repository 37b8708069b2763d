package ramdisk

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfiguration is the parent of every error caused by bad input.
	ErrInvalidConfiguration = errors.New("invalid RAM disk configuration")
	ErrInvalidSize          = fmt.Errorf("%w: missing or invalid size", ErrInvalidConfiguration)
	ErrInvalidName          = fmt.Errorf("%w: invalid name", ErrInvalidConfiguration)
	ErrUnsupportedFormat    = fmt.Errorf("%w: unsupported format", ErrInvalidConfiguration)

	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrNotImplemented      = errors.New("RAM disk creation is not implemented on this platform")
	ErrCommandFailed       = errors.New("shell command failed")
	ErrLaunchFailed        = errors.New("shell could not be started")
	ErrVolumeMissing       = errors.New("volume not found at mount path after provisioning")
	ErrNotRAMBacked        = errors.New("mount path is not a RAM-backed filesystem")
)

// CommandError reports a provisioning command that failed to start or
// exited with a nonzero code.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string

	kind  error
	cause error
}

func newLaunchError(command string, cause error) *CommandError {
	return &CommandError{Command: command, ExitCode: -1, kind: ErrLaunchFailed, cause: cause}
}

func newExitError(command string, exitCode int, stderr string) *CommandError {
	return &CommandError{Command: command, ExitCode: exitCode, Stderr: stderr, kind: ErrCommandFailed}
}

func (e *CommandError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %q: %s", e.kind, e.Command, e.cause)
	}
	msg := fmt.Sprintf("%s: %q exited with code %d", e.kind, e.Command, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *CommandError) Is(target error) bool {
	return target == e.kind
}

func (e *CommandError) Unwrap() error {
	return e.cause
}
