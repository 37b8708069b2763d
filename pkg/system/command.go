package system

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/c2h5oh/datasize"
	"github.com/rs/zerolog/log"
)

// MaxOutputReturnLength caps how much of a command's stdout and stderr is
// kept in a CommandResult.
var MaxOutputReturnLength = 2 * datasize.KB

// CommandResult is the outcome of a command that was started. A nonzero
// ExitCode is a result, not an error.
type CommandResult struct {
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
}

func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0
}

// ShellRunner runs command lines through a POSIX shell.
type ShellRunner struct {
	Shell string
}

func NewShellRunner() *ShellRunner {
	return &ShellRunner{Shell: "sh"}
}

// Run executes command with "<shell> -c" and blocks until it exits. The
// returned error is only set when the shell could not be started.
func (r *ShellRunner) Run(ctx context.Context, command string) (CommandResult, error) {
	result := CommandResult{Command: command, ExitCode: -1}

	cmd := exec.CommandContext(ctx, r.Shell, "-c", command) //nolint:gosec
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	log.Ctx(ctx).Debug().Str("Command", command).Msg("running shell command")
	err := cmd.Run()
	result.Stdout = truncate(stdout.String(), MaxOutputReturnLength)
	result.Stderr = truncate(stderr.String(), MaxOutputReturnLength)

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return result, err
	}
	return result, nil
}

func truncate(s string, max datasize.ByteSize) string {
	if uint64(len(s)) <= max.Bytes() {
		return s
	}
	return s[:max.Bytes()]
}
