//go:build unit || !integration

package system

import (
	"context"
	"strings"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellRunner(t *testing.T) {
	testCases := []struct {
		name     string
		command  string
		exitCode int
		stdout   string
		stderr   string
	}{
		{name: "success", command: "echo hello", exitCode: 0, stdout: "hello\n"},
		{name: "failure", command: "echo oops >&2; exit 3", exitCode: 3, stderr: "oops\n"},
		{name: "composite", command: "echo $((2048*512))", exitCode: 0, stdout: "1048576\n"},
	}

	runner := NewShellRunner()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := runner.Run(context.Background(), tc.command)
			require.NoError(t, err)
			assert.Equal(t, tc.command, result.Command)
			assert.Equal(t, tc.exitCode, result.ExitCode)
			assert.Equal(t, tc.exitCode == 0, result.Succeeded())
			assert.Equal(t, tc.stdout, result.Stdout)
			assert.Equal(t, tc.stderr, result.Stderr)
		})
	}
}

func TestShellRunnerLaunchFailure(t *testing.T) {
	runner := &ShellRunner{Shell: "/nonexistent/shell"}
	result, err := runner.Run(context.Background(), "true")
	require.Error(t, err)
	assert.Equal(t, -1, result.ExitCode)
	assert.False(t, result.Succeeded())
}

func TestShellRunnerTruncatesOutput(t *testing.T) {
	old := MaxOutputReturnLength
	MaxOutputReturnLength = 4 * datasize.B
	t.Cleanup(func() { MaxOutputReturnLength = old })

	result, err := NewShellRunner().Run(context.Background(), "printf abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, "abcd", result.Stdout)
}

func TestGetDiskUsage(t *testing.T) {
	usage, err := GetDiskUsage(t.TempDir())
	require.NoError(t, err)
	assert.NotZero(t, usage.Total)
	assert.LessOrEqual(t, usage.Free, usage.Total)

	_, err = GetDiskUsage("/this/path/does/not/exist")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", datasize.KB))
	assert.Equal(t, strings.Repeat("x", 2), truncate("xxxx", 2*datasize.B))
}
