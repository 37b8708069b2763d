//go:generate mockgen --source types.go --destination mocks.go --package ramdisk

package ramdisk

import (
	"context"

	"github.com/bacalhau-project/ramdisk/pkg/system"
)

// Runner executes a shell command line and waits for it to exit. It returns
// an error only if the command could not be started.
type Runner interface {
	Run(ctx context.Context, command string) (system.CommandResult, error)
}

// VolumeProbe reads information about mounted volumes and the host.
type VolumeProbe interface {
	Usage(path string) (system.DiskUsage, error)
	Filesystem(path string) (system.FilesystemInfo, error)
	TotalMemory() uint64
}
