package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/pbnjay/memory"
	"github.com/ricochet2200/go-disk-usage/du"
)

// DiskUsage holds the space figures of the filesystem containing a path, in bytes.
type DiskUsage struct {
	Total     uint64
	Free      uint64
	Available uint64
	Used      uint64
}

// GetDiskUsage returns the usage of the filesystem that path lives on.
func GetDiskUsage(path string) (DiskUsage, error) {
	if _, err := os.Stat(path); err != nil {
		return DiskUsage{}, err
	}
	usage := du.NewDiskUsage(path)
	if usage == nil {
		return DiskUsage{}, fmt.Errorf("GetDiskUsage: unable to get disk usage for path %s", path)
	}
	return DiskUsage{
		Total:     usage.Size(),
		Free:      usage.Free(),
		Available: usage.Available(),
		Used:      usage.Used(),
	}, nil
}

// TotalMemory returns the physical memory of the host in bytes, or 0 if it
// cannot be determined.
func TotalMemory() uint64 {
	return memory.TotalMemory()
}

var ErrFilesystemTypeUnsupported = errors.New("filesystem type detection is not supported on this platform")

// FilesystemInfo describes the filesystem mounted at a path.
type FilesystemInfo struct {
	Type      string
	RAMBacked bool
}

// DiskProbe reads volume information from the host.
type DiskProbe struct{}

func NewDiskProbe() *DiskProbe {
	return &DiskProbe{}
}

func (p *DiskProbe) Usage(path string) (DiskUsage, error) {
	return GetDiskUsage(path)
}

func (p *DiskProbe) Filesystem(path string) (FilesystemInfo, error) {
	return GetFilesystemInfo(path)
}

func (p *DiskProbe) TotalMemory() uint64 {
	return TotalMemory()
}
