package ramdisk

import (
	"strings"

	"github.com/bacalhau-project/ramdisk/pkg/config/types"
	"github.com/bacalhau-project/ramdisk/pkg/platform"
)

// Request is a single provisioning run.
type Request struct {
	Enable        string
	Name          string
	Size          string
	LinuxFormat   string
	WindowsFormat string
	MacFormat     string
	Verify        bool
	DryRun        bool
}

// NewRequest builds a request from loaded configuration.
func NewRequest(cfg types.RAMDiskConfig) Request {
	return Request{
		Enable:        cfg.Enable,
		Name:          cfg.Name,
		Size:          cfg.Size,
		LinuxFormat:   cfg.Linux.Format,
		WindowsFormat: cfg.Window.Format,
		MacFormat:     cfg.Mac.Format,
		Verify:        cfg.Verify,
	}
}

func (r Request) Enabled() bool {
	return r.Enable == "true"
}

// VolumeName is the configured name, or the default one when unset.
func (r Request) VolumeName() string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return types.DefaultName
}

// Format returns the configured format for p, falling back to its default.
func (r Request) Format(p platform.Platform) string {
	var format, fallback string
	switch p {
	case platform.Linux:
		format, fallback = r.LinuxFormat, types.DefaultLinuxFormat
	case platform.Windows:
		format, fallback = r.WindowsFormat, types.DefaultWindowsFormat
	case platform.Mac:
		format, fallback = r.MacFormat, types.DefaultMacFormat
	default:
		return ""
	}
	if format = strings.TrimSpace(format); format == "" {
		return fallback
	}
	return format
}
