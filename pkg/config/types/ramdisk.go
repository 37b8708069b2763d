package types

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

const (
	DefaultName          = "RAMDiskForGradle"
	DefaultLinuxFormat   = "tmpfs"
	DefaultWindowsFormat = "ntfs"
	DefaultMacFormat     = "apfs"
)

// RAMDiskConfig is the set of RAMDisk.* properties understood by the
// provisioner. Values are kept as strings as they are read from property
// files; they are only interpreted when a volume is provisioned.
type RAMDiskConfig struct {
	Enable string         `mapstructure:"enable" json:"Enable" yaml:"Enable"`
	Name   string         `mapstructure:"name" json:"Name" yaml:"Name"`
	Size   string         `mapstructure:"size" json:"Size" yaml:"Size"`
	Verify bool           `mapstructure:"verify" json:"Verify" yaml:"Verify"`
	Linux  PlatformConfig `mapstructure:"linux" json:"Linux" yaml:"Linux"`
	Window PlatformConfig `mapstructure:"window" json:"Window" yaml:"Window"`
	Mac    PlatformConfig `mapstructure:"mac" json:"Mac" yaml:"Mac"`
}

type PlatformConfig struct {
	Format string `mapstructure:"format" json:"Format" yaml:"Format"`
}

// Default returns the values used for any property left unset.
func Default() RAMDiskConfig {
	return RAMDiskConfig{
		Name:   DefaultName,
		Linux:  PlatformConfig{Format: DefaultLinuxFormat},
		Window: PlatformConfig{Format: DefaultWindowsFormat},
		Mac:    PlatformConfig{Format: DefaultMacFormat},
	}
}

// Enabled is true only for the exact string "true".
func (cfg RAMDiskConfig) Enabled() bool {
	return cfg.Enable == "true"
}

var (
	errSizeMissing = fmt.Errorf("size is missing")
	// names end up inside shell commands and mount paths
	validName = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._ -]*[A-Za-z0-9._-])?$`)
)

// SizeMB parses the requested size in megabytes.
func (cfg RAMDiskConfig) SizeMB() (float64, error) {
	return ParseSizeMB(cfg.Size)
}

func ParseSizeMB(size string) (float64, error) {
	size = strings.TrimSpace(size)
	if size == "" {
		return 0, errSizeMissing
	}
	mb, err := strconv.ParseFloat(size, 64)
	if err != nil {
		return 0, fmt.Errorf("size %q is not a number", size)
	}
	if math.IsNaN(mb) || math.IsInf(mb, 0) || mb <= 0 {
		return 0, fmt.Errorf("size %q must be a positive number of megabytes", size)
	}
	return mb, nil
}

// IsSizeMissing reports whether err came from an absent size.
func IsSizeMissing(err error) bool {
	return err == errSizeMissing
}

func ValidateName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("name %q must start with a letter or digit and contain only letters, digits, spaces, '.', '_' or '-'", name)
	}
	return nil
}

// Validate reports every problem with an enabled configuration. A disabled
// configuration is always valid.
func (cfg RAMDiskConfig) Validate() error {
	if !cfg.Enabled() {
		return nil
	}
	var err error
	if nameErr := ValidateName(cfg.Name); nameErr != nil {
		err = multierr.Append(err, nameErr)
	}
	if _, sizeErr := cfg.SizeMB(); sizeErr != nil {
		err = multierr.Append(err, sizeErr)
	}
	return err
}

// Values returns the configuration keyed by property key.
func (cfg RAMDiskConfig) Values() map[string]string {
	return map[string]string{
		RAMDiskEnable:       cfg.Enable,
		RAMDiskName:         cfg.Name,
		RAMDiskSize:         cfg.Size,
		RAMDiskVerify:       strconv.FormatBool(cfg.Verify),
		RAMDiskLinuxFormat:  cfg.Linux.Format,
		RAMDiskWindowFormat: cfg.Window.Format,
		RAMDiskMacFormat:    cfg.Mac.Format,
	}
}
