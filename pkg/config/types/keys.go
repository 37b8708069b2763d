package types

// Property keys. Lookups are case-insensitive, so these match the
// RAMDisk.* spelling used in gradle.properties.
const (
	RAMDiskEnable       = "ramdisk.enable"
	RAMDiskName         = "ramdisk.name"
	RAMDiskSize         = "ramdisk.size"
	RAMDiskVerify       = "ramdisk.verify"
	RAMDiskLinuxFormat  = "ramdisk.linux.format"
	RAMDiskWindowFormat = "ramdisk.window.format"
	RAMDiskMacFormat    = "ramdisk.mac.format"
)

var AllKeys = []string{
	RAMDiskEnable,
	RAMDiskName,
	RAMDiskSize,
	RAMDiskVerify,
	RAMDiskLinuxFormat,
	RAMDiskWindowFormat,
	RAMDiskMacFormat,
}

// ConfigDescriptions documents every key for help text and shell completion.
var ConfigDescriptions = map[string]string{
	RAMDiskEnable:       `Provision the RAM disk only when set to exactly "true".`,
	RAMDiskName:         "Volume name, used in the mount path. Letters, digits, '.', '_' and '-'; spaces only with the apfs format.",
	RAMDiskSize:         "Volume size in megabytes.",
	RAMDiskVerify:       "Require an existing mount path to be RAM backed.",
	RAMDiskLinuxFormat:  "Filesystem used on Linux: tmpfs or ramfs.",
	RAMDiskWindowFormat: "Filesystem reported on Windows.",
	RAMDiskMacFormat:    "Filesystem used on macOS: apfs or hfs.",
}
