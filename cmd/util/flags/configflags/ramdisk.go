package configflags

import (
	"github.com/bacalhau-project/ramdisk/pkg/config/types"
)

var RAMDiskFlags = []Definition{
	{
		FlagName:     "enable",
		ConfigPath:   types.RAMDiskEnable,
		DefaultValue: types.Default().Enable,
		Description:  types.ConfigDescriptions[types.RAMDiskEnable],
	},
	{
		FlagName:     "size",
		ConfigPath:   types.RAMDiskSize,
		DefaultValue: types.Default().Size,
		Description:  types.ConfigDescriptions[types.RAMDiskSize],
	},
	{
		FlagName:     "verify",
		ConfigPath:   types.RAMDiskVerify,
		DefaultValue: types.Default().Verify,
		Description:  types.ConfigDescriptions[types.RAMDiskVerify],
	},
}

var NameFlags = []Definition{
	{
		FlagName:     "name",
		ConfigPath:   types.RAMDiskName,
		DefaultValue: types.Default().Name,
		Description:  types.ConfigDescriptions[types.RAMDiskName],
	},
}

var FormatFlags = []Definition{
	{
		FlagName:     "linux-format",
		ConfigPath:   types.RAMDiskLinuxFormat,
		DefaultValue: types.Default().Linux.Format,
		Description:  types.ConfigDescriptions[types.RAMDiskLinuxFormat],
	},
	{
		FlagName:     "windows-format",
		ConfigPath:   types.RAMDiskWindowFormat,
		DefaultValue: types.Default().Window.Format,
		Description:  types.ConfigDescriptions[types.RAMDiskWindowFormat],
	},
	{
		FlagName:     "mac-format",
		ConfigPath:   types.RAMDiskMacFormat,
		DefaultValue: types.Default().Mac.Format,
		Description:  types.ConfigDescriptions[types.RAMDiskMacFormat],
	},
}
