package status

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bacalhau-project/ramdisk/cmd/util"
	"github.com/bacalhau-project/ramdisk/cmd/util/flags/cliflags"
	"github.com/bacalhau-project/ramdisk/cmd/util/flags/configflags"
	"github.com/bacalhau-project/ramdisk/cmd/util/output"
	"github.com/bacalhau-project/ramdisk/pkg/config"
	"github.com/bacalhau-project/ramdisk/pkg/ramdisk"
)

type StatusOptions struct {
	OSName     string
	OutputOpts output.OutputOptions

	configFlags map[string]*pflag.Flag
}

func NewCmd() *cobra.Command {
	o := &StatusOptions{OutputOpts: output.OutputOptions{Format: output.TableFormat}}

	statusCmd := &cobra.Command{
		Use:   "status [project-dir]",
		Short: "Show whether the configured RAM disk exists and how it is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd, args)
		},
	}
	o.configFlags = configflags.Register(statusCmd.Flags(), configflags.NameFlags, configflags.FormatFlags)
	statusCmd.Flags().StringVar(&o.OSName, "os-name", o.OSName,
		`Operating system name to report for, e.g. "Linux" or "Mac OS X". Defaults to the host.`)
	statusCmd.Flags().AddFlagSet(cliflags.OutputFormatFlags(&o.OutputOpts))
	return statusCmd
}

func (o *StatusOptions) Run(cmd *cobra.Command, args []string) error {
	dir, err := util.ProjectDir(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir, config.WithFlags(o.configFlags))
	if err != nil {
		return err
	}

	provisioner := ramdisk.NewProvisioner(ramdisk.Params{OSName: o.OSName})
	info, err := provisioner.Inspect(cmd.Context(), ramdisk.NewRequest(cfg))
	if err != nil {
		return err
	}

	if o.OutputOpts.Format != output.TableFormat {
		return output.OutputOne(cmd, statusColumns, o.OutputOpts, info)
	}

	pairs := []lo.Entry[string, any]{
		{Key: "Platform", Value: info.Platform},
		{Key: "Name", Value: info.Name},
		{Key: "Mount Path", Value: info.MountPath},
		{Key: "Format", Value: info.Format},
		{Key: "Exists", Value: info.Exists},
		{Key: "Host Memory", Value: info.HostMemory.HR()},
	}
	if info.Exists {
		pairs = append(pairs,
			lo.Entry[string, any]{Key: "Filesystem", Value: info.Filesystem},
			lo.Entry[string, any]{Key: "RAM Backed", Value: ramBacked(info)},
			lo.Entry[string, any]{Key: "Total", Value: info.Total.HR()},
			lo.Entry[string, any]{Key: "Used", Value: info.Used.HR()},
			lo.Entry[string, any]{Key: "Free", Value: info.Free.HR()},
		)
	}
	output.KeyValue(cmd, pairs)
	return nil
}

func ramBacked(info ramdisk.VolumeInfo) string {
	if info.RAMBacked == nil {
		return "unknown"
	}
	return strconv.FormatBool(*info.RAMBacked)
}

// statusColumns are used for CSV output; sizes are in bytes.
var statusColumns = []output.TableColumn[ramdisk.VolumeInfo]{
	{
		ColumnConfig: table.ColumnConfig{Name: "Platform"},
		Value:        func(v ramdisk.VolumeInfo) string { return v.Platform.String() },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Name"},
		Value:        func(v ramdisk.VolumeInfo) string { return v.Name },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Mount Path"},
		Value:        func(v ramdisk.VolumeInfo) string { return v.MountPath },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Format"},
		Value:        func(v ramdisk.VolumeInfo) string { return v.Format },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Exists"},
		Value:        func(v ramdisk.VolumeInfo) string { return strconv.FormatBool(v.Exists) },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Filesystem"},
		Value:        func(v ramdisk.VolumeInfo) string { return v.Filesystem },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "RAM Backed"},
		Value:        ramBacked,
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Total"},
		Value:        func(v ramdisk.VolumeInfo) string { return strconv.FormatUint(v.Total.Bytes(), 10) },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Used"},
		Value:        func(v ramdisk.VolumeInfo) string { return strconv.FormatUint(v.Used.Bytes(), 10) },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Free"},
		Value:        func(v ramdisk.VolumeInfo) string { return strconv.FormatUint(v.Free.Bytes(), 10) },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Host Memory"},
		Value:        func(v ramdisk.VolumeInfo) string { return strconv.FormatUint(v.HostMemory.Bytes(), 10) },
	},
}
