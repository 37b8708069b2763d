package version

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bacalhau-project/ramdisk/cmd/util/flags/cliflags"
	"github.com/bacalhau-project/ramdisk/cmd/util/output"
	"github.com/bacalhau-project/ramdisk/pkg/version"
)

func NewCmd() *cobra.Command {
	o := output.OutputOptions{Format: output.TableFormat}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Get the version of this binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := output.OutputOne(cmd, versionColumns, o, version.Get()); err != nil {
				return fmt.Errorf("error running version: %w", err)
			}
			return nil
		},
	}
	versionCmd.Flags().AddFlagSet(cliflags.OutputFormatFlags(&o))
	return versionCmd
}

var versionColumns = []output.TableColumn[*version.BuildVersionInfo]{
	{
		ColumnConfig: table.ColumnConfig{Name: "version"},
		Value:        func(v *version.BuildVersionInfo) string { return v.GitVersion },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "commit"},
		Value:        func(v *version.BuildVersionInfo) string { return v.GitCommit },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "platform"},
		Value:        func(v *version.BuildVersionInfo) string { return v.GOOS + "/" + v.GOARCH },
	},
}
