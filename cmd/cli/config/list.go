package config

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/bacalhau-project/ramdisk/cmd/util/flags/cliflags"
	"github.com/bacalhau-project/ramdisk/cmd/util/output"
	"github.com/bacalhau-project/ramdisk/pkg/config"
	"github.com/bacalhau-project/ramdisk/pkg/config/types"
)

func newListCmd() *cobra.Command {
	o := output.OutputOptions{Format: output.TableFormat}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all config keys.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return output.Output(cmd, listColumns, o, configListEntries())
		},
	}
	listCmd.Flags().AddFlagSet(cliflags.OutputFormatFlags(&o))
	return listCmd
}

type configListEntry struct {
	Key         string
	EnvVar      string
	Default     string
	Description string
}

func configListEntries() []configListEntry {
	defaults := types.Default().Values()
	return lo.Map(types.AllKeys, func(key string, _ int) configListEntry {
		canonical, _ := config.CanonicalKey(key)
		return configListEntry{
			Key:         canonical,
			EnvVar:      config.KeyAsEnvVar(key),
			Default:     defaults[key],
			Description: types.ConfigDescriptions[key],
		}
	})
}

var listColumns = []output.TableColumn[configListEntry]{
	{
		ColumnConfig: table.ColumnConfig{Name: "Key"},
		Value:        func(e configListEntry) string { return e.Key },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Environment Variable"},
		Value:        func(e configListEntry) string { return e.EnvVar },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Default"},
		Value:        func(e configListEntry) string { return e.Default },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Description", WidthMax: 80, WidthMaxEnforcer: text.WrapText},
		Value:        func(e configListEntry) string { return e.Description },
	},
}
