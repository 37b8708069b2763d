package config

import (
	"github.com/spf13/cobra"
)

func NewCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the RAMDisk.* configuration of a project.",
	}
	configCmd.AddCommand(newShowCmd())
	configCmd.AddCommand(newListCmd())
	configCmd.AddCommand(newSetCmd())
	return configCmd
}
