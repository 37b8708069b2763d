package config

import (
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bacalhau-project/ramdisk/cmd/util"
	"github.com/bacalhau-project/ramdisk/cmd/util/flags/cliflags"
	"github.com/bacalhau-project/ramdisk/pkg/config"
)

func newSetCmd() *cobra.Command {
	var projectDir string
	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a RAMDisk.* property into the project's gradle.properties.",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return cliflags.ConfigAutoComplete(cmd, args, toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := util.ProjectDir([]string{projectDir})
			if err != nil {
				return err
			}
			file := filepath.Join(dir, config.PropertiesFileName)
			if err = config.SetProperty(afero.NewOsFs(), file, args[0], args[1]); err != nil {
				return err
			}
			cmd.Printf("updated %s\n", file)
			return nil
		},
	}
	setCmd.Flags().StringVar(&projectDir, "project-dir", ".", "The Gradle project whose gradle.properties is edited.")
	return setCmd
}
