package config

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/bacalhau-project/ramdisk/cmd/util"
	"github.com/bacalhau-project/ramdisk/cmd/util/flags/cliflags"
	"github.com/bacalhau-project/ramdisk/cmd/util/output"
	"github.com/bacalhau-project/ramdisk/pkg/config"
	"github.com/bacalhau-project/ramdisk/pkg/config/types"
)

func newShowCmd() *cobra.Command {
	o := output.OutputOptions{Format: output.TableFormat}
	showCmd := &cobra.Command{
		Use:   "show [project-dir]",
		Short: "Show the resolved configuration of a project and check it for problems.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, args, o)
		},
	}
	showCmd.Flags().AddFlagSet(cliflags.OutputFormatFlags(&o))
	return showCmd
}

func showConfig(cmd *cobra.Command, args []string, o output.OutputOptions) error {
	dir, err := util.ProjectDir(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	if o.Format == output.TableFormat {
		values := cfg.Values()
		output.KeyValue(cmd, lo.Map(types.AllKeys, func(key string, _ int) lo.Entry[string, any] {
			canonical, _ := config.CanonicalKey(key)
			return lo.Entry[string, any]{Key: canonical, Value: values[key]}
		}))
	} else if err = output.OutputOne[types.RAMDiskConfig](cmd, nil, o, cfg); err != nil {
		return err
	}

	problems := multierr.Errors(cfg.Validate())
	for _, problem := range problems {
		cmd.PrintErrln(output.RedStr("problem: " + problem.Error()))
	}
	if len(problems) > 0 {
		return fmt.Errorf("configuration has %d problem(s)", len(problems))
	}
	return nil
}
