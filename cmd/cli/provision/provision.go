package provision

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bacalhau-project/ramdisk/cmd/util"
	"github.com/bacalhau-project/ramdisk/cmd/util/flags/cliflags"
	"github.com/bacalhau-project/ramdisk/cmd/util/flags/configflags"
	"github.com/bacalhau-project/ramdisk/cmd/util/output"
	"github.com/bacalhau-project/ramdisk/pkg/config"
	"github.com/bacalhau-project/ramdisk/pkg/project"
	"github.com/bacalhau-project/ramdisk/pkg/ramdisk"
)

type ProvisionOptions struct {
	Units      []string
	RootName   string
	OSName     string
	DryRun     bool
	InitScript string
	EnvFile    string
	OutputOpts output.OutputOptions

	// config keys overridden by flags
	configFlags map[string]*pflag.Flag
}

func NewProvisionOptions() *ProvisionOptions {
	return &ProvisionOptions{
		OutputOpts: output.OutputOptions{Format: output.TableFormat},
	}
}

func NewCmd() *cobra.Command {
	o := NewProvisionOptions()

	provisionCmd := &cobra.Command{
		Use:   "provision [project-dir]",
		Short: "Create the RAM disk if needed and redirect every project's build directory onto it.",
		Long: `Create the RAM disk configured by the RAMDisk.* properties of a Gradle build and
redirect the build directory of the root project and every subproject onto it.

Properties are read from gradle.properties in the project directory and in the
Gradle user home, then from RAMDISK_* environment variables and finally from flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.Context(), cmd, args)
		},
	}

	o.configFlags = configflags.Register(provisionCmd.Flags(), configflags.RAMDiskFlags, configflags.NameFlags, configflags.FormatFlags)

	fset := pflag.NewFlagSet("provision", pflag.ContinueOnError)
	fset.StringSliceVar(&o.Units, "unit", o.Units,
		"Subproject to redirect, e.g. ':app'. Replaces the subprojects read from settings.gradle.")
	fset.StringVar(&o.RootName, "root-name", o.RootName,
		"Name of the root project. Defaults to rootProject.name or the directory name.")
	fset.StringVar(&o.OSName, "os-name", o.OSName,
		`Operating system name to provision for, e.g. "Linux" or "Mac OS X". Defaults to the host.`)
	fset.BoolVar(&o.DryRun, "dry-run", o.DryRun,
		"Print the commands and redirections without running anything.")
	fset.StringVar(&o.InitScript, "init-script", o.InitScript,
		"Write a Gradle init script applying the redirections to this file.")
	fset.StringVar(&o.EnvFile, "env-file", o.EnvFile,
		"Write the redirections as RAMDISK_* variables to this dotenv file.")
	provisionCmd.Flags().AddFlagSet(fset)
	provisionCmd.Flags().AddFlagSet(cliflags.OutputFormatFlags(&o.OutputOpts))

	return provisionCmd
}

func (o *ProvisionOptions) Run(ctx context.Context, cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()

	dir, err := util.ProjectDir(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir, config.WithFs(fs), config.WithFlags(o.configFlags))
	if err != nil {
		return err
	}
	proj, err := o.project(fs, dir)
	if err != nil {
		return err
	}

	req := ramdisk.NewRequest(cfg)
	req.DryRun = o.DryRun

	provisioner := ramdisk.NewProvisioner(ramdisk.Params{Fs: fs, OSName: o.OSName})
	outcome, err := provisioner.Provision(ctx, req, proj)
	if err != nil {
		return errors.Wrap(err, "provisioning RAM disk")
	}

	if outcome.Redirected() && !o.DryRun {
		if err = o.export(ctx, fs, outcome); err != nil {
			return err
		}
	}
	return o.print(cmd, outcome)
}

func (o *ProvisionOptions) project(fs afero.Fs, dir string) (project.Project, error) {
	proj, err := project.Discover(fs, dir)
	if err != nil {
		return project.Project{}, err
	}
	if o.RootName == "" && len(o.Units) == 0 {
		return proj, nil
	}
	rootName := lo.Ternary(o.RootName != "", o.RootName, proj.RootName)
	includes := o.Units
	if len(includes) == 0 {
		includes = lo.Map(proj.Units[1:], func(u project.Unit, _ int) string { return u.Path })
	}
	return project.New(proj.RootDir, rootName, includes), nil
}

func (o *ProvisionOptions) export(ctx context.Context, fs afero.Fs, outcome ramdisk.Outcome) error {
	if o.InitScript != "" {
		if err := project.WriteInitScript(fs, o.InitScript, outcome.MountPath, outcome.Redirections); err != nil {
			return err
		}
		log.Ctx(ctx).Info().Str("File", o.InitScript).Msg("wrote Gradle init script")
	}
	if o.EnvFile != "" {
		if err := project.WriteEnvFile(fs, o.EnvFile, outcome.MountPath, outcome.Redirections); err != nil {
			return err
		}
		log.Ctx(ctx).Info().Str("File", o.EnvFile).Msg("wrote environment file")
	}
	return nil
}

func (o *ProvisionOptions) print(cmd *cobra.Command, outcome ramdisk.Outcome) error {
	if o.OutputOpts.Format != output.TableFormat && o.OutputOpts.Format != output.CSVFormat {
		return output.OutputOne[ramdisk.Outcome](cmd, nil, o.OutputOpts, outcome)
	}
	if outcome.Status == ramdisk.StatusDisabled {
		return nil
	}
	if o.OutputOpts.Format == output.TableFormat {
		for _, command := range outcome.Commands {
			cmd.Println(output.BoldStr("$ ") + command)
		}
		cmd.Printf("%s %s (%s)\n", output.GreenStr(string(outcome.Status)), outcome.MountPath, outcome.Format)
	}
	return output.Output(cmd, redirectionColumns, o.OutputOpts, outcome.Redirections)
}

var redirectionColumns = []output.TableColumn[project.Redirection]{
	{
		ColumnConfig: table.ColumnConfig{Name: "Project"},
		Value:        func(r project.Redirection) string { return r.Path },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Build Dir"},
		Value:        func(r project.Redirection) string { return r.Target },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Original", WidthMax: 60},
		Value:        func(r project.Redirection) string { return r.Original },
	},
}
