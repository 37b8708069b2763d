package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bacalhau-project/ramdisk/cmd/cli/config"
	"github.com/bacalhau-project/ramdisk/cmd/cli/provision"
	"github.com/bacalhau-project/ramdisk/cmd/cli/status"
	"github.com/bacalhau-project/ramdisk/cmd/cli/version"
	"github.com/bacalhau-project/ramdisk/cmd/util"
	"github.com/bacalhau-project/ramdisk/cmd/util/flags"
	"github.com/bacalhau-project/ramdisk/pkg/logger"
)

func NewRootCmd() *cobra.Command {
	loggingMode := logger.LogModeDefault
	if mode, err := logger.ParseLogMode(strings.ToLower(os.Getenv("LOG_TYPE"))); err == nil {
		loggingMode = mode
	}

	rootCmd := &cobra.Command{
		Use:   "ramdisk",
		Short: "Provision a RAM disk and move Gradle build output onto it",
		Long: `Provision a RAM disk and move Gradle build output onto it.

Linux volumes are mounted under /var/<name> with tmpfs or ramfs, macOS volumes
under /Volumes/<name> with APFS or HFS+. Creation is skipped when the mount path
already exists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.ConfigureLogging(loggingMode)
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
		},
	}

	rootCmd.AddCommand(provision.NewCmd())
	rootCmd.AddCommand(status.NewCmd())
	rootCmd.AddCommand(config.NewCmd())
	rootCmd.AddCommand(version.NewCmd())

	rootCmd.PersistentFlags().Var(
		flags.LoggingFlag(&loggingMode), "log-mode",
		`Log format: 'default','json','combined','event'`,
	)
	return rootCmd
}

func Execute() {
	rootCmd := NewRootCmd()

	// Ensure commands are able to stop cleanly if someone presses ctrl+c
	ctx, cancel := signal.NotifyContext(context.Background(), util.ShutdownSignals...)
	defer cancel()
	rootCmd.SetContext(ctx)

	// Use stdout, not stderr for cmd.Print output, so that
	// e.g. DIR=$(ramdisk status --output json) works
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		util.Fatal(rootCmd, err, 1)
	}
}
