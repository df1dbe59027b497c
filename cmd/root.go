package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/takeshy/simshots/internal/ctxlog"
	"github.com/takeshy/simshots/internal/logging"
)

var (
	Version   = "dev"
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:     "simshots [flags] CONFIG",
	Short:   "Localized iOS simulator screenshot tool",
	Version: Version,
	Long: `simshots builds an iOS app for the simulator, then launches it once for
every configured device and language so the app can write its screenshots
into <destination>/<language>.

CONFIG is a JSON (or YAML) file:
  {
    "destination_path": "screenshots",
    "project_path": "..",
    "build_config": "Release",
    "app_name": "Demo.app",
    "workspace": "Demo.xcworkspace",
    "scheme": "Demo",
    "devices": ["iPhone Retina (4-inch)", "iPad Retina"],
    "languages": ["en", "pt-BR"],
    "reset_between_runs": true
  }

Relative paths are resolved against the directory of CONFIG. Without
"workspace" or "target_name" the app is assumed to be built already.

Tool locations can be overridden with SIMSHOTS_XCODEBUILD, SIMSHOTS_IOS_SIM,
SIMSHOTS_KILLALL, SIMSHOTS_SIMULATOR_APP, SIMSHOTS_DERIVED_DATA and
SIMSHOTS_SIMULATOR_SUPPORT, either in the environment or in a .env file next
to CONFIG.`,
	Args:              cobra.ExactArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
	RunE:              runCapture,
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
}

// setupLogger builds the logger from the persistent flags and stores it in
// the command context.
func setupLogger(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(logLevel, logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctxlog.WithLogger(ctx, logger))
	return nil
}
