// Package simulator controls the iOS simulator through killall and ios-sim.
package simulator

import (
	"context"
	"fmt"
	"os"

	"github.com/takeshy/simshots/internal/config"
	"github.com/takeshy/simshots/internal/ctxlog"
	"github.com/takeshy/simshots/internal/device"
	"github.com/takeshy/simshots/internal/shell"
)

const stderrLines = 5

// Driver quits, resets and launches the simulator
type Driver struct {
	runner shell.Runner
	tools  config.Tools
	dryRun bool
}

// NewDriver creates a driver. With dryRun set, Reset only logs what it
// would remove.
func NewDriver(runner shell.Runner, tools config.Tools, dryRun bool) *Driver {
	return &Driver{runner: runner, tools: tools, dryRun: dryRun}
}

// Quit terminates a running simulator. Failures, including no simulator
// running, are ignored.
func (d *Driver) Quit(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	res, err := d.runner.Run(ctx, shell.Command{
		Name: d.tools.Killall,
		Args: []string{d.tools.SimulatorApp},
	})
	if err != nil || !res.Success() {
		logger.Debug("Simulator was not running.", "app", d.tools.SimulatorApp, "exit_code", res.ExitCode, "error", err)
	}
}

// Reset erases all persisted simulator state
func (d *Driver) Reset(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if d.dryRun {
		logger.Info("Dry run: would remove simulator state.", "dir", d.tools.SimulatorSupport)
		return nil
	}
	if err := os.RemoveAll(d.tools.SimulatorSupport); err != nil {
		return fmt.Errorf("failed to reset simulator: %w", err)
	}
	logger.Debug("Simulator state removed.", "dir", d.tools.SimulatorSupport)
	return nil
}

// LaunchCommand returns the ios-sim invocation launching appPath on p
func LaunchCommand(iosSim, appPath string, p device.Profile, loc Locale, outDir string) shell.Command {
	args := []string{"launch", appPath}
	args = append(args, p.LauncherFlags()...)
	args = append(args, "--args")
	args = append(args, loc.AppArgs(outDir)...)
	return shell.Command{Name: iosSim, Args: args}
}

// Launch runs the app in the simulator and waits for the launcher to exit.
func (d *Driver) Launch(ctx context.Context, appPath string, p device.Profile, loc Locale, outDir string) error {
	cmd := LaunchCommand(d.tools.IOSSim, appPath, p, loc, outDir)
	ctxlog.FromContext(ctx).Debug("Launching simulator.", "command", cmd.String())

	res, err := d.runner.Run(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to launch simulator: %w", err)
	}
	if !res.Success() {
		return &LaunchError{
			Device:   p.Name,
			Language: loc.Locale,
			ExitCode: res.ExitCode,
			Stderr:   res.StderrTail(stderrLines),
		}
	}
	return nil
}
