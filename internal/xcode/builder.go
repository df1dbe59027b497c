// Package xcode drives xcodebuild and finds the app bundles it produces.
package xcode

import (
	"context"
	"fmt"

	"github.com/takeshy/simshots/internal/config"
	"github.com/takeshy/simshots/internal/ctxlog"
	"github.com/takeshy/simshots/internal/shell"
)

const (
	simulatorSDK = "iphonesimulator"
	stderrLines  = 20
)

// Builder compiles the app for the simulator
type Builder struct {
	runner     shell.Runner
	xcodebuild string
}

// NewBuilder creates a builder that runs xcodebuild through runner
func NewBuilder(runner shell.Runner, tools config.Tools) *Builder {
	return &Builder{runner: runner, xcodebuild: tools.Xcodebuild}
}

// BuildCommand returns the xcodebuild invocation for cfg, run inside
// cfg.ProjectPath. The simulator build is forced to 32-bit: the screen
// capture API used by the app is missing from 64-bit simulator builds.
func BuildCommand(xcodebuild string, cfg *config.Config) shell.Command {
	var args []string
	if cfg.Workspace != "" {
		args = append(args, "-workspace", cfg.Workspace, "-scheme", cfg.Scheme)
	} else {
		args = append(args, "-target", cfg.TargetName)
	}
	args = append(args,
		"-configuration", cfg.BuildConfig,
		"-sdk", simulatorSDK,
		"clean", "build",
		"ARCHS=i386", "ONLY_ACTIVE_ARCH=NO",
	)

	return shell.Command{
		Name:          xcodebuild,
		Args:          args,
		Dir:           cfg.ProjectPath,
		DiscardStdout: true,
	}
}

// Build runs a clean build. It is a no-op when cfg names neither a
// workspace nor a target.
func (b *Builder) Build(ctx context.Context, cfg *config.Config) error {
	logger := ctxlog.FromContext(ctx)
	if !cfg.ShouldBuild() {
		logger.Debug("No workspace or target configured, skipping build.")
		return nil
	}

	cmd := BuildCommand(b.xcodebuild, cfg)
	logger.Debug("Running build.", "command", cmd.String(), "dir", cmd.Dir)

	res, err := b.runner.Run(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to start build: %w", err)
	}
	if !res.Success() {
		return &BuildError{ExitCode: res.ExitCode, Stderr: res.StderrTail(stderrLines)}
	}

	logger.Debug("Build finished.")
	return nil
}
