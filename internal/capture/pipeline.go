// Package capture runs the build, locate and launch steps that produce
// localized simulator screenshots.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/takeshy/simshots/internal/config"
	"github.com/takeshy/simshots/internal/ctxlog"
	"github.com/takeshy/simshots/internal/device"
	"github.com/takeshy/simshots/internal/fileutil"
	"github.com/takeshy/simshots/internal/manifest"
	"github.com/takeshy/simshots/internal/shell"
	"github.com/takeshy/simshots/internal/simulator"
	"github.com/takeshy/simshots/internal/xcode"
)

// Pipeline captures screenshots for every configured device and language
type Pipeline struct {
	out     io.Writer
	dryRun  bool
	builder *xcode.Builder
	locator *xcode.Locator
	driver  *simulator.Driver
}

// NewPipeline creates a pipeline running external tools through runner.
// Progress lines are written to out. With dryRun set, nothing is written to
// disk and runner is expected to only print the commands.
func NewPipeline(runner shell.Runner, tools config.Tools, out io.Writer, dryRun bool) *Pipeline {
	return &Pipeline{
		out:     out,
		dryRun:  dryRun,
		builder: xcode.NewBuilder(runner, tools),
		locator: xcode.NewLocator(tools.DerivedDataRoot),
		driver:  simulator.NewDriver(runner, tools, dryRun),
	}
}

// Run executes the capture. Configuration, lookup and build failures abort
// the run and are returned; a failed launch is recorded in the report and
// the remaining launches still happen.
func (p *Pipeline) Run(ctx context.Context, cfg *config.Config) (*Report, error) {
	logger := ctxlog.FromContext(ctx)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	profiles, err := device.LookupAll(cfg.Devices)
	if err != nil {
		return nil, err
	}
	for _, profile := range profiles {
		if !device.Known(profile.Name) {
			logger.Warn("Unlisted device type, deriving flags from its name.", "device", profile.Name, "flags", profile.LauncherFlags())
		}
	}

	report := &Report{DryRun: p.dryRun}

	if cfg.ShouldBuild() {
		fmt.Fprintf(p.out, "Building with %s configuration...\n", cfg.BuildConfig)
		if err := p.builder.Build(ctx, cfg); err != nil {
			return nil, err
		}
		report.Built = true
	}

	appPath, err := p.locator.AppPath(cfg.ProjectPath, cfg.BuildConfig, cfg.AppName)
	if err != nil {
		return nil, err
	}
	report.AppPath = appPath
	logger.Debug("Located app bundle.", "path", appPath)

	var mf *manifest.Manager
	if !p.dryRun {
		if err := fileutil.EnsureDir(cfg.DestinationPath); err != nil {
			return nil, err
		}
		mf, err = manifest.NewManager(cfg.DestinationPath)
		if err != nil {
			return nil, err
		}
		report.ManifestPath = mf.Path()
	}

	for _, profile := range profiles {
		for _, code := range cfg.Languages {
			res, err := p.capture(ctx, cfg, appPath, profile, simulator.LocaleFor(code), mf)
			if err != nil {
				return report, err
			}
			report.Results = append(report.Results, res)
		}
	}

	p.driver.Quit(ctx)

	if mf != nil {
		summary := mf.Summary()
		report.Changes = &summary
		if err := mf.Save(); err != nil {
			return report, fmt.Errorf("failed to save manifest: %w", err)
		}
	}
	return report, nil
}

// capture drives one device and language launch. The returned error is
// non-nil only when the run cannot continue.
func (p *Pipeline) capture(ctx context.Context, cfg *config.Config, appPath string, profile device.Profile, loc simulator.Locale, mf *manifest.Manager) (Result, error) {
	logger := ctxlog.FromContext(ctx).With("device", profile.Name, "language", loc.Locale)
	res := Result{
		Device:    profile.Name,
		Language:  loc.Locale,
		OutputDir: filepath.Join(cfg.DestinationPath, loc.Dir),
	}

	if !p.dryRun {
		if err := fileutil.EnsureDir(res.OutputDir); err != nil {
			return res, err
		}
	}

	fmt.Fprintf(p.out, "Creating screenshots for %s using %s...\n", loc.Language, profile.Name)

	p.driver.Quit(ctx)
	if cfg.ResetBetweenRuns {
		p.driver.Quit(ctx)
		if err := p.driver.Reset(ctx); err != nil {
			return res, err
		}
	}

	if err := p.driver.Launch(ctx, appPath, profile, loc, res.OutputDir); err != nil {
		if ctx.Err() != nil || !errors.Is(err, simulator.ErrLaunchFailed) {
			return res, err
		}
		logger.Warn("Launch failed.", "error", err)
		res.Err = err
		return res, nil
	}

	if mf == nil {
		return res, nil
	}

	files, err := fileutil.DiscoverFiles(res.OutputDir, fileutil.ScreenshotPattern)
	if err == nil {
		files, err = fileutil.WithChecksums(files)
	}
	if err != nil {
		return res, fmt.Errorf("failed to scan screenshots in %s: %w", res.OutputDir, err)
	}
	res.Changes = mf.Record(loc.Dir, profile.Name, files)
	logger.Debug("Screenshots recorded.", "new", res.Changes.New, "changed", res.Changes.Changed, "unchanged", res.Changes.Unchanged)

	return res, nil
}
