package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/takeshy/simshots/internal/capture"
	"github.com/takeshy/simshots/internal/config"
	"github.com/takeshy/simshots/internal/shell"
)

var (
	destinationPath string
	dryRun          bool
)

func init() {
	rootCmd.Flags().StringVarP(&destinationPath, "path", "p", "", "Destination path for screenshots (overrides config)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the commands that would run without running them")
}

func runCapture(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0], destinationPath)
	if err != nil {
		return err
	}

	tools, err := config.LoadTools(cfg.Dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var runner shell.Runner
	if dryRun {
		runner = &shell.DryRunRunner{Out: out}
	} else {
		runner = shell.NewExecRunner(out, nil)
	}

	pipeline := capture.NewPipeline(runner, tools, out, dryRun)
	report, err := pipeline.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	return printReport(out, report)
}

func printReport(w io.Writer, report *capture.Report) error {
	failed := report.Failed()
	for _, r := range failed {
		fmt.Fprintf(w, "✗ %s / %s: %v\n", r.Device, r.Language, r.Err)
	}

	if report.DryRun {
		fmt.Fprintf(w, "\nDry run complete: %d launches planned\n", len(report.Results))
		return nil
	}

	totals := report.Totals()
	fmt.Fprintf(w, "\nCapture complete:\n")
	fmt.Fprintf(w, "  Launches:  %d\n", len(report.Results))
	fmt.Fprintf(w, "  Failed:    %d\n", len(failed))
	fmt.Fprintf(w, "  New:       %d\n", totals.New)
	fmt.Fprintf(w, "  Changed:   %d\n", totals.Changed)
	fmt.Fprintf(w, "  Unchanged: %d\n", totals.Unchanged)

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d launches failed", len(failed), len(report.Results))
	}
	return nil
}
