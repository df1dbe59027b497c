// Package shell runs the external tools the capture pipeline depends on.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// Command describes one external process invocation.
type Command struct {
	Name          string
	Args          []string
	Dir           string
	DiscardStdout bool
}

// String renders the command the way a user would type it in a shell.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quote(c.Name))
	for _, a := range c.Args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"'()$\\") {
		return strconv.Quote(s)
	}
	return s
}

// Result holds the observable outcome of a finished process.
type Result struct {
	ExitCode int
	Stderr   string
}

// Success reports whether the process exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// StderrTail returns at most the last n lines of stderr.
func (r Result) StderrTail(n int) string {
	lines := strings.Split(strings.TrimRight(r.Stderr, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// Runner executes commands. Implementations return an error only when the
// process could not be run at all; a non-zero exit is reported in Result.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner that forwards process output to the given writers.
// Stderr is always captured into the Result as well.
func NewExecRunner(stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{Stdout: stdout, Stderr: stderr}
}

// Run starts the command and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	if !cmd.DiscardStdout && r.Stdout != nil {
		c.Stdout = r.Stdout
	}

	var stderr bytes.Buffer
	if r.Stderr != nil {
		c.Stderr = io.MultiWriter(&stderr, r.Stderr)
	} else {
		c.Stderr = &stderr
	}

	err := c.Run()
	res := Result{Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("failed to run %s: %w", cmd.Name, err)
	}
	return res, nil
}

// DryRunRunner prints commands instead of running them.
type DryRunRunner struct {
	Out io.Writer
}

// Run writes the command line and reports success.
func (r *DryRunRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	if cmd.Dir != "" {
		fmt.Fprintf(r.Out, "$ (cd %s && %s)\n", quote(cmd.Dir), cmd.String())
	} else {
		fmt.Fprintf(r.Out, "$ %s\n", cmd.String())
	}
	return Result{}, nil
}
