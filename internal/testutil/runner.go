// Package testutil holds shared test doubles.
package testutil

import (
	"context"
	"sync"

	"github.com/takeshy/simshots/internal/shell"
)

// FakeRunner records every command and answers with canned results.
type FakeRunner struct {
	mu       sync.Mutex
	Commands []shell.Command

	// Results maps a command name to the result returned for it.
	// Unlisted commands succeed.
	Results map[string]shell.Result
	// OnRun, if set, is called for every command after it is recorded.
	OnRun func(cmd shell.Command)
}

// NewFakeRunner creates a FakeRunner where every command succeeds.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Results: make(map[string]shell.Result)}
}

// Run records cmd and returns the configured result.
func (f *FakeRunner) Run(ctx context.Context, cmd shell.Command) (shell.Result, error) {
	f.mu.Lock()
	f.Commands = append(f.Commands, cmd)
	res := f.Results[cmd.Name]
	hook := f.OnRun
	f.mu.Unlock()

	if hook != nil {
		hook(cmd)
	}
	return res, nil
}

// Names returns the program names run so far, in order.
func (f *FakeRunner) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.Commands))
	for _, c := range f.Commands {
		names = append(names, c.Name)
	}
	return names
}

// Count returns how many times the named program was run.
func (f *FakeRunner) Count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.Commands {
		if c.Name == name {
			n++
		}
	}
	return n
}
