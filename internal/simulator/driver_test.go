package simulator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/takeshy/simshots/internal/config"
	"github.com/takeshy/simshots/internal/device"
	"github.com/takeshy/simshots/internal/shell"
	"github.com/takeshy/simshots/internal/testutil"
)

func testTools(t *testing.T) config.Tools {
	return config.Tools{
		IOSSim:           "ios-sim",
		Killall:          "killall",
		SimulatorApp:     "iPhone Simulator",
		SimulatorSupport: filepath.Join(t.TempDir(), "iPhone Simulator"),
	}
}

func TestLaunchCommand(t *testing.T) {
	p, err := device.Lookup("iPad Retina")
	require.NoError(t, err)

	cmd := LaunchCommand("ios-sim", "/dd/Demo.app", p, LocaleFor("pt-BR"), "/shots/pt-BR")

	want := []string{
		"launch", "/dd/Demo.app",
		"--family", "ipad", "--retina",
		"--args", "-AppleLanguages", "(pt)", "-AppleLocale", "pt-BR", "/shots/pt-BR",
	}
	if diff := cmp.Diff(want, cmd.Args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestQuit_IgnoresFailure(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Results["killall"] = shell.Result{ExitCode: 1, Stderr: "No matching processes"}
	d := NewDriver(runner, testTools(t), false)

	d.Quit(context.Background())

	require.Len(t, runner.Commands, 1)
	require.Equal(t, []string{"iPhone Simulator"}, runner.Commands[0].Args)
}

func TestReset_RemovesStateAndToleratesAbsence(t *testing.T) {
	tools := testTools(t)
	require.NoError(t, os.MkdirAll(filepath.Join(tools.SimulatorSupport, "7.1", "Applications"), 0755))
	d := NewDriver(testutil.NewFakeRunner(), tools, false)

	require.NoError(t, d.Reset(context.Background()))
	_, err := os.Stat(tools.SimulatorSupport)
	require.True(t, os.IsNotExist(err))

	require.NoError(t, d.Reset(context.Background()))
}

func TestReset_DryRunKeepsState(t *testing.T) {
	tools := testTools(t)
	require.NoError(t, os.MkdirAll(tools.SimulatorSupport, 0755))
	d := NewDriver(testutil.NewFakeRunner(), tools, true)

	require.NoError(t, d.Reset(context.Background()))
	_, err := os.Stat(tools.SimulatorSupport)
	require.NoError(t, err)
}

func TestLaunch_FailureIsReported(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Results["ios-sim"] = shell.Result{ExitCode: 2, Stderr: "Session could not be started\n"}
	d := NewDriver(runner, testTools(t), false)
	p, err := device.Lookup("iPhone 6")
	require.NoError(t, err)

	err = d.Launch(context.Background(), "/dd/Demo.app", p, LocaleFor("en"), "/shots/en")

	require.ErrorIs(t, err, ErrLaunchFailed)
	var launchErr *LaunchError
	require.True(t, errors.As(err, &launchErr))
	require.Equal(t, "iPhone 6", launchErr.Device)
	require.Equal(t, "en", launchErr.Language)
	require.Contains(t, err.Error(), "Session could not be started")
}
