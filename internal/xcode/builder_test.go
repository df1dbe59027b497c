package xcode

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/takeshy/simshots/internal/config"
	"github.com/takeshy/simshots/internal/shell"
	"github.com/takeshy/simshots/internal/testutil"
)

func testTools() config.Tools {
	return config.Tools{Xcodebuild: "xcodebuild"}
}

func TestBuildCommand_Workspace(t *testing.T) {
	cfg := &config.Config{
		ProjectPath: "/src/demo",
		BuildConfig: "Release",
		Workspace:   "Demo.xcworkspace",
		Scheme:      "Demo",
		TargetName:  "Ignored",
	}

	cmd := BuildCommand("xcodebuild", cfg)

	want := []string{
		"-workspace", "Demo.xcworkspace", "-scheme", "Demo",
		"-configuration", "Release", "-sdk", "iphonesimulator",
		"clean", "build", "ARCHS=i386", "ONLY_ACTIVE_ARCH=NO",
	}
	if diff := cmp.Diff(want, cmd.Args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "/src/demo", cmd.Dir)
	require.True(t, cmd.DiscardStdout)
}

func TestBuildCommand_Target(t *testing.T) {
	cfg := &config.Config{ProjectPath: "/src/demo", BuildConfig: "Debug", TargetName: "Demo"}

	cmd := BuildCommand("/usr/bin/xcodebuild", cfg)

	want := []string{
		"-target", "Demo",
		"-configuration", "Debug", "-sdk", "iphonesimulator",
		"clean", "build", "ARCHS=i386", "ONLY_ACTIVE_ARCH=NO",
	}
	if diff := cmp.Diff(want, cmd.Args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "/usr/bin/xcodebuild", cmd.Name)
}

func TestBuild_SkipsWithoutWorkspaceOrTarget(t *testing.T) {
	runner := testutil.NewFakeRunner()
	b := NewBuilder(runner, testTools())

	err := b.Build(context.Background(), &config.Config{ProjectPath: "/src", BuildConfig: "Release"})

	require.NoError(t, err)
	require.Empty(t, runner.Commands)
}

func TestBuild_RunsOnceInProjectDir(t *testing.T) {
	runner := testutil.NewFakeRunner()
	b := NewBuilder(runner, testTools())

	err := b.Build(context.Background(), &config.Config{ProjectPath: "/src", BuildConfig: "Release", TargetName: "Demo"})

	require.NoError(t, err)
	require.Len(t, runner.Commands, 1)
	require.Equal(t, "/src", runner.Commands[0].Dir)
}

func TestBuild_FailureIsReported(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Results["xcodebuild"] = shell.Result{ExitCode: 65, Stderr: "error: no such scheme\n"}
	b := NewBuilder(runner, testTools())

	err := b.Build(context.Background(), &config.Config{ProjectPath: "/src", BuildConfig: "Release", TargetName: "Demo"})

	require.ErrorIs(t, err, ErrBuildFailed)
	var buildErr *BuildError
	require.True(t, errors.As(err, &buildErr))
	require.Equal(t, 65, buildErr.ExitCode)
	require.Contains(t, err.Error(), "no such scheme")
}
