package xcode

import (
	"errors"
	"fmt"
)

var (
	ErrNoProject   = errors.New("no Xcode project found")
	ErrNoBuild     = errors.New("no built project found")
	ErrBuildFailed = errors.New("build failed")
)

// BuildError reports a non-zero exit from xcodebuild.
type BuildError struct {
	ExitCode int
	Stderr   string
}

func (e *BuildError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("xcodebuild exited with status %d", e.ExitCode)
	}
	return fmt.Sprintf("xcodebuild exited with status %d:\n%s", e.ExitCode, e.Stderr)
}

func (e *BuildError) Unwrap() error {
	return ErrBuildFailed
}
