package simulator

import (
	"errors"
	"fmt"
)

var ErrLaunchFailed = errors.New("simulator launch failed")

// LaunchError reports a non-zero exit from the simulator launcher
type LaunchError struct {
	Device   string
	Language string
	ExitCode int
	Stderr   string
}

func (e *LaunchError) Error() string {
	msg := fmt.Sprintf("ios-sim exited with status %d for %s on %s", e.ExitCode, e.Language, e.Device)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *LaunchError) Unwrap() error {
	return ErrLaunchFailed
}
