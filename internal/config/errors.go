package config

import (
	"errors"
	"fmt"
)

var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrConfigParse    = errors.New("configuration syntax error")
	ErrMissingKey     = errors.New("missing required configuration key")
)

// Error describes a configuration failure. Err is one of the sentinels above;
// Cause is the underlying I/O or decoding error, if any.
type Error struct {
	Path  string
	Key   string
	Err   error
	Cause error
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrConfigNotFound):
		return fmt.Sprintf("configuration file not found at %s", e.Path)
	case errors.Is(e.Err, ErrConfigParse):
		return fmt.Sprintf("syntax error in configuration file %s: %v", e.Path, e.Cause)
	case errors.Is(e.Err, ErrMissingKey):
		if e.Key == "scheme" {
			return "configuration key 'scheme' is required when 'workspace' is set"
		}
		return fmt.Sprintf("configuration key '%s' is required", e.Key)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
