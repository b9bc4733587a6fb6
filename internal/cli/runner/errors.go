// Package runner provides a small interceptor-based command execution
// framework for CLI commands: cobra's RunE handlers are wrapped with
// consistent logging/timing middleware instead of repeating it in every
// command.
package runner

import "errors"

// ErrMissingArgument is an error value for a required positional argument
// that was not supplied. The split and join handlers do not return it: their
// argument counts are checked by cobra's Args validators.
var ErrMissingArgument = errors.New("missing required argument")
