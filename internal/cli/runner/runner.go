package runner

import "github.com/spf13/cobra"

// CommandRunner chains interceptors for CLI command execution.
type CommandRunner struct {
	interceptors []Interceptor
}

// NewRunner creates a CommandRunner with no interceptors attached.
func NewRunner() *CommandRunner {
	return &CommandRunner{}
}

// Use appends interceptors to the chain and returns the runner for
// chaining.
func (r *CommandRunner) Use(interceptors ...Interceptor) *CommandRunner {
	r.interceptors = append(r.interceptors, interceptors...)
	return r
}

// CommandFunc is the signature for command handler functions.
type CommandFunc func(ctx *CommandContext, cmd *cobra.Command, args []string) error

// Wrap produces a cobra.RunE function that runs fn through the interceptor
// chain. The first registered interceptor is outermost: it runs first and
// sees fn's result last; the last registered one runs just around fn.
func (r *CommandRunner) Wrap(fn CommandFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()

		chain := func() error { return fn(ctx, cmd, args) }
		for i := len(r.interceptors) - 1; i >= 0; i-- {
			interceptor := r.interceptors[i]
			next := chain
			chain = func() error { return interceptor(ctx, cmd, args, next) }
		}

		return chain()
	}
}

// Base returns a runner with just the logging interceptor, the only
// cross-cutting concern a stateless split/join command needs.
func Base() *CommandRunner {
	return NewRunner().Use(WithLogging())
}
