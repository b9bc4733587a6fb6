package runner

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/lcrostarosa/shamirida/internal/logging"
)

// Interceptor wraps command execution, mirroring the gRPC unary
// interceptor pattern: it calls next to continue the chain.
type Interceptor func(ctx *CommandContext, cmd *cobra.Command, args []string, next func() error) error

// WithLogging logs the start and outcome of a command under its operation
// ID, including elapsed time.
func WithLogging() Interceptor {
	return func(ctx *CommandContext, cmd *cobra.Command, args []string, next func() error) error {
		logging.Debug("cli command starting",
			logging.String("cmd", cmd.Name()),
			logging.String("op", ctx.OperationID))
		start := time.Now()
		err := next()
		elapsed := time.Since(start)
		if err != nil {
			logging.Error("cli command failed",
				logging.String("cmd", cmd.Name()),
				logging.String("op", ctx.OperationID),
				logging.Any("elapsed", elapsed),
				logging.Err(err))
			return err
		}
		logging.Debug("cli command finished",
			logging.String("cmd", cmd.Name()),
			logging.String("op", ctx.OperationID),
			logging.Any("elapsed", elapsed))
		return nil
	}
}
