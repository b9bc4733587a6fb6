package runner

import "github.com/google/uuid"

// CommandContext carries the per-invocation identity passed to every
// command handler. Every split/join runs to completion on its own streams
// and is then discarded, so there is nothing here but an identifier for
// correlating the handler's log lines with a single run.
type CommandContext struct {
	// OperationID identifies this single split or join invocation in logs.
	OperationID string
}

// NewContext creates a CommandContext with a fresh operation ID.
func NewContext() *CommandContext {
	return &CommandContext{OperationID: uuid.NewString()}
}
