package commandmanager

import (
	"context"
	"time"
)

// CommandConfig describes a single external process invocation.
type CommandConfig struct {
	Command string
	Args    []string
	Env     []string

	// Sudo requests privilege elevation. It is honored only when the
	// executing manager was constructed with elevation enabled, so tests
	// and unprivileged runs never prefix sudo.
	Sudo bool
}

// CommandResult encapsulates the results from a command execution.
type CommandResult struct {
	Command   string
	STDOUT    string
	STDERR    string
	ExitCode  int
	Duration  time.Duration
	Timestamp time.Time
}

// CommandManager provides a method to execute commands, both locally and
// remotely. It is the single process boundary of the toolkit: every package
// manager invocation flows through Run, which is what makes the layer
// mockable.
type CommandManager interface {
	Run(ctx context.Context, config CommandConfig) (CommandResult, error)
}
