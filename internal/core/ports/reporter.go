package ports

import "github.com/AntonioJCosta/crush/internal/core/domain/command"

// Reporter receives the user-visible diagnostics produced while executing commands.
// Every call produces exactly one line of output.
type Reporter interface {
	Skipped(cmd *command.Command)
	Failure(format string, args ...any)
}
