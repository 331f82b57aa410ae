package ports

import "github.com/AntonioJCosta/crush/internal/core/domain/command"

// CommandEngine defines the contract for executing a parsed batch of commands.
type CommandEngine interface {
	// Execute runs every command of the batch in order and returns the number of
	// failed commands. A non-nil error is fatal to the interpreter.
	Execute(batch command.Batch) (failures int, err error)
}
