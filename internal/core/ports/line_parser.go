package ports

import "github.com/AntonioJCosta/crush/internal/core/domain/command"

/*
LineParser defines the contract for turning one input line into a batch of commands.
This is a driven port, representing a domain capability.

On a syntax error Parse returns a nil batch and a *grammar.SyntaxError.
*/
type LineParser interface {
	Parse(line string) (command.Batch, error)
}
