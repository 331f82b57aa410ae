/*
Package command defines the core domain entities produced by the line parser
and consumed by the execution engine.
*/
package command

import "strings"

// ExecPolicy tells the engine when a command may run.
type ExecPolicy int

const (
	// Always runs the command regardless of what came before it.
	Always ExecPolicy = iota
	// OnPreviousSuccess runs the command only if the command right before it succeeded.
	OnPreviousSuccess
)

func (p ExecPolicy) String() string {
	switch p {
	case Always:
		return "always"
	case OnPreviousSuccess:
		return "on-previous-success"
	default:
		return "unknown"
	}
}

/*
Command is a single command recognized on an input line.
An empty Name is a valid no-op placeholder.
*/
type Command struct {
	Name   string
	Args   []string // Arguments in call order, quotes stripped
	Policy ExecPolicy
}

// New creates an empty command with the Always policy.
func New() *Command {
	return &Command{Policy: Always}
}

// SetName replaces the command's name.
func (c *Command) SetName(name string) {
	c.Name = name
}

// AddArg appends an argument to the end of the argument list.
func (c *Command) AddArg(arg string) {
	c.Args = append(c.Args, arg)
}

// Argv returns the argument vector handed to a spawned process: the name followed by the arguments.
func (c *Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

// IsLocalBinary reports whether the name addresses a binary relative to the working directory.
func (c *Command) IsLocalBinary(prefix string) bool {
	return prefix != "" && strings.HasPrefix(c.Name, prefix)
}

// TrimLocalPrefix strips prefix from the name in place.
func (c *Command) TrimLocalPrefix(prefix string) {
	c.Name = strings.TrimPrefix(c.Name, prefix)
}

func (c *Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Batch is the ordered list of commands parsed out of one input line.
type Batch []*Command

// Len returns the number of commands in the batch.
func (b Batch) Len() int {
	return len(b)
}
