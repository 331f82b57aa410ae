package execution

import (
	"errors"
	"io/fs"
	"sort"

	"github.com/AntonioJCosta/crush/internal/core/domain/command"
	"github.com/AntonioJCosta/crush/internal/core/domain/process"
	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// Env is what built-ins may act on besides the command itself.
type Env struct {
	WorkingDir ports.WorkingDirectory
	Reporter   ports.Reporter
	Exit       func(code int)
	HomeDir    func() (string, error)
}

// Builtin is a command implemented inside the interpreter.
type Builtin interface {
	Main(env *Env, cmd *command.Command) int
}

// BuiltinFunc adapts a function to the Builtin interface.
type BuiltinFunc func(env *Env, cmd *command.Command) int

func (f BuiltinFunc) Main(env *Env, cmd *command.Command) int {
	return f(env, cmd)
}

var _ Builtin = (BuiltinFunc)(nil)

// Registry maps command names to built-ins.
type Registry map[string]Builtin

// DefaultRegistry returns the interpreter's built-ins. The empty name is the
// no-op produced by blank statements.
func DefaultRegistry() Registry {
	return Registry{
		"quit": BuiltinFunc(Quit),
		"exit": BuiltinFunc(Quit),
		"cd":   BuiltinFunc(ChangeDir),
		"":     BuiltinFunc(Nop),
	}
}

// Lookup returns the built-in registered under name.
func (r Registry) Lookup(name string) (Builtin, bool) {
	b, ok := r[name]
	return b, ok
}

// Names returns the sorted names of all non-empty built-ins.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Quit terminates the interpreter with status 0. It does not return.
func Quit(env *Env, _ *command.Command) int {
	env.Exit(0)
	return 0
}

// ChangeDir changes the interpreter's working directory to its first argument,
// or to the home directory when called without one.
func ChangeDir(env *Env, cmd *command.Command) int {
	var dir string
	if len(cmd.Args) > 0 {
		dir = cmd.Args[0]
	} else {
		home, err := env.HomeDir()
		if err != nil {
			env.Reporter.Failure("cd: cannot determine home directory: %v", err)
			return 1
		}
		dir = home
	}

	if err := env.WorkingDir.Chdir(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			env.Reporter.Failure("No such directory exists: %s", dir)
		} else {
			env.Reporter.Failure("cd: %v", err)
		}
		return 1
	}
	return 0
}

// Nop succeeds for blank statements. An empty name that still carries
// arguments, as in `"" foo`, names no program and fails like one not found.
func Nop(env *Env, cmd *command.Command) int {
	if len(cmd.Args) > 0 {
		env.Reporter.Failure("No command '%s' found.", cmd.Name)
		return process.StatusNotFound
	}
	return 0
}
