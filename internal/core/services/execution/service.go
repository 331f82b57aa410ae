package execution

import (
	"errors"
	"fmt"
	"os"

	"github.com/AntonioJCosta/crush/internal/core/domain/command"
	"github.com/AntonioJCosta/crush/internal/core/domain/grammar"
	"github.com/AntonioJCosta/crush/internal/core/domain/process"
	"github.com/AntonioJCosta/crush/internal/core/ports"
)

type service struct {
	spawner     ports.ProcessSpawner
	workingDir  ports.WorkingDirectory
	reporter    ports.Reporter
	builtins    Registry
	env         *Env
	localPrefix string
}

// Option customizes the engine created by NewService.
type Option func(*service)

// WithRegistry replaces the default built-in registry.
func WithRegistry(r Registry) Option {
	return func(s *service) { s.builtins = r }
}

// WithExit replaces the function the quit and exit built-ins terminate the interpreter with.
func WithExit(exit func(code int)) Option {
	return func(s *service) { s.env.Exit = exit }
}

// WithHomeDir replaces how cd without arguments finds the home directory.
func WithHomeDir(home func() (string, error)) Option {
	return func(s *service) { s.env.HomeDir = home }
}

// WithLocalPrefix sets the prefix that marks a binary in the working directory.
func WithLocalPrefix(prefix string) Option {
	return func(s *service) { s.localPrefix = prefix }
}

// NewService creates a new execution engine.
// It panics if spawner, workingDir, or reporter are nil.
func NewService(
	spawner ports.ProcessSpawner,
	workingDir ports.WorkingDirectory,
	reporter ports.Reporter,
	opts ...Option,
) ports.CommandEngine {
	if spawner == nil {
		panic("spawner cannot be nil")
	}
	if workingDir == nil {
		panic("workingDir cannot be nil")
	}
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	s := &service{
		spawner:     spawner,
		workingDir:  workingDir,
		reporter:    reporter,
		builtins:    DefaultRegistry(),
		localPrefix: grammar.LocalPrefix,
		env: &Env{
			WorkingDir: workingDir,
			Reporter:   reporter,
			Exit:       os.Exit,
			HomeDir:    os.UserHomeDir,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute runs the commands of batch in order and returns how many of them failed.
//
// A command that depends on its predecessor is skipped when the predecessor
// failed, and the skipped command counts as failed too, so the rest of its
// chain is skipped as well. The returned error is non-nil only when the
// interpreter cannot go on.
func (s *service) Execute(batch command.Batch) (int, error) {
	previousSucceeded := true
	failures := 0

	for _, cmd := range batch {
		if cmd.Policy == command.OnPreviousSuccess && !previousSucceeded {
			s.reporter.Skipped(cmd)
			failures++
			continue
		}

		status, err := s.run(cmd)
		if err != nil {
			return failures, err
		}

		previousSucceeded = status == 0
		if !previousSucceeded {
			failures++
		}
	}

	return failures, nil
}

// run resolves cmd to a built-in or an external program and executes it.
func (s *service) run(cmd *command.Command) (int, error) {
	if builtin, ok := s.builtins.Lookup(cmd.Name); ok {
		return builtin.Main(s.env, cmd), nil
	}

	local := cmd.IsLocalBinary(s.localPrefix)
	if local {
		cmd.TrimLocalPrefix(s.localPrefix)
	}
	return s.spawn(cmd, local)
}

// spawn executes cmd as a child process and translates spawn failures into statuses.
func (s *service) spawn(cmd *command.Command, local bool) (int, error) {
	req := process.Request{Name: cmd.Name, Args: cmd.Args, Local: local}

	dir, err := s.workingDir.Getwd()
	switch {
	case err == nil:
		req.Dir = dir
	case local:
		s.reporter.Failure("Cannot resolve '%s': %v", cmd.Name, err)
		return process.StatusNotFound, nil
	}

	status, err := s.spawner.SpawnAndWait(req)
	if err == nil {
		return int(status), nil
	}

	var spawnErr *process.SpawnError
	if !errors.As(err, &spawnErr) {
		s.reporter.Failure("Failed to run '%s': %v", cmd.Name, err)
		return nonZero(int(status)), nil
	}

	if spawnErr.Fatal() {
		return int(status), fmt.Errorf("spawning '%s': %w", cmd.Name, err)
	}
	switch spawnErr.Kind {
	case process.NotFound:
		s.reporter.Failure("No command '%s' found.", cmd.Name)
	default:
		s.reporter.Failure("Cannot execute '%s': %v", cmd.Name, spawnErr.Err)
	}
	return int(spawnErr.Status()), nil
}

func nonZero(status int) int {
	if status == 0 {
		return 1
	}
	return status
}
