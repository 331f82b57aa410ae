package execution

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/crush/internal/core/domain/command"
	"github.com/AntonioJCosta/crush/internal/core/domain/process"
	"github.com/AntonioJCosta/crush/internal/core/testutil"
)

type fixture struct {
	spawner  *testutil.MockProcessSpawner
	workDir  *testutil.MockWorkingDirectory
	reporter *testutil.MockReporter
	exits    []int
}

func newFixture(statuses map[string]process.Status) *fixture {
	return &fixture{
		spawner:  &testutil.MockProcessSpawner{SpawnAndWaitFunc: testutil.ExitStatuses(statuses)},
		workDir:  testutil.NewMockWorkingDirectory("/work", "/tmp", "/home/user"),
		reporter: &testutil.MockReporter{},
	}
}

func (f *fixture) engine(opts ...Option) *service {
	opts = append([]Option{
		WithExit(func(code int) { f.exits = append(f.exits, code) }),
		WithHomeDir(func() (string, error) { return "/home/user", nil }),
	}, opts...)
	return NewService(f.spawner, f.workDir, f.reporter, opts...).(*service)
}

func step(policy command.ExecPolicy, name string, args ...string) *command.Command {
	return &command.Command{Name: name, Args: args, Policy: policy}
}

func TestNewService(t *testing.T) {
	f := newFixture(nil)

	tests := []struct {
		name        string
		build       func()
		expectPanic string
	}{
		{"nil spawner", func() { NewService(nil, f.workDir, f.reporter) }, "spawner cannot be nil"},
		{"nil working directory", func() { NewService(f.spawner, nil, f.reporter) }, "workingDir cannot be nil"},
		{"nil reporter", func() { NewService(f.spawner, f.workDir, nil) }, "reporter cannot be nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, tt.expectPanic, tt.build)
		})
	}

	t.Run("all collaborators present", func(t *testing.T) {
		assert.NotNil(t, NewService(f.spawner, f.workDir, f.reporter))
	})
}

func TestService_Execute_Policies(t *testing.T) {
	always, onSuccess := command.Always, command.OnPreviousSuccess

	tests := []struct {
		name         string
		batch        command.Batch
		statuses     map[string]process.Status
		wantSpawned  []string
		wantSkipped  []string
		wantFailures int
	}{
		{
			name:         "empty batch",
			batch:        command.Batch{},
			wantSpawned:  []string{},
			wantFailures: 0,
		},
		{
			name:         "sequence runs every command regardless of status",
			batch:        command.Batch{step(always, "a"), step(always, "b"), step(always, "c")},
			statuses:     map[string]process.Status{"a": 1},
			wantSpawned:  []string{"a", "b", "c"},
			wantFailures: 1,
		},
		{
			name:         "chain runs while commands succeed",
			batch:        command.Batch{step(always, "a"), step(onSuccess, "b"), step(onSuccess, "c")},
			wantSpawned:  []string{"a", "b", "c"},
			wantFailures: 0,
		},
		{
			name: "failure is carried through the rest of the chain",
			batch: command.Batch{
				step(always, "a"), step(always, "b"), step(onSuccess, "c"), step(onSuccess, "d"),
			},
			statuses:     map[string]process.Status{"b": 1},
			wantSpawned:  []string{"a", "b"},
			wantSkipped:  []string{"c", "d"},
			wantFailures: 3,
		},
		{
			name: "a new chain starts fresh after a failed one",
			batch: command.Batch{
				step(always, "a"), step(onSuccess, "b"), step(always, "c"), step(onSuccess, "d"),
			},
			statuses:     map[string]process.Status{"a": 2},
			wantSpawned:  []string{"a", "c", "d"},
			wantSkipped:  []string{"b"},
			wantFailures: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			f := newFixture(tt.statuses)
			engine := f.engine()

			// When
			failures, err := engine.Execute(tt.batch)

			// Then
			require.NoError(t, err)
			assert.Equal(t, tt.wantFailures, failures)
			assert.Equal(t, tt.wantSpawned, f.spawner.Names())
			assert.Equal(t, tt.wantSkipped, f.reporter.SkippedNames)
		})
	}
}

func TestService_Execute_Spawn(t *testing.T) {
	t.Run("external program runs in the working directory", func(t *testing.T) {
		f := newFixture(nil)

		failures, err := f.engine().Execute(command.Batch{step(command.Always, "ls", "-l", "x y")})

		require.NoError(t, err)
		assert.Zero(t, failures)
		require.Len(t, f.spawner.Requests, 1)
		assert.Equal(t, process.Request{Name: "ls", Args: []string{"-l", "x y"}, Dir: "/work"}, f.spawner.Requests[0])
	})

	t.Run("local prefix is stripped and marks the request local", func(t *testing.T) {
		f := newFixture(nil)

		_, err := f.engine().Execute(command.Batch{step(command.Always, "./prog", "arg1")})

		require.NoError(t, err)
		require.Len(t, f.spawner.Requests, 1)
		assert.Equal(t, process.Request{Name: "prog", Args: []string{"arg1"}, Dir: "/work", Local: true}, f.spawner.Requests[0])
	})

	t.Run("custom local prefix", func(t *testing.T) {
		f := newFixture(nil)

		_, err := f.engine(WithLocalPrefix("@")).Execute(command.Batch{step(command.Always, "@prog")})

		require.NoError(t, err)
		require.Len(t, f.spawner.Requests, 1)
		assert.Equal(t, "prog", f.spawner.Requests[0].Name)
		assert.True(t, f.spawner.Requests[0].Local)
	})

	t.Run("unknown program is reported and fails the command", func(t *testing.T) {
		f := newFixture(nil)
		f.spawner.SpawnAndWaitFunc = func(req process.Request) (process.Status, error) {
			return process.StatusNotFound, &process.SpawnError{Name: req.Name, Kind: process.NotFound, Err: errors.New("not found")}
		}

		failures, err := f.engine().Execute(command.Batch{
			step(command.Always, "nosuchprog"),
			step(command.OnPreviousSuccess, "echo"),
		})

		require.NoError(t, err)
		assert.Equal(t, 2, failures)
		assert.Equal(t, []string{"No command 'nosuchprog' found."}, f.reporter.Failures)
		assert.Equal(t, []string{"echo"}, f.reporter.SkippedNames)
	})

	t.Run("non executable program is reported", func(t *testing.T) {
		f := newFixture(nil)
		f.spawner.SpawnAndWaitFunc = func(req process.Request) (process.Status, error) {
			return process.StatusNotExecutable, &process.SpawnError{Name: req.Name, Kind: process.NotExecutable, Err: errors.New("permission denied")}
		}

		failures, err := f.engine().Execute(command.Batch{step(command.Always, "./data.txt")})

		require.NoError(t, err)
		assert.Equal(t, 1, failures)
		assert.Equal(t, []string{"Cannot execute 'data.txt': permission denied"}, f.reporter.Failures)
	})

	t.Run("resource exhaustion stops the batch", func(t *testing.T) {
		f := newFixture(nil)
		f.spawner.SpawnAndWaitFunc = func(req process.Request) (process.Status, error) {
			return process.StatusNotFound, &process.SpawnError{
				Name: req.Name, Kind: process.Exhausted, Err: process.ErrResourceExhausted,
			}
		}

		_, err := f.engine().Execute(command.Batch{step(command.Always, "a"), step(command.Always, "b")})

		require.Error(t, err)
		assert.ErrorIs(t, err, process.ErrResourceExhausted)
		assert.Equal(t, []string{"a"}, f.spawner.Names())
	})

	t.Run("local program without a working directory is not spawned", func(t *testing.T) {
		f := newFixture(nil)
		f.workDir.GetwdErr = errors.New("getwd failed")

		failures, err := f.engine().Execute(command.Batch{step(command.Always, "./prog")})

		require.NoError(t, err)
		assert.Equal(t, 1, failures)
		assert.Empty(t, f.spawner.Requests)
		require.Len(t, f.reporter.Failures, 1)
		assert.Contains(t, f.reporter.Failures[0], "Cannot resolve 'prog'")
	})
}

func TestService_Execute_Builtins(t *testing.T) {
	t.Run("quit and exit terminate with status zero", func(t *testing.T) {
		f := newFixture(nil)

		failures, err := f.engine().Execute(command.Batch{step(command.Always, "quit"), step(command.Always, "exit", "5")})

		require.NoError(t, err)
		assert.Zero(t, failures)
		assert.Equal(t, []int{0, 0}, f.exits)
		assert.Empty(t, f.spawner.Requests)
	})

	t.Run("cd changes directory for later commands", func(t *testing.T) {
		f := newFixture(nil)

		failures, err := f.engine().Execute(command.Batch{
			step(command.Always, "cd", "/tmp"),
			step(command.OnPreviousSuccess, "ls"),
		})

		require.NoError(t, err)
		assert.Zero(t, failures)
		assert.Equal(t, "/tmp", f.workDir.Dir)
		require.Len(t, f.spawner.Requests, 1)
		assert.Equal(t, "/tmp", f.spawner.Requests[0].Dir)
	})

	t.Run("cd without arguments goes home", func(t *testing.T) {
		f := newFixture(nil)

		failures, err := f.engine().Execute(command.Batch{step(command.Always, "cd")})

		require.NoError(t, err)
		assert.Zero(t, failures)
		assert.Equal(t, "/home/user", f.workDir.Dir)
	})

	t.Run("cd to a missing directory fails and keeps the directory", func(t *testing.T) {
		f := newFixture(nil)

		failures, err := f.engine().Execute(command.Batch{
			step(command.Always, "cd", "/missing"),
			step(command.OnPreviousSuccess, "ls"),
		})

		require.NoError(t, err)
		assert.Equal(t, 2, failures)
		assert.Equal(t, "/work", f.workDir.Dir)
		assert.Equal(t, []string{"No such directory exists: /missing"}, f.reporter.Failures)
		assert.Equal(t, []string{"ls"}, f.reporter.SkippedNames)
	})

	t.Run("cd to a file reports the underlying error", func(t *testing.T) {
		f := newFixture(nil)
		f.workDir.Files = map[string]bool{"/work/notes.txt": true}

		failures, err := f.engine().Execute(command.Batch{step(command.Always, "cd", "/work/notes.txt")})

		require.NoError(t, err)
		assert.Equal(t, 1, failures)
		assert.Equal(t, "/work", f.workDir.Dir)
		require.Len(t, f.reporter.Failures, 1)
		assert.Equal(t, "cd: changing directory to /work/notes.txt: not a directory", f.reporter.Failures[0])
	})

	t.Run("cd without a home directory fails", func(t *testing.T) {
		f := newFixture(nil)
		engine := f.engine(WithHomeDir(func() (string, error) { return "", errors.New("no HOME") }))

		failures, err := engine.Execute(command.Batch{step(command.Always, "cd")})

		require.NoError(t, err)
		assert.Equal(t, 1, failures)
		assert.Equal(t, "/work", f.workDir.Dir)
	})

	t.Run("empty command name is a successful no-op", func(t *testing.T) {
		f := newFixture(nil)

		failures, err := f.engine().Execute(command.Batch{step(command.Always, ""), step(command.OnPreviousSuccess, "ls")})

		require.NoError(t, err)
		assert.Zero(t, failures)
		assert.Equal(t, []string{"ls"}, f.spawner.Names())
	})

	t.Run("empty name with arguments is not a program", func(t *testing.T) {
		f := newFixture(nil)

		failures, err := f.engine().Execute(command.Batch{
			step(command.Always, "", "foo"),
			step(command.OnPreviousSuccess, "ls"),
		})

		require.NoError(t, err)
		assert.Equal(t, 2, failures)
		assert.Empty(t, f.spawner.Requests)
		assert.Equal(t, []string{"No command '' found."}, f.reporter.Failures)
		assert.Equal(t, []string{"ls"}, f.reporter.SkippedNames)
	})

	t.Run("custom registry replaces the defaults", func(t *testing.T) {
		f := newFixture(nil)
		var seen []string
		registry := Registry{
			"hello": BuiltinFunc(func(_ *Env, cmd *command.Command) int {
				seen = append(seen, cmd.Args...)
				return 4
			}),
		}

		failures, err := f.engine(WithRegistry(registry)).Execute(command.Batch{
			step(command.Always, "hello", "world"),
			step(command.Always, "cd", "/tmp"),
		})

		require.NoError(t, err)
		assert.Equal(t, 1, failures)
		assert.Equal(t, []string{"world"}, seen)
		assert.Equal(t, []string{"cd"}, f.spawner.Names(), "cd is external once the registry drops it")
	})
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{"cd", "exit", "quit"}, r.Names())

	for _, name := range []string{"quit", "exit", "cd", ""} {
		_, ok := r.Lookup(name)
		assert.True(t, ok, "expected %q to be a built-in", name)
	}
	_, ok := r.Lookup("ls")
	assert.False(t, ok)
}
