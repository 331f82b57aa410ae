package oscommand

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/AntonioJCosta/crush/internal/core/domain/process"
	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// OSProcessSpawner implements the ProcessSpawner interface using the operating system's process facilities.
type OSProcessSpawner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewOSProcessSpawner creates a spawner whose children share the given standard streams.
func NewOSProcessSpawner(stdin io.Reader, stdout, stderr io.Writer) ports.ProcessSpawner {
	return &OSProcessSpawner{stdin: stdin, stdout: stdout, stderr: stderr}
}

// NewStdProcessSpawner creates a spawner whose children inherit the interpreter's standard streams.
func NewStdProcessSpawner() ports.ProcessSpawner {
	return NewOSProcessSpawner(os.Stdin, os.Stdout, os.Stderr)
}

// SpawnAndWait starts the program described by req and blocks until it exits.
// The program is resolved through PATH, or against req.Dir for local binaries.
func (s *OSProcessSpawner) SpawnAndWait(req process.Request) (process.Status, error) {
	path, err := resolve(req)
	if err != nil {
		spawnErr := classify(req.Name, err)
		return spawnErr.Status(), spawnErr
	}

	cmd := &exec.Cmd{
		Path:   path,
		Args:   req.Argv(),
		Dir:    req.Dir,
		Stdin:  s.stdin,
		Stdout: s.stdout,
		Stderr: s.stderr,
	}

	if err := cmd.Start(); err != nil {
		spawnErr := classify(req.Name, err)
		return spawnErr.Status(), spawnErr
	}

	return waitStatus(cmd.Wait())
}

// resolve finds the executable for req the way the platform's process search does.
func resolve(req process.Request) (string, error) {
	if !req.Local {
		path, err := exec.LookPath(req.Name)
		if errors.Is(err, exec.ErrDot) {
			// A relative PATH entry matched; run it like execvp would.
			return path, nil
		}
		return path, err
	}

	dir := req.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving local binary %s: %w", req.Name, err)
		}
		dir = wd
	}
	// LookPath on a path with a separator only checks that it is an executable file.
	return exec.LookPath(filepath.Join(dir, req.Name))
}

// waitStatus converts the result of Wait into an exit status.
func waitStatus(err error) (process.Status, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return process.StatusNotFound, fmt.Errorf("waiting for child: %w", err)
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return process.Status(128 + int(ws.Signal())), nil
	}
	return process.Status(exitErr.ExitCode()), nil
}

// classify maps an error from resolving or starting a program onto a SpawnError.
func classify(name string, err error) *process.SpawnError {
	switch {
	case errors.Is(err, syscall.EAGAIN), errors.Is(err, syscall.ENOMEM):
		return &process.SpawnError{Name: name, Kind: process.Exhausted, Err: fmt.Errorf("%w: %v", process.ErrResourceExhausted, err)}
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return &process.SpawnError{Name: name, Kind: process.NotFound, Err: err}
	default:
		return &process.SpawnError{Name: name, Kind: process.NotExecutable, Err: err}
	}
}
