/*
Package process describes spawning an external program and waiting for it.
*/
package process

import (
	"errors"
	"fmt"
)

// Exit statuses used when a program never started.
const (
	StatusNotExecutable = 126
	StatusNotFound      = 127
)

// ErrResourceExhausted is returned when the host cannot create a new process.
// The interpreter cannot reliably continue after it.
var ErrResourceExhausted = errors.New("cannot create process: resources exhausted")

// Request describes one program to spawn.
type Request struct {
	Name  string   // argv[0], also what gets resolved
	Args  []string // argv[1:]
	Dir   string   // Working directory of the child
	Local bool     // Resolve Name against Dir instead of the search path
}

// Argv returns the full argument vector of the request.
func (r Request) Argv() []string {
	argv := make([]string, 0, len(r.Args)+1)
	argv = append(argv, r.Name)
	return append(argv, r.Args...)
}

// Status is the exit status of a child that ran to completion.
type Status int

// Success reports whether the child exited with status zero.
func (s Status) Success() bool {
	return s == 0
}

// ErrorKind classifies why a program could not be started.
type ErrorKind int

const (
	NotFound ErrorKind = iota
	NotExecutable
	Exhausted
)

func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case NotExecutable:
		return "not executable"
	case Exhausted:
		return "resources exhausted"
	default:
		return "unknown"
	}
}

// SpawnError reports a program that never ran.
type SpawnError struct {
	Name string
	Kind ErrorKind
	Err  error
}

func (e *SpawnError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Name, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Name, e.Kind, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Status returns the exit status a shell reports for a program that could not start.
func (e *SpawnError) Status() Status {
	if e.Kind == NotExecutable {
		return StatusNotExecutable
	}
	return StatusNotFound
}

// Fatal reports whether the interpreter must stop after this error.
func (e *SpawnError) Fatal() bool {
	return e.Kind == Exhausted
}
