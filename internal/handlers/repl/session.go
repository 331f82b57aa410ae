package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/crush/internal/core/domain/config"
	"github.com/AntonioJCosta/crush/internal/core/domain/grammar"
	"github.com/AntonioJCosta/crush/internal/core/ports"
	"github.com/AntonioJCosta/crush/internal/handlers/ui"
)

// Result summarizes a finished session.
type Result struct {
	Lines    int // Lines read, including rejected ones
	Failures int // Failed or skipped commands
	Rejected int // Lines not executed: syntax errors and over-long lines
}

// Session feeds lines from a LineSource to the interpreter until input ends.
type Session struct {
	source        LineSource
	interpreter   ports.LineInterpreter
	out           io.Writer
	history       ports.HistoryStore
	maxLineLength int
	banner        bool
}

// Option customizes a Session.
type Option func(*Session)

// WithHistory records every non-blank line in store before it runs.
func WithHistory(store ports.HistoryStore) Option {
	return func(s *Session) { s.history = store }
}

// WithMaxLineLength rejects lines longer than n bytes.
func WithMaxLineLength(n int) Option {
	return func(s *Session) { s.maxLineLength = n }
}

// WithBanner prints the welcome banner when the session starts.
func WithBanner(enabled bool) Option {
	return func(s *Session) { s.banner = enabled }
}

// NewSession creates a session. Diagnostics of the read loop go to out.
// It panics if source, interpreter, or out are nil.
func NewSession(source LineSource, interpreter ports.LineInterpreter, out io.Writer, opts ...Option) *Session {
	if source == nil {
		panic("source cannot be nil")
	}
	if interpreter == nil {
		panic("interpreter cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}
	s := &Session{
		source:        source,
		interpreter:   interpreter,
		out:           out,
		maxLineLength: config.DefaultMaxLineLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads and runs lines until the source reports io.EOF. An interrupted
// line is discarded. The error is non-nil when input could not be read or
// the interpreter hit a fatal error.
func (s *Session) Run() (Result, error) {
	var res Result

	if s.banner {
		fmt.Fprint(s.out, ui.InfoColor(Banner))
	}

	for {
		line, err := s.source.ReadLine()
		switch {
		case errors.Is(err, io.EOF):
			return res, nil
		case errors.Is(err, ErrInterrupt):
			continue
		case err != nil:
			return res, fmt.Errorf("reading input: %w", err)
		}

		res.Lines++
		if err := s.runLine(line, &res); err != nil {
			return res, err
		}
	}
}

func (s *Session) runLine(line string, res *Result) error {
	line = strings.TrimRight(line, "\r\n")

	if s.maxLineLength > 0 && len(line) > s.maxLineLength {
		fmt.Fprintln(s.out, ui.ErrorColor(fmt.Sprintf("Line too long (%d characters, limit is %d), not executed.", len(line), s.maxLineLength)))
		res.Rejected++
		return nil
	}

	if s.history != nil && strings.TrimSpace(line) != "" {
		if err := s.history.Append(line); err != nil {
			fmt.Fprintln(s.out, ui.WarningColor(fmt.Sprintf("Warning: could not save history: %v", err)))
		}
	}

	failures, err := s.interpreter.RunLine(line)
	res.Failures += failures

	var syntaxErr *grammar.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		fmt.Fprintln(s.out, ui.ErrorColor("Syntax Error: "+syntaxErr.Error()))
		fmt.Fprintln(s.out, ui.ErrorColor(fmt.Sprintf("Could not parse line '%s'", line)))
		res.Rejected++
	case err != nil:
		return err
	}
	return nil
}
