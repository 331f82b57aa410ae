package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/abiosoft/readline"

	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// ErrInterrupt is returned by a LineSource when the user discards the current line.
var ErrInterrupt = errors.New("line interrupted")

// maxScanLine bounds a single line read by ScannerSource. Lines above the
// configured limit are rejected by the session, not by the scanner.
const maxScanLine = 1 << 20

// LineSource yields input lines without their terminator.
// ReadLine returns io.EOF when input ends.
type LineSource interface {
	ReadLine() (string, error)
	Close() error
}

// ScannerSource reads lines from a script or a non-interactive stream.
type ScannerSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

// NewScannerSource creates a ScannerSource over r. If r is an io.Closer it is
// closed by Close.
func NewScannerSource(r io.Reader) *ScannerSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxScanLine)
	s := &ScannerSource{scanner: scanner}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// ReadLine returns the next line.
func (s *ScannerSource) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("reading line: %w", err)
	}
	return "", io.EOF
}

// Close closes the underlying reader when it has one.
func (s *ScannerSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// ReadlineSource reads lines from a terminal with line editing and history.
// The prompt is rebuilt before every line so it follows cd.
type ReadlineSource struct {
	instance *readline.Instance
	prompt   func() string
}

// NewReadlineSource creates a ReadlineSource. Recent lines from store, if
// any, are loaded into the in-memory history so arrow keys recall them.
func NewReadlineSource(prompt func() string, store ports.HistoryStore, historyLimit int) (*ReadlineSource, error) {
	cfg := &readline.Config{
		Prompt:                 prompt(),
		HistoryLimit:           historyLimit,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
	}
	if err := cfg.Init(); err != nil {
		return nil, fmt.Errorf("initializing line editor: %w", err)
	}

	instance, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating line editor: %w", err)
	}

	if store != nil {
		lines, err := store.Recent(historyLimit)
		if err == nil {
			for _, line := range lines {
				_ = instance.SaveHistory(line)
			}
		}
	}

	return &ReadlineSource{instance: instance, prompt: prompt}, nil
}

// ReadLine shows the prompt and returns the edited line.
func (s *ReadlineSource) ReadLine() (string, error) {
	s.instance.SetPrompt(s.prompt())
	line, err := s.instance.Readline()
	switch {
	case err == readline.ErrInterrupt:
		return "", ErrInterrupt
	case err != nil:
		return "", err
	}
	// Only lines actually run are recalled.
	_ = s.instance.SaveHistory(line)
	return line, nil
}

// Close restores the terminal.
func (s *ReadlineSource) Close() error {
	return s.instance.Close()
}
