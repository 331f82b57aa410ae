package interpreter

import (
	"fmt"

	"github.com/AntonioJCosta/crush/internal/core/ports"
)

type service struct {
	parser ports.LineParser
	engine ports.CommandEngine
}

// NewService creates a new line interpreter.
// It panics if parser or engine are nil.
func NewService(parser ports.LineParser, engine ports.CommandEngine) ports.LineInterpreter {
	if parser == nil {
		panic("parser cannot be nil")
	}
	if engine == nil {
		panic("engine cannot be nil")
	}
	return &service{parser: parser, engine: engine}
}

// RunLine parses line into a batch and executes it. Nothing runs when the
// line does not parse; the parser's error is returned unwrapped so callers can
// match it with errors.As.
func (s *service) RunLine(line string) (int, error) {
	batch, err := s.parser.Parse(line)
	if err != nil {
		return 0, err
	}

	failures, err := s.engine.Execute(batch)
	if err != nil {
		return failures, fmt.Errorf("executing line: %w", err)
	}
	return failures, nil
}
