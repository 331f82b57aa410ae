package testutil

import (
	"errors"

	"github.com/AntonioJCosta/crush/internal/core/domain/command"
	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// MockLineParser is a mock implementation of ports.LineParser.
type MockLineParser struct {
	ParseFunc func(line string) (command.Batch, error)
}

// Parse calls the mock ParseFunc.
func (m *MockLineParser) Parse(line string) (command.Batch, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(line)
	}
	return nil, errors.New("MockLineParser.ParseFunc not implemented")
}

var _ ports.LineParser = (*MockLineParser)(nil)
