package testutil

import (
	"errors"

	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// MockLineInterpreter is a mock implementation of ports.LineInterpreter.
type MockLineInterpreter struct {
	RunLineFunc func(line string) (int, error)
	Lines       []string
}

// RunLine records line and calls the mock RunLineFunc.
func (m *MockLineInterpreter) RunLine(line string) (int, error) {
	m.Lines = append(m.Lines, line)
	if m.RunLineFunc != nil {
		return m.RunLineFunc(line)
	}
	return 0, errors.New("MockLineInterpreter.RunLineFunc not implemented")
}

var _ ports.LineInterpreter = (*MockLineInterpreter)(nil)
