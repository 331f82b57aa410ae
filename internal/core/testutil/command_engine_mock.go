package testutil

import (
	"errors"

	"github.com/AntonioJCosta/crush/internal/core/domain/command"
	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// MockCommandEngine is a mock implementation of ports.CommandEngine.
type MockCommandEngine struct {
	ExecuteFunc func(batch command.Batch) (int, error)
	Batches     []command.Batch
}

// Execute records batch and calls the mock ExecuteFunc.
func (m *MockCommandEngine) Execute(batch command.Batch) (int, error) {
	m.Batches = append(m.Batches, batch)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(batch)
	}
	return 0, errors.New("MockCommandEngine.ExecuteFunc not implemented")
}

var _ ports.CommandEngine = (*MockCommandEngine)(nil)
