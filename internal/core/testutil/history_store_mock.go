package testutil

import (
	"github.com/AntonioJCosta/crush/internal/core/domain/history"
	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// MockHistoryStore is an in-memory ports.HistoryStore.
type MockHistoryStore struct {
	Lines     []string
	AppendErr error
	Path      string
}

// Append records line unless AppendErr is set.
func (m *MockHistoryStore) Append(line string) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Lines = append(m.Lines, line)
	return nil
}

// Recent returns up to limit of the most recent lines, oldest first.
func (m *MockHistoryStore) Recent(limit int) ([]string, error) {
	if limit <= 0 || limit > len(m.Lines) {
		limit = len(m.Lines)
	}
	return m.Lines[len(m.Lines)-limit:], nil
}

// Frequencies is not needed by the handlers under test and returns nothing.
func (m *MockHistoryStore) Frequencies(int) ([]history.LineFrequency, error) {
	return nil, nil
}

// GetHistoryFilePath returns Path.
func (m *MockHistoryStore) GetHistoryFilePath() string {
	return m.Path
}

var _ ports.HistoryStore = (*MockHistoryStore)(nil)
