package testutil

import (
	"fmt"

	"github.com/AntonioJCosta/crush/internal/core/domain/command"
	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// MockReporter records diagnostics instead of printing them.
type MockReporter struct {
	SkippedNames []string
	Failures     []string
}

// Skipped records the name of the skipped command.
func (m *MockReporter) Skipped(cmd *command.Command) {
	m.SkippedNames = append(m.SkippedNames, cmd.Name)
}

// Failure records the formatted message.
func (m *MockReporter) Failure(format string, args ...any) {
	m.Failures = append(m.Failures, fmt.Sprintf(format, args...))
}

var _ ports.Reporter = (*MockReporter)(nil)
