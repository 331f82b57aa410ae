package testutil

import (
	"fmt"
	"os"
	"syscall"

	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// MockWorkingDirectory is an in-memory ports.WorkingDirectory.
// Chdir succeeds only for directories listed in Existing; paths in Files
// exist but are not directories.
type MockWorkingDirectory struct {
	Dir      string
	Existing map[string]bool
	Files    map[string]bool
	GetwdErr error
}

// NewMockWorkingDirectory creates a mock starting in dir where the given directories exist.
func NewMockWorkingDirectory(dir string, existing ...string) *MockWorkingDirectory {
	m := &MockWorkingDirectory{Dir: dir, Existing: map[string]bool{dir: true}}
	for _, d := range existing {
		m.Existing[d] = true
	}
	return m
}

// Getwd returns the current mock directory.
func (m *MockWorkingDirectory) Getwd() (string, error) {
	if m.GetwdErr != nil {
		return "", m.GetwdErr
	}
	return m.Dir, nil
}

// Chdir changes the mock directory if the target exists.
func (m *MockWorkingDirectory) Chdir(dir string) error {
	if m.Files[dir] {
		return fmt.Errorf("changing directory to %s: %w", dir, syscall.ENOTDIR)
	}
	if !m.Existing[dir] {
		return fmt.Errorf("changing directory to %s: %w", dir, os.ErrNotExist)
	}
	m.Dir = dir
	return nil
}

var _ ports.WorkingDirectory = (*MockWorkingDirectory)(nil)
