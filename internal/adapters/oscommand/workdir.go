package oscommand

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// OSWorkingDirectory implements the WorkingDirectory interface on the process's own working directory.
type OSWorkingDirectory struct{}

// NewOSWorkingDirectory creates a new OSWorkingDirectory.
func NewOSWorkingDirectory() ports.WorkingDirectory {
	return &OSWorkingDirectory{}
}

// Getwd returns the current working directory.
func (w *OSWorkingDirectory) Getwd() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return dir, nil
}

// Chdir changes the current working directory. It fails, leaving the directory
// unchanged, when dir does not exist or is not a directory.
func (w *OSWorkingDirectory) Chdir(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("changing directory to %s: %w", dir, err)
	}
	return nil
}
