package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/crush/internal/core/domain/config"
	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// HistFileEnv overrides every other way of locating the history file.
const HistFileEnv = "CRUSH_HISTFILE"

// DefaultHistoryFileFinder locates the history file from the environment, the
// configured path, or the default file in the home directory, in that order.
type DefaultHistoryFileFinder struct {
	configured string
	homeDir    func() (string, error)
}

// NewDefaultHistoryFileFinder creates a new DefaultHistoryFileFinder.
// configured may be empty.
func NewDefaultHistoryFileFinder(configured string) ports.HistoryFileFinder {
	return &DefaultHistoryFileFinder{configured: configured, homeDir: os.UserHomeDir}
}

// Find implements the ports.HistoryFileFinder interface.
// The file does not need to exist yet.
func (d *DefaultHistoryFileFinder) Find() (string, error) {
	home, err := d.homeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	for _, candidate := range []string{os.Getenv(HistFileEnv), d.configured} {
		if candidate != "" {
			return resolve(home, candidate), nil
		}
	}
	return filepath.Join(home, config.DefaultHistoryFile), nil
}

// resolve expands a leading ~ and anchors relative paths at home.
func resolve(home, path string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	case filepath.IsAbs(path):
		return path
	default:
		return filepath.Join(home, path)
	}
}
