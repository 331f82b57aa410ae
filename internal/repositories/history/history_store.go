package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/AntonioJCosta/crush/internal/core/domain/history"
	"github.com/AntonioJCosta/crush/internal/core/ports"
)

/*
FileStore keeps interactive input lines in a plain text file, one line per
entry, oldest first. It implements the ports.HistoryStore interface.

When limit is positive the file never keeps more than limit entries.
*/
type FileStore struct {
	fs          afero.Fs
	historyFile string
	limit       int
}

// NewFileStore creates a FileStore on fs at the path found by fileFinder.
func NewFileStore(fs afero.Fs, fileFinder ports.HistoryFileFinder, limit int) (ports.HistoryStore, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if fileFinder == nil {
		return nil, fmt.Errorf("history file finder cannot be nil")
	}
	path, err := fileFinder.Find()
	if err != nil {
		return nil, fmt.Errorf("locating history file: %w", err)
	}
	if path == "" {
		return nil, fmt.Errorf("history file path cannot be empty")
	}
	return &FileStore{fs: fs, historyFile: path, limit: limit}, nil
}

// Append adds line to the history. Blank lines are ignored.
func (s *FileStore) Append(line string) error {
	line = normalize(line)
	if line == "" {
		return nil
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.historyFile), 0o755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	f, err := s.fs.OpenFile(s.historyFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening history file %s: %w", toUserFriendlyPath(s.historyFile), err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("writing history file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing history file: %w", err)
	}

	return s.truncate()
}

// Recent returns up to limit of the latest lines, oldest first.
// A non-positive limit returns every stored line.
func (s *FileStore) Recent(limit int) ([]string, error) {
	lines, err := s.readLines()
	if err != nil {
		return nil, err
	}
	return lastN(lines, limit), nil
}

// Frequencies returns up to limit distinct lines ordered by how often they
// were entered, most frequent first. Ties are ordered by line.
func (s *FileStore) Frequencies(limit int) ([]history.LineFrequency, error) {
	lines, err := s.readLines()
	if err != nil {
		return nil, err
	}
	return countFrequencies(lines, limit), nil
}

// GetHistoryFilePath returns the path of the history file.
func (s *FileStore) GetHistoryFilePath() string {
	return s.historyFile
}

func (s *FileStore) readLines() ([]string, error) {
	data, err := afero.ReadFile(s.fs, s.historyFile)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading history file %s: %w", toUserFriendlyPath(s.historyFile), err)
	}
	return splitLines(string(data)), nil
}

// truncate drops the oldest entries once the file holds more than limit.
func (s *FileStore) truncate() error {
	if s.limit <= 0 {
		return nil
	}
	lines, err := s.readLines()
	if err != nil {
		return err
	}
	if len(lines) <= s.limit {
		return nil
	}
	kept := strings.Join(lastN(lines, s.limit), "\n") + "\n"
	if err := afero.WriteFile(s.fs, s.historyFile, []byte(kept), 0o600); err != nil {
		return fmt.Errorf("truncating history file: %w", err)
	}
	return nil
}
