package ports

import "github.com/AntonioJCosta/crush/internal/core/domain/history"

// HistoryStore persists the lines entered in interactive mode.
type HistoryStore interface {
	Append(line string) error
	Recent(limit int) ([]string, error)
	Frequencies(limit int) ([]history.LineFrequency, error)
	GetHistoryFilePath() string
}
