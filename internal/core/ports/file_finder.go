package ports

// HistoryFileFinder defines the contract for locating the history file.
type HistoryFileFinder interface {
	Find() (string, error)
}
