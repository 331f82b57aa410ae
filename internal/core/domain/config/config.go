/*
Package config defines the interpreter's user configuration.
*/
package config

// Defaults mirror the historical behavior of the interpreter.
const (
	DefaultPrompt        = ">"
	DefaultHistoryFile   = ".crush_history" // Relative to the home directory
	DefaultHistoryLimit  = 1000
	DefaultMaxLineLength = 512
)

// Config holds settings read from the YAML configuration file.
type Config struct {
	Prompt        string `yaml:"prompt" validate:"required"`
	Banner        bool   `yaml:"banner"`
	HistoryFile   string `yaml:"history_file"`
	HistoryLimit  int    `yaml:"history_limit" validate:"gte=0"`
	MaxLineLength int    `yaml:"max_line_length" validate:"gt=0"`
	Color         bool   `yaml:"color"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Prompt:        DefaultPrompt,
		Banner:        true,
		HistoryLimit:  DefaultHistoryLimit,
		MaxLineLength: DefaultMaxLineLength,
		Color:         true,
	}
}
