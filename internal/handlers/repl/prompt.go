package repl

import (
	"os"
	"os/user"
	"strings"

	"github.com/AntonioJCosta/crush/internal/handlers/ui"
)

// fallbackText replaces a prompt part that cannot be determined.
const fallbackText = "(too long text)"

// PromptBuilder renders the interactive prompt "<login> <cwd> <suffix> ".
type PromptBuilder struct {
	Login  func() (string, error)
	Getwd  func() (string, error)
	Suffix string
}

// NewPromptBuilder creates a PromptBuilder for the current user and process.
func NewPromptBuilder(suffix string) *PromptBuilder {
	return &PromptBuilder{
		Login: func() (string, error) {
			u, err := user.Current()
			if err != nil {
				return "", err
			}
			return u.Username, nil
		},
		Getwd:  os.Getwd,
		Suffix: suffix,
	}
}

// Build returns the prompt text. Parts after one that cannot be determined are
// replaced with a fixed marker.
func (p *PromptBuilder) Build() string {
	parts := make([]string, 0, 3)

	if login, err := p.Login(); err != nil || login == "" {
		parts = append(parts, fallbackText)
	} else if wd, err := p.Getwd(); err != nil {
		parts = append(parts, login, fallbackText)
	} else {
		parts = append(parts, login, wd)
	}

	parts = append(parts, p.Suffix)
	return ui.PromptColor(strings.Join(parts, " ")) + " "
}
