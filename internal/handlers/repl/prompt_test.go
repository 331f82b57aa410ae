package repl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptBuilder_Build(t *testing.T) {
	login := func() (string, error) { return "dimitris", nil }
	wd := func() (string, error) { return "/home/dimitris/src", nil }
	failing := func() (string, error) { return "", errors.New("unavailable") }

	tests := []struct {
		name    string
		builder PromptBuilder
		want    string
	}{
		{"login and directory", PromptBuilder{Login: login, Getwd: wd, Suffix: ">"}, "dimitris /home/dimitris/src > "},
		{"custom suffix", PromptBuilder{Login: login, Getwd: wd, Suffix: "$"}, "dimitris /home/dimitris/src $ "},
		{"unknown directory", PromptBuilder{Login: login, Getwd: failing, Suffix: ">"}, "dimitris (too long text) > "},
		{"unknown login", PromptBuilder{Login: failing, Getwd: wd, Suffix: ">"}, "(too long text) > "},
		{"empty login", PromptBuilder{Login: func() (string, error) { return "", nil }, Getwd: wd, Suffix: ">"}, "(too long text) > "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.builder.Build())
		})
	}
}
