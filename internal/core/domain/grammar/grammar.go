// Package grammar holds the delimiters that make up the interpreter's line syntax.
package grammar

import (
	"errors"
	"fmt"
)

// Default delimiters.
const (
	SequenceDelimiter = ";"
	ChainDelimiter    = "&&"
	QuoteDelimiter    = `"`
	CommentMarker     = "#"
	WordDelimiter     = " "
	LocalPrefix       = "./"
)

// Grammar is the set of delimiters a parser splits lines with.
type Grammar struct {
	Sequence    string // Separates independent statements
	Chain       string // Separates commands that run only if the previous one succeeded
	Quote       string // Marks spans where delimiters are not split on
	Comment     string // Starts a comment that runs to the end of the line
	Word        string // Separates a command's name and arguments
	LocalPrefix string // Addresses a binary in the working directory
}

// Default returns the standard crush grammar.
func Default() Grammar {
	return Grammar{
		Sequence:    SequenceDelimiter,
		Chain:       ChainDelimiter,
		Quote:       QuoteDelimiter,
		Comment:     CommentMarker,
		Word:        WordDelimiter,
		LocalPrefix: LocalPrefix,
	}
}

// Validate rejects grammars with empty splitting delimiters.
func (g Grammar) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"sequence", g.Sequence},
		{"chain", g.Chain},
		{"quote", g.Quote},
		{"comment", g.Comment},
		{"word", g.Word},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("grammar: %s delimiter cannot be empty", f.name)
		}
	}
	if g.Sequence == g.Chain {
		return errors.New("grammar: sequence and chain delimiters must differ")
	}
	return nil
}

// SyntaxError reports a line that cannot be parsed. No command of the line runs.
type SyntaxError struct {
	Token  string // The offending delimiter
	Reason string // Human readable, mentions Token
}

func (e *SyntaxError) Error() string {
	return e.Reason
}

// Unterminated builds the error for a quoted span without its closing delimiter.
func Unterminated(quote string) *SyntaxError {
	return &SyntaxError{Token: quote, Reason: fmt.Sprintf("starting %s expects an ending one", quote)}
}

// Unexpected builds the error for a delimiter found where a command was expected.
func Unexpected(delim string) *SyntaxError {
	return &SyntaxError{Token: delim, Reason: fmt.Sprintf("near unexpected token '%s'", delim)}
}
