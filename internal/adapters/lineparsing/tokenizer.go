package lineparsing

import "strings"

/*
Tokenizer splits text on a delimiter, skipping delimiters that sit inside a
quoted span. Each call to Next consumes one token and the delimiter after it.

A candidate delimiter is a split point only when an even number of quote
delimiters lies between the start of the token and the candidate. The scan is
a single forward pass that tracks whether it is inside a quoted span.
*/
type Tokenizer struct {
	rest      string
	delim     string
	quote     string
	exhausted bool
}

// NewTokenizer creates a tokenizer over text. delim must not be empty.
func NewTokenizer(text, delim, quote string) *Tokenizer {
	return &Tokenizer{
		rest:      text,
		delim:     delim,
		quote:     quote,
		exhausted: text == "",
	}
}

// Next returns the next token. ok is false once nothing but delimiters remains.
// A returned token never contains the consumed delimiter.
func (t *Tokenizer) Next() (token string, ok bool) {
	if t.exhausted || t.rest == "" {
		t.markExhausted()
		return "", false
	}

	// Consecutive delimiters collapse instead of producing empty tokens.
	text := t.rest
	for strings.HasPrefix(text, t.delim) {
		text = text[len(t.delim):]
	}

	if text == "" {
		t.markExhausted()
		return "", false
	}

	split := IndexUnquoted(text, t.delim, t.quote)
	if split < 0 {
		t.markExhausted()
		return text, true
	}

	t.rest = text[split+len(t.delim):]
	if t.rest == "" {
		t.exhausted = true
	}
	return text[:split], true
}

// Rest returns the text not yet consumed.
func (t *Tokenizer) Rest() string {
	return t.rest
}

// Exhausted reports whether every token has been returned.
func (t *Tokenizer) Exhausted() bool {
	return t.exhausted
}

func (t *Tokenizer) markExhausted() {
	t.rest = ""
	t.exhausted = true
}

// Split returns every token of text. It is a convenience over Tokenizer.
func Split(text, delim, quote string) []string {
	var tokens []string
	tok := NewTokenizer(text, delim, quote)
	for {
		token, ok := tok.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

// IndexUnquoted returns the index of the first occurrence of marker in text that
// is not inside a quoted span, or -1.
func IndexUnquoted(text, marker, quote string) int {
	if marker == "" {
		return -1
	}
	inQuote := false
	for i := 0; i < len(text); {
		// A candidate is judged by the quotes before it, so check it before toggling.
		if !inQuote && strings.HasPrefix(text[i:], marker) {
			return i
		}
		if quote != "" && strings.HasPrefix(text[i:], quote) {
			inQuote = !inQuote
			i += len(quote)
			continue
		}
		i++
	}
	return -1
}

// CountOccurrences counts the non-overlapping occurrences of token in text.
func CountOccurrences(text, token string) int {
	if token == "" {
		return 0
	}
	return strings.Count(text, token)
}

// Unquote removes one matching pair of quote delimiters wrapping token.
func Unquote(token, quote string) string {
	if quote == "" || len(token) < 2*len(quote) {
		return token
	}
	if strings.HasPrefix(token, quote) && strings.HasSuffix(token, quote) {
		return token[len(quote) : len(token)-len(quote)]
	}
	return token
}
