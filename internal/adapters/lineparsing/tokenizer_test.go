package lineparsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizer_Next(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		delim string
		want  []string
	}{
		{name: "empty text", text: "", delim: ";", want: nil},
		{name: "delimiter free text is the sole token", text: "echo hello", delim: ";", want: []string{"echo hello"}},
		{name: "simple split", text: "a;b;c", delim: ";", want: []string{"a", "b", "c"}},
		{name: "leading delimiters are discarded", text: ";;;a;b", delim: ";", want: []string{"a", "b"}},
		{name: "consecutive delimiters collapse", text: "a;;;b", delim: ";", want: []string{"a", "b"}},
		{name: "trailing delimiters produce no empty token", text: "a;b;;", delim: ";", want: []string{"a", "b"}},
		{name: "only delimiters", text: ";;;", delim: ";", want: nil},
		{name: "multi character delimiter", text: "a&&b && c", delim: "&&", want: []string{"a", "b ", " c"}},
		{name: "single character of a multi character delimiter is not a split", text: "a&b", delim: "&&", want: []string{"a&b"}},
		{name: "delimiter inside quotes is skipped", text: `a;"b;c";d`, delim: ";", want: []string{"a", `"b;c"`, "d"}},
		{name: "several quoted spans", text: `"x;y" "z;w";v`, delim: ";", want: []string{`"x;y" "z;w"`, "v"}},
		{name: "unbalanced quote keeps the rest together", text: `a;"b;c`, delim: ";", want: []string{"a", `"b;c`}},
		{name: "spaces as delimiter", text: `  ls  -l "my dir" `, delim: " ", want: []string{"ls", "-l", `"my dir"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.delim, `"`)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizer_Exhaustion(t *testing.T) {
	t.Run("should report exhaustion after the sole token", func(t *testing.T) {
		// Given: a tokenizer over delimiter free text
		tok := NewTokenizer("hello", ";", `"`)

		// When: taking tokens until none is left
		first, ok := tok.Next()

		// Then: the text comes back unchanged and the cursor is exhausted
		assert.True(t, ok)
		assert.Equal(t, "hello", first)
		assert.True(t, tok.Exhausted())
		assert.Empty(t, tok.Rest())

		_, ok = tok.Next()
		assert.False(t, ok)
	})

	t.Run("should advance the cursor past the consumed delimiter", func(t *testing.T) {
		tok := NewTokenizer("a && b", "&&", `"`)

		token, ok := tok.Next()

		assert.True(t, ok)
		assert.Equal(t, "a ", token)
		assert.Equal(t, " b", tok.Rest())
		assert.False(t, tok.Exhausted())
	})

	t.Run("should be exhausted from the start on empty text", func(t *testing.T) {
		tok := NewTokenizer("", ";", `"`)

		assert.True(t, tok.Exhausted())
		_, ok := tok.Next()
		assert.False(t, ok)
	})
}

func TestIndexUnquoted(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		marker string
		want   int
	}{
		{name: "not present", text: "ls -l", marker: "#", want: -1},
		{name: "unquoted", text: "ls # c", marker: "#", want: 3},
		{name: "quoted then unquoted", text: `echo "#" #`, marker: "#", want: 9},
		{name: "inside an open quote", text: `echo "# c`, marker: "#", want: -1},
		{name: "empty marker", text: "abc", marker: "", want: -1},
		{name: "multi character marker", text: `"&&"&&`, marker: "&&", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndexUnquoted(tt.text, tt.marker, `"`))
		})
	}
}

func TestCountOccurrences(t *testing.T) {
	assert.Equal(t, 0, CountOccurrences("abc", `"`))
	assert.Equal(t, 3, CountOccurrences(`"a"b"`, `"`))
	assert.Equal(t, 2, CountOccurrences("&&&&&", "&&"))
	assert.Equal(t, 0, CountOccurrences("abc", ""))
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{token: `"abc"`, want: "abc"},
		{token: `""`, want: ""},
		{token: `"`, want: `"`},
		{token: `"abc`, want: `"abc`},
		{token: `abc"`, want: `abc"`},
		{token: `""abc""`, want: `"abc"`},
		{token: "plain", want: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, Unquote(tt.token, `"`))
		})
	}
}
