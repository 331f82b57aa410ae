package lineparsing

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/crush/internal/core/domain/command"
	"github.com/AntonioJCosta/crush/internal/core/domain/grammar"
	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// Parser turns input lines into command batches. It holds no state besides its
// grammar and is safe for concurrent use.
type Parser struct {
	grammar grammar.Grammar
}

// NewParser creates a Parser for the given grammar.
func NewParser(g grammar.Grammar) (ports.LineParser, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("creating line parser: %w", err)
	}
	return &Parser{grammar: g}, nil
}

// Parse breaks a line down into its commands.
//
// Statements separated by the sequence delimiter are independent of each other.
// Inside a statement, every command after the first runs only if the one before
// it succeeded. On a syntax error no command is returned.
func (p *Parser) Parse(line string) (command.Batch, error) {
	line = p.normalize(line)
	line = p.stripComment(line)

	if CountOccurrences(line, p.grammar.Quote)%2 != 0 {
		return nil, grammar.Unterminated(p.grammar.Quote)
	}

	var batch command.Batch
	blocks := NewTokenizer(line, p.grammar.Sequence, p.grammar.Quote)
	for {
		if err := p.checkLeadingDelimiter(blocks.Rest()); err != nil {
			return nil, err
		}
		block, ok := blocks.Next()
		if !ok {
			break
		}

		chain, err := p.parseChain(block)
		if err != nil {
			return nil, err
		}
		batch = append(batch, chain...)
	}
	return batch, nil
}

// parseChain splits one statement into its chained commands.
func (p *Parser) parseChain(block string) (command.Batch, error) {
	var chain command.Batch
	members := NewTokenizer(block, p.grammar.Chain, p.grammar.Quote)
	for {
		if err := p.checkLeadingDelimiter(members.Rest()); err != nil {
			return nil, err
		}
		member, ok := members.Next()
		if !ok {
			return chain, nil
		}

		cmd := p.parseCommand(member)
		if len(chain) > 0 {
			cmd.Policy = command.OnPreviousSuccess
		}
		chain = append(chain, cmd)
	}
}

// parseCommand reads a command's name and arguments out of its text.
func (p *Parser) parseCommand(text string) *command.Command {
	cmd := command.New()
	words := NewTokenizer(text, p.grammar.Word, p.grammar.Quote)

	name, ok := words.Next()
	if !ok {
		// Nothing but blanks: an empty name is a no-op.
		cmd.SetName("")
		return cmd
	}
	cmd.SetName(Unquote(name, p.grammar.Quote))

	for {
		arg, ok := words.Next()
		if !ok {
			return cmd
		}
		cmd.AddArg(Unquote(arg, p.grammar.Quote))
	}
}

// checkLeadingDelimiter rejects text where a delimiter stands in place of a command.
func (p *Parser) checkLeadingDelimiter(rest string) error {
	for strings.HasPrefix(rest, p.grammar.Word) {
		rest = rest[len(p.grammar.Word):]
	}
	switch {
	case strings.HasPrefix(rest, p.grammar.Sequence):
		return grammar.Unexpected(p.grammar.Sequence)
	case strings.HasPrefix(rest, p.grammar.Chain):
		return grammar.Unexpected(p.grammar.Chain)
	}
	return nil
}

// normalize turns line-ending artifacts into plain word delimiters.
func (p *Parser) normalize(line string) string {
	return strings.NewReplacer("\r", p.grammar.Word, "\n", p.grammar.Word).Replace(line)
}

// stripComment drops everything from the first unquoted comment marker on.
func (p *Parser) stripComment(line string) string {
	if i := IndexUnquoted(line, p.grammar.Comment, p.grammar.Quote); i >= 0 {
		return line[:i]
	}
	return line
}
