package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/crush/internal/core/domain/command"
	"github.com/AntonioJCosta/crush/internal/core/domain/grammar"
	"github.com/AntonioJCosta/crush/internal/core/ports"
	"github.com/AntonioJCosta/crush/internal/handlers/ui"
)

// NewParseCommand creates the 'parse' subcommand.
func NewParseCommand(parser ports.LineParser) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <line>",
		Short: "Show how a line is broken down into commands, without running it.",
		Long: `Parses the given line with the interpreter's grammar and prints every
command it contains with its arguments and when it would run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParseCmd(cmd, args, parser)
		},
	}
	// Words of the line that look like flags belong to the line.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runParseCmd(cmd *cobra.Command, args []string, parser ports.LineParser) error {
	if parser == nil {
		return fmt.Errorf("parser not initialized for parse command")
	}
	line := strings.Join(args, " ")
	out := cmd.OutOrStdout()

	batch, err := parser.Parse(line)
	var syntaxErr *grammar.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		fmt.Fprintln(out, ui.ErrorColor("Syntax Error: "+syntaxErr.Error()))
		return &ExitCodeError{Code: ExitSyntaxError}
	case err != nil:
		return fmt.Errorf("could not parse line: %w", err)
	}

	if len(batch) == 0 {
		fmt.Fprintln(out, ui.InfoColor("The line contains no commands."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("%d command(s):", len(batch))))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Name", "Args", "Policy"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for i, c := range batch {
		table.Append([]string{strconv.Itoa(i + 1), c.Name, formatArgs(c), ui.PolicyColor(c.Policy.String())})
	}
	table.Render()
	return nil
}

// formatArgs quotes every argument so that embedded spaces stay visible.
func formatArgs(c *command.Command) string {
	quoted := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		quoted = append(quoted, strconv.Quote(arg))
	}
	return strings.Join(quoted, " ")
}
