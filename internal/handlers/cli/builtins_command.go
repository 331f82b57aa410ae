package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/crush/internal/handlers/ui"
)

// NewBuiltinsCommand creates the 'builtins' subcommand.
func NewBuiltinsCommand(names []string) *cobra.Command {
	return &cobra.Command{
		Use:   "builtins",
		Short: "List the commands handled by the interpreter itself.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.HeaderColor("Built-in commands:"))
			for _, name := range names {
				fmt.Fprintf(out, "  %s\n", ui.CommandNameColor(name))
			}
			return nil
		},
	}
}
