package cli

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/crush/internal/handlers/ui"
	"github.com/AntonioJCosta/crush/internal/repositories/history"
)

const defaultHistoryOutputLimit = 10

// NewHistoryCommand creates the 'history' subcommand.
func NewHistoryCommand(a *app) *cobra.Command {
	var limit int
	var top bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show lines entered in interactive sessions.",
		Long: `Shows the most recent lines of the interactive history, or with --top
the lines entered most often.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistoryCmd(cmd, a, limit, top)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryOutputLimit, "Maximum number of lines to show.")
	cmd.Flags().BoolVar(&top, "top", false, "Show the most frequent lines instead of the most recent ones.")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, a *app, limit int, top bool) error {
	if a.deps.HistoryStore == nil {
		return fmt.Errorf("history store not initialized for history command")
	}
	store, err := a.deps.HistoryStore(a.cfg)
	if err != nil {
		return fmt.Errorf("could not open history: %w", err)
	}
	if limit <= 0 {
		limit = defaultHistoryOutputLimit
	}

	out := cmd.OutOrStdout()
	source := ui.DetailColor(fmt.Sprintf("(Source: File: %s)", history.ToUserFriendlyPath(store.GetHistoryFilePath())))

	if !top {
		lines, err := store.Recent(limit)
		if err != nil {
			return fmt.Errorf("could not read history: %w", err)
		}
		if len(lines) == 0 {
			fmt.Fprintln(out, ui.InfoColor("History is empty."))
			fmt.Fprintln(out, source)
			return nil
		}
		for i, line := range lines {
			fmt.Fprintf(out, "%4d  %s\n", i+1, line)
		}
		fmt.Fprintln(out, source)
		return nil
	}

	frequencies, err := store.Frequencies(limit)
	if err != nil {
		return fmt.Errorf("could not read history: %w", err)
	}
	if len(frequencies) == 0 {
		fmt.Fprintln(out, ui.InfoColor("History is empty."))
		fmt.Fprintln(out, source)
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("Most frequent lines:"))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Count", "Line"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
	for _, f := range frequencies {
		table.Append([]string{strconv.Itoa(f.Count), f.Line})
	}
	table.Render()
	fmt.Fprintln(out, source)
	return nil
}
