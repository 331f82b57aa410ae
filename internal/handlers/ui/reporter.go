package ui

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/crush/internal/core/domain/command"
	"github.com/AntonioJCosta/crush/internal/core/ports"
)

// Reporter prints execution diagnostics, one line each.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) ports.Reporter {
	return &Reporter{out: out}
}

// Skipped reports a chained command that did not run.
func (r *Reporter) Skipped(cmd *command.Command) {
	fmt.Fprintln(r.out, WarningColor(fmt.Sprintf("Did not execute '%s', since previous command failed.", cmd.Name)))
}

// Failure reports why a command failed.
func (r *Reporter) Failure(format string, args ...any) {
	fmt.Fprintln(r.out, ErrorColor(fmt.Sprintf(format, args...)))
}
