package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/minuterie/pkg/domain"
)

// Timing describes how a table is driven.
type Timing struct {
	Period     string
	Hold       string
	HoldCycles int
}

// DescribeMarkdown renders a transition table as a markdown document: states, then
// rows in evaluation order.
func DescribeMarkdown[C any](title string, table *domain.Table[C], names domain.StateNames, timing *Timing) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", title)
	if timing != nil {
		fmt.Fprintf(&sb, "Cycle period **%s**, hold **%s** (%d cycles).\n\n", timing.Period, timing.Hold, timing.HoldCycles)
	}

	sb.WriteString("## States\n\n")
	for _, s := range table.States() {
		marker := ""
		if s == domain.InitialState {
			marker = " (initial)"
		}
		fmt.Fprintf(&sb, "- `%d` %s%s\n", s, names.Name(s), marker)
	}

	sb.WriteString("\n## Transitions\n\n")
	sb.WriteString("Rows are evaluated in order; the first guard that holds wins.\n\n")
	sb.WriteString("| # | From | Guard | To | Action |\n")
	sb.WriteString("|---|------|-------|----|--------|\n")
	for i, tr := range table.Rows() {
		fmt.Fprintf(&sb, "| %d | %s | %s | %s | %s |\n",
			i, names.Name(tr.From), cell(tr.GuardName), names.Name(tr.To), cell(tr.ActionName))
	}

	return sb.String()
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return "`" + s + "`"
}
