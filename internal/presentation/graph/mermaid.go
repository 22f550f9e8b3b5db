package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/minuterie/pkg/domain"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	Current *domain.State
}

// GenerateMermaid produces a Mermaid flowchart of a transition table.
// The initial state is drawn as a circle, every other state as a rectangle. Each edge is
// labelled with its row index, guard and action, so the evaluation order is visible.
// Rows without a guard can never fire and are drawn dotted.
func GenerateMermaid[C any](table *domain.Table[C], names domain.StateNames, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, s := range table.States() {
		opener, closer := "[", "]"
		if s == domain.InitialState {
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", nodeID(s), opener, escape(names.Name(s)), closer))
	}

	for i, tr := range table.Rows() {
		label := fmt.Sprintf("%d: %s", i, orDash(tr.GuardName))
		if tr.ActionName != "" {
			label += " / " + tr.ActionName
		}
		label = escape(label)

		if tr.Guard == nil {
			sb.WriteString(fmt.Sprintf("    %s -. \"%s\" .-> %s\n", nodeID(tr.From), label, nodeID(tr.To)))
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", nodeID(tr.From), label, nodeID(tr.To)))
	}

	if overlay != nil && overlay.Current != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class %s current;\n", nodeID(*overlay.Current)))
	}

	return sb.String()
}

func nodeID(s domain.State) string {
	if s < 0 {
		return fmt.Sprintf("s_%d", -s)
	}
	return fmt.Sprintf("s%d", s)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// escape replaces double quotes, which would end a Mermaid label.
func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
