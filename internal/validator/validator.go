package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/minuterie/pkg/domain"
)

// ValidateTable checks a table for rows that can never fire.
//
// A row is dead when it has no guard, or when its source state cannot be reached from
// start through rows that have a guard. Both are legal tables, but almost always a
// mistake in the definition.
func ValidateTable[C any](table *domain.Table[C], start domain.State, names domain.StateNames) error {
	// 1. Crawl reachable states
	visited := map[domain.State]bool{start: true}
	queue := []domain.State{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, tr := range table.Candidates(current) {
			if tr.Guard == nil {
				continue
			}
			if !visited[tr.To] {
				visited[tr.To] = true
				queue = append(queue, tr.To)
			}
		}
	}

	// 2. Inspect rows
	var errors []string
	for i, tr := range table.Rows() {
		switch {
		case tr.Guard == nil:
			errors = append(errors, fmt.Sprintf("row %d (%s -> %s) has no guard and never fires",
				i, names.Name(tr.From), names.Name(tr.To)))
		case !visited[tr.From]:
			errors = append(errors, fmt.Sprintf("row %d leaves '%s', which is unreachable from '%s'",
				i, names.Name(tr.From), names.Name(start)))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}

	return nil
}
