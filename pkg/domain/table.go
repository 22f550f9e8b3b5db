package domain

import (
	"fmt"
	"iter"
	"slices"
)

// Table is an ordered, immutable set of transitions.
// Build it with NewTable; it is safe to share between machines and goroutines.
type Table[C any] struct {
	rows   []Transition[C]
	bySrc  map[State][]int
	states []State
}

// NewTable validates rows and builds a table from them.
//
// The table ends at the first terminator row (negative source, nil guard), so legacy
// sentinel-terminated definitions keep their meaning. A row with a negative source and
// a guard is rejected. Order is preserved: it decides which transition wins when
// several guards hold for the same state.
func NewTable[C any](rows ...Transition[C]) (*Table[C], error) {
	var invalid []*RowError
	var kept []Transition[C]

	for i, r := range rows {
		if r.IsTerminator() {
			break
		}
		if r.From < 0 {
			invalid = append(invalid, &RowError{
				Row:    i,
				Reason: fmt.Sprintf("negative source state %d with a guard", r.From),
			})
			continue
		}
		kept = append(kept, r)
	}

	if len(invalid) > 0 {
		return nil, &TableError{Rows: invalid}
	}
	if len(kept) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table[C]{
		rows:  kept,
		bySrc: make(map[State][]int),
	}
	seen := make(map[State]bool)
	for i, r := range kept {
		t.bySrc[r.From] = append(t.bySrc[r.From], i)
		for _, s := range []State{r.From, r.To} {
			if !seen[s] {
				seen[s] = true
				t.states = append(t.states, s)
			}
		}
	}
	slices.Sort(t.states)

	return t, nil
}

// MustNewTable is like NewTable but panics on an invalid definition.
func MustNewTable[C any](rows ...Transition[C]) *Table[C] {
	t, err := NewTable(rows...)
	if err != nil {
		panic(fmt.Sprintf("minuterie: %v", err))
	}
	return t
}

// Len returns the number of rows.
func (t *Table[C]) Len() int {
	return len(t.rows)
}

// Row returns the i-th row.
func (t *Table[C]) Row(i int) Transition[C] {
	return t.rows[i]
}

// Rows returns a copy of the rows in table order.
func (t *Table[C]) Rows() []Transition[C] {
	return slices.Clone(t.rows)
}

// From returns the indices of the rows whose source is s, in table order.
func (t *Table[C]) From(s State) []int {
	return slices.Clone(t.bySrc[s])
}

// Candidates yields the rows whose source is s, in table order, with their indices.
func (t *Table[C]) Candidates(s State) iter.Seq2[int, Transition[C]] {
	return func(yield func(int, Transition[C]) bool) {
		for _, i := range t.bySrc[s] {
			if !yield(i, t.rows[i]) {
				return
			}
		}
	}
}

// States returns every state named by the table, ascending.
func (t *Table[C]) States() []State {
	return slices.Clone(t.states)
}
