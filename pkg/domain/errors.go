package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedTable is returned when a table contains a row that can never be valid.
var ErrMalformedTable = errors.New("malformed transition table")

// ErrEmptyTable is returned when a table has no rows before its terminator.
var ErrEmptyTable = errors.New("empty transition table")

// RowError describes a single invalid table row.
type RowError struct {
	Row    int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// TableError aggregates every invalid row found while building a table.
type TableError struct {
	Rows []*RowError
}

func (e *TableError) Error() string {
	if len(e.Rows) == 1 {
		return fmt.Sprintf("%s: %s", ErrMalformedTable, e.Rows[0])
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d invalid rows:\n", ErrMalformedTable, len(e.Rows))
	for i, r := range e.Rows {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, r)
	}
	return sb.String()
}

func (e *TableError) Unwrap() error {
	return ErrMalformedTable
}

// ActionError wraps a failure returned by a transition's action.
// The machine has already committed to To when it is reported.
type ActionError struct {
	Row    int
	From   State
	To     State
	Action string
	Err    error
}

func (e *ActionError) Error() string {
	name := e.Action
	if name == "" {
		name = "action"
	}
	return fmt.Sprintf("%s failed on transition %d -> %d (row %d): %v", name, e.From, e.To, e.Row, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
