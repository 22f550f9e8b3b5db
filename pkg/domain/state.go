package domain

import "strconv"

// State identifies a machine state. Every machine starts at InitialState.
type State int

// InitialState is the state of a freshly created machine.
const InitialState State = 0

func (s State) String() string {
	return strconv.Itoa(int(s))
}

// StateNames maps states to human-readable labels for logs and diagrams.
type StateNames map[State]string

// Name returns the label of s, or its number when unnamed.
func (n StateNames) Name(s State) string {
	if name, ok := n[s]; ok && name != "" {
		return name
	}
	return s.String()
}

// Outcome describes the result of a single evaluation cycle.
type Outcome struct {
	// Fired is true when a transition was taken.
	Fired bool
	// Row is the table index of the transition that fired, or -1.
	Row  int
	From State
	To   State
}
