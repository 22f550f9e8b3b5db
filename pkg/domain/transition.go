package domain

import "context"

// Guard decides whether a transition may fire.
// It may read env but must not mutate shared state beyond its own bookkeeping.
type Guard[C any] func(ctx context.Context, env C) bool

// Action is the side effect of a transition. It runs once, after the machine has
// committed to the target state.
type Action[C any] func(ctx context.Context, env C) error

// Transition is a single rule of a table.
// A transition with a nil Guard never fires; with a negative From it marks the end of
// a legacy sentinel-terminated table.
type Transition[C any] struct {
	From   State
	Guard  Guard[C]
	To     State
	Action Action[C]

	// GuardName and ActionName label the callables in logs, metrics and diagrams.
	GuardName  string
	ActionName string
}

// IsTerminator reports whether t is a legacy end-of-table row.
func (t Transition[C]) IsTerminator() bool {
	return t.From < 0 && t.Guard == nil
}

// Not negates a guard.
func Not[C any](g Guard[C]) Guard[C] {
	return func(ctx context.Context, env C) bool {
		return !g(ctx, env)
	}
}

// All holds when every guard holds. Evaluation stops at the first false one.
func All[C any](guards ...Guard[C]) Guard[C] {
	return func(ctx context.Context, env C) bool {
		for _, g := range guards {
			if !g(ctx, env) {
				return false
			}
		}
		return true
	}
}

// Any holds when at least one guard holds. Evaluation stops at the first true one.
func Any[C any](guards ...Guard[C]) Guard[C] {
	return func(ctx context.Context, env C) bool {
		for _, g := range guards {
			if g(ctx, env) {
				return true
			}
		}
		return false
	}
}

// Sequence runs actions in order and stops at the first error.
func Sequence[C any](actions ...Action[C]) Action[C] {
	return func(ctx context.Context, env C) error {
		for _, a := range actions {
			if a == nil {
				continue
			}
			if err := a(ctx, env); err != nil {
				return err
			}
		}
		return nil
	}
}
