package dsl

import "github.com/aretw0/minuterie/pkg/domain"

// RuleBuilder provides a fluent API for configuring one row.
type RuleBuilder[C any] struct {
	row domain.Transition[C]
}

// When sets the guard. A row without a guard never fires.
func (r *RuleBuilder[C]) When(name string, guard domain.Guard[C]) *RuleBuilder[C] {
	r.row.GuardName = name
	r.row.Guard = guard
	return r
}

// Go sets the target state. Without it the row is a self-transition.
func (r *RuleBuilder[C]) Go(target domain.State) *RuleBuilder[C] {
	r.row.To = target
	return r
}

// Do sets the action run after the state change.
func (r *RuleBuilder[C]) Do(name string, action domain.Action[C]) *RuleBuilder[C] {
	r.row.ActionName = name
	r.row.Action = action
	return r
}

// Build returns the underlying row.
// This is primarily used by the Builder, but exposed for advanced usage.
func (r *RuleBuilder[C]) Build() domain.Transition[C] {
	return r.row
}
