package dsl

import (
	"fmt"

	"github.com/aretw0/minuterie/pkg/domain"
)

// Builder manages table construction.
type Builder[C any] struct {
	rules []*RuleBuilder[C]
	names domain.StateNames
}

// New creates a new table builder.
func New[C any]() *Builder[C] {
	return &Builder[C]{
		names: make(domain.StateNames),
	}
}

// State gives s a human-readable name.
func (b *Builder[C]) State(s domain.State, name string) *Builder[C] {
	b.names[s] = name
	return b
}

// From starts a new row leaving s. Rows keep their declaration order.
func (b *Builder[C]) From(s domain.State) *RuleBuilder[C] {
	rb := &RuleBuilder[C]{
		row: domain.Transition[C]{From: s, To: s},
	}
	b.rules = append(b.rules, rb)
	return rb
}

// Names returns a copy of the declared state names.
func (b *Builder[C]) Names() domain.StateNames {
	out := make(domain.StateNames, len(b.names))
	for k, v := range b.names {
		out[k] = v
	}
	return out
}

// Build validates the rows and compiles them into an immutable table.
func (b *Builder[C]) Build() (*domain.Table[C], error) {
	rows := make([]domain.Transition[C], 0, len(b.rules))
	for _, rb := range b.rules {
		rows = append(rows, rb.row)
	}

	table, err := domain.NewTable(rows...)
	if err != nil {
		return nil, fmt.Errorf("failed to build table: %w", err)
	}
	return table, nil
}

// MustBuild is like Build but panics on an invalid definition.
func (b *Builder[C]) MustBuild() *domain.Table[C] {
	table, err := b.Build()
	if err != nil {
		panic(err)
	}
	return table
}
