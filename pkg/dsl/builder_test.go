package dsl

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/minuterie/pkg/domain"
)

type env struct{ a, b bool }

func TestBuilder_KeepsDeclarationOrder(t *testing.T) {
	b := New[*env]()
	b.State(0, "idle").State(1, "busy")

	b.From(0).When("a", func(_ context.Context, e *env) bool { return e.a }).Go(1)
	b.From(1).When("a", func(_ context.Context, e *env) bool { return e.a }).Do("noop", func(context.Context, *env) error { return nil })
	b.From(1).When("b", func(_ context.Context, e *env) bool { return e.b }).Go(0)

	table, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if table.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", table.Len())
	}

	want := []struct {
		from, to domain.State
		guard    string
	}{
		{0, 1, "a"},
		{1, 1, "a"},
		{1, 0, "b"},
	}
	for i, w := range want {
		row := table.Row(i)
		if row.From != w.from || row.To != w.to || row.GuardName != w.guard {
			t.Errorf("row %d = {%d %s %d}, want {%d %s %d}", i, row.From, row.GuardName, row.To, w.from, w.guard, w.to)
		}
	}

	if table.Row(1).ActionName != "noop" || table.Row(1).Action == nil {
		t.Errorf("Expected row 1 to carry the noop action")
	}

	names := b.Names()
	if names.Name(1) != "busy" {
		t.Errorf("Expected state 1 named busy, got %q", names.Name(1))
	}
}

func TestBuilder_Errors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := New[*env]().Build()
		if !errors.Is(err, domain.ErrEmptyTable) {
			t.Errorf("Expected ErrEmptyTable, got %v", err)
		}
	})

	t.Run("Negative Source", func(t *testing.T) {
		b := New[*env]()
		b.From(-1).When("a", func(context.Context, *env) bool { return true })
		_, err := b.Build()
		if !errors.Is(err, domain.ErrMalformedTable) {
			t.Errorf("Expected ErrMalformedTable, got %v", err)
		}
	})

	t.Run("MustBuild Panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected MustBuild to panic")
			}
		}()
		New[*env]().MustBuild()
	})
}
