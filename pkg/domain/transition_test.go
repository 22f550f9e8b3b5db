package domain

import (
	"context"
	"errors"
	"testing"
)

func TestGuardCombinators(t *testing.T) {
	ctx := context.Background()
	yes := Guard[int](func(context.Context, int) bool { return true })
	no := Guard[int](func(context.Context, int) bool { return false })
	even := Guard[int](func(_ context.Context, n int) bool { return n%2 == 0 })

	tests := []struct {
		name  string
		guard Guard[int]
		env   int
		want  bool
	}{
		{"Not True", Not(yes), 0, false},
		{"Not False", Not(no), 0, true},
		{"All Empty", All[int](), 0, true},
		{"All Mixed", All(yes, no), 0, false},
		{"All Env", All(yes, even), 2, true},
		{"Any Empty", Any[int](), 0, false},
		{"Any Mixed", Any(no, yes), 0, true},
		{"Any Env", Any(no, even), 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.guard(ctx, tt.env); got != tt.want {
				t.Errorf("guard(%d) = %v, want %v", tt.env, got, tt.want)
			}
		})
	}
}

func TestSequence_StopsAtFirstError(t *testing.T) {
	var calls []string
	boom := errors.New("boom")

	act := Sequence(
		func(context.Context, int) error { calls = append(calls, "a"); return nil },
		nil,
		func(context.Context, int) error { calls = append(calls, "b"); return boom },
		func(context.Context, int) error { calls = append(calls, "c"); return nil },
	)

	err := act(context.Background(), 0)
	if !errors.Is(err, boom) {
		t.Fatalf("Sequence() error = %v, want %v", err, boom)
	}
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("calls = %v, want [a b]", calls)
	}
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var order []string
	first := LifecycleHooks{
		OnCycle: func(context.Context, *CycleEvent) { order = append(order, "first") },
	}
	second := LifecycleHooks{
		OnCycle:      func(context.Context, *CycleEvent) { order = append(order, "second") },
		OnTransition: func(context.Context, *TransitionEvent) { order = append(order, "transition") },
	}

	merged := first.Merge(second)
	merged.OnCycle(context.Background(), &CycleEvent{})
	merged.OnTransition(context.Background(), &TransitionEvent{})

	want := []string{"first", "second", "transition"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}

	if (LifecycleHooks{}).Merge(LifecycleHooks{}).OnCycle != nil {
		t.Error("merging empty hooks should leave OnCycle nil")
	}
}

func TestStateNames(t *testing.T) {
	names := StateNames{0: "off", 1: "on"}
	if got := names.Name(1); got != "on" {
		t.Errorf("Name(1) = %q, want on", got)
	}
	if got := names.Name(4); got != "4" {
		t.Errorf("Name(4) = %q, want 4", got)
	}
}

func TestActionError(t *testing.T) {
	cause := errors.New("gpio write")
	err := &ActionError{Row: 2, From: 1, To: 0, Action: "light_off", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("ActionError should unwrap to its cause")
	}
	want := "light_off failed on transition 1 -> 0 (row 2): gpio write"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
