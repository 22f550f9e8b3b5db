package domain

import (
	"context"
	"time"
)

// TransitionEvent reports a transition that fired.
type TransitionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Cycle     uint64    `json:"cycle"`
	Row       int       `json:"row"`
	From      State     `json:"from"`
	To        State     `json:"to"`
	Guard     string    `json:"guard,omitempty"`
	Action    string    `json:"action,omitempty"`
	// Err is the action failure, if any.
	Err string `json:"error,omitempty"`
}

// CycleEvent reports a completed evaluation cycle, whether or not anything fired.
type CycleEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Cycle     uint64        `json:"cycle"`
	State     State         `json:"state"`
	Fired     bool          `json:"fired"`
	Duration  time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run on the evaluating goroutine after the action; they must return promptly.
type LifecycleHooks struct {
	OnTransition func(context.Context, *TransitionEvent)
	OnCycle      func(context.Context, *CycleEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTransition: chain(h.OnTransition, other.OnTransition),
		OnCycle:      chain(h.OnCycle, other.OnCycle),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
