package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/minuterie/pkg/domain"
)

// Engine evaluates instances. It holds no machine state of its own, so one engine can
// drive any number of instances sharing the same environment type.
type Engine[C any] struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	now    func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	now    func() time.Time
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(c *engineConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(c *engineConfig) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(c *engineConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// NewEngine creates an engine.
func NewEngine[C any](opts ...EngineOption) *Engine[C] {
	cfg := &engineConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Engine[C]{
		logger: cfg.logger,
		hooks:  cfg.hooks,
		now:    cfg.now,
	}
}

// Update runs one evaluation cycle on inst.
//
// Rows whose source is the current state are scanned in table order. The first one
// whose guard holds fires: the state is committed to its target and only then is its
// action invoked. At most one transition fires per call; the new state's rows are not
// looked at until the next call. When nothing holds the state is left alone and no
// action runs.
//
// Panics raised by guards or actions are not recovered. An action error is returned
// as a *domain.ActionError; the state stays committed.
func (e *Engine[C]) Update(ctx context.Context, inst *Instance[C], env C) (domain.Outcome, error) {
	start := e.now()
	cycle := inst.cycles.Add(1)
	current := inst.State()

	out := domain.Outcome{Row: -1, From: current, To: current}
	var actErr error

	for i, tr := range inst.table.Candidates(current) {
		if tr.Guard == nil {
			continue
		}
		if !tr.Guard(ctx, env) {
			e.logger.DebugContext(ctx, "guard rejected", "cycle", cycle, "row", i, "state", current, "guard", tr.GuardName)
			continue
		}

		inst.commit(tr.To)
		out = domain.Outcome{Fired: true, Row: i, From: current, To: tr.To}

		e.logger.DebugContext(ctx, "transition fired",
			"cycle", cycle,
			"row", i,
			"from", current,
			"to", tr.To,
			"guard", tr.GuardName,
			"action", tr.ActionName)

		if tr.Action != nil {
			if err := tr.Action(ctx, env); err != nil {
				actErr = &domain.ActionError{Row: i, From: current, To: tr.To, Action: tr.ActionName, Err: err}
				e.logger.ErrorContext(ctx, "action failed", "cycle", cycle, "row", i, "action", tr.ActionName, "error", err)
			}
		}

		e.emitTransition(ctx, cycle, tr, out, actErr)
		break
	}

	e.emitCycle(ctx, cycle, inst.State(), out.Fired, e.now().Sub(start))

	return out, actErr
}

func (e *Engine[C]) emitTransition(ctx context.Context, cycle uint64, tr domain.Transition[C], out domain.Outcome, actErr error) {
	if e.hooks.OnTransition == nil {
		return
	}
	ev := &domain.TransitionEvent{
		Timestamp: e.now(),
		Cycle:     cycle,
		Row:       out.Row,
		From:      out.From,
		To:        out.To,
		Guard:     tr.GuardName,
		Action:    tr.ActionName,
	}
	if actErr != nil {
		ev.Err = actErr.Error()
	}
	e.hooks.OnTransition(ctx, ev)
}

func (e *Engine[C]) emitCycle(ctx context.Context, cycle uint64, state domain.State, fired bool, d time.Duration) {
	if e.hooks.OnCycle == nil {
		return
	}
	e.hooks.OnCycle(ctx, &domain.CycleEvent{
		Timestamp: e.now(),
		Cycle:     cycle,
		State:     state,
		Fired:     fired,
		Duration:  d,
	})
}
