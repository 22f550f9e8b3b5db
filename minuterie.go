package minuterie

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/minuterie/internal/runtime"
	"github.com/aretw0/minuterie/pkg/domain"
)

// Machine is the high-level entry point of the library: one state machine instance
// bound to its transition table and an evaluation engine.
// C is the type of the environment value threaded through guards and actions.
type Machine[C any] struct {
	engine *runtime.Engine[C]
	inst   *runtime.Instance[C]
	logger *slog.Logger
	Name   string
}

// Option defines a functional option for configuring a Machine.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
	initial    domain.State
	name       string
	engineOpts []runtime.EngineOption
}

// WithLogger sets a custom structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks. Repeated calls add hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

// WithInitialState overrides the starting state (default domain.InitialState).
func WithInitialState(s domain.State) Option {
	return func(c *config) {
		c.initial = s
	}
}

// WithName labels the machine in logs.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.engineOpts = append(c.engineOpts, runtime.WithClock(now))
	}
}

// New creates a machine over table, starting at state 0.
// The table must come from domain.NewTable; New panics if it is nil.
func New[C any](table *domain.Table[C], opts ...Option) *Machine[C] {
	cfg := &config{initial: domain.InitialState}
	for _, opt := range opts {
		opt(cfg)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime).
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.name != "" {
		cfg.logger = cfg.logger.With("machine", cfg.name)
	}

	engineOpts := []runtime.EngineOption{
		runtime.WithLogger(cfg.logger),
		runtime.WithLifecycleHooks(cfg.hooks),
	}
	engineOpts = append(engineOpts, cfg.engineOpts...)

	return &Machine[C]{
		engine: runtime.NewEngine[C](engineOpts...),
		inst:   runtime.NewInstanceAt(table, cfg.initial),
		logger: cfg.logger,
		Name:   cfg.name,
	}
}

// Update runs one evaluation cycle against env. See runtime.Engine.Update for the
// exact semantics: ordered scan, at most one transition, state committed before the
// action runs, action errors returned as *domain.ActionError.
func (m *Machine[C]) Update(ctx context.Context, env C) (domain.Outcome, error) {
	return m.engine.Update(ctx, m.inst, env)
}

// State returns the current state. Safe to call from any goroutine.
func (m *Machine[C]) State() domain.State {
	return m.inst.State()
}

// Cycles returns how many times Update has been called.
func (m *Machine[C]) Cycles() uint64 {
	return m.inst.Cycles()
}

// Table returns the machine's transition table.
func (m *Machine[C]) Table() *domain.Table[C] {
	return m.inst.Table()
}
