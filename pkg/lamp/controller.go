package lamp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/aretw0/minuterie"
	"github.com/aretw0/minuterie/pkg/domain"
	"github.com/aretw0/minuterie/pkg/ports"
)

// Default timing of the lamp.
const (
	DefaultPeriod = 200 * time.Millisecond
	DefaultHold   = 4 * time.Second
)

// Snapshot is the externally visible state of the lamp after a cycle.
type Snapshot struct {
	Tick      uint64       `json:"tick"`
	State     domain.State `json:"state"`
	StateName string       `json:"state_name"`
	Light     bool         `json:"light"`
	Pressed   bool         `json:"pressed"`
	Remaining int          `json:"remaining_cycles"`
	Timestamp time.Time    `json:"timestamp"`
}

// Controller owns the lamp machine, its countdown and its ports.
// It implements ports.Cycler; the runner calls Cycle once per period.
type Controller struct {
	machine   *minuterie.Machine[*Env]
	button    ports.Input
	light     ports.Output
	countdown Countdown
	env       Env
	names     domain.StateNames
	period    time.Duration
	hold      time.Duration
	logger    *slog.Logger
	now       func() time.Time
	snapshot  atomic.Pointer[Snapshot]
}

// Option configures a Controller.
type Option func(*controllerConfig)

type controllerConfig struct {
	period      time.Duration
	hold        time.Duration
	logger      *slog.Logger
	now         func() time.Time
	machineOpts []minuterie.Option
}

// WithTiming sets the cycle period and how long the light stays on.
func WithTiming(period, hold time.Duration) Option {
	return func(c *controllerConfig) {
		c.period = period
		c.hold = hold
	}
}

// WithLogger sets the structured logger, shared with the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(c *controllerConfig) {
		c.logger = logger
	}
}

// WithLifecycleHooks forwards observability hooks to the machine.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *controllerConfig) {
		c.machineOpts = append(c.machineOpts, minuterie.WithLifecycleHooks(hooks))
	}
}

// WithClock overrides the time source for snapshots and events.
func WithClock(now func() time.Time) Option {
	return func(c *controllerConfig) {
		c.now = now
		c.machineOpts = append(c.machineOpts, minuterie.WithClock(now))
	}
}

// NewController wires a lamp machine to a button and a light. The light starts off.
func NewController(button ports.Input, light ports.Output, opts ...Option) *Controller {
	cfg := &controllerConfig{
		period: DefaultPeriod,
		hold:   DefaultHold,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	machineOpts := append([]minuterie.Option{
		minuterie.WithLogger(cfg.logger),
		minuterie.WithName("lamp"),
	}, cfg.machineOpts...)

	c := &Controller{
		machine: minuterie.New(NewTable(), machineOpts...),
		button:  button,
		light:   light,
		names:   Names(),
		period:  cfg.period,
		hold:    cfg.hold,
		logger:  cfg.logger,
		now:     cfg.now,
	}
	c.env = Env{
		Light:     light,
		Countdown: &c.countdown,
		Hold:      CyclesFor(cfg.hold, cfg.period),
	}
	c.publish(0)
	return c
}

// Cycle samples the button, runs one machine update and then advances the countdown.
// An action failure is returned after the countdown has advanced, so timing stays
// consistent even when the output misbehaves.
func (c *Controller) Cycle(ctx context.Context, tick uint64) error {
	c.env.Pressed = c.button.Asserted()

	_, err := c.machine.Update(ctx, &c.env)

	remaining := c.countdown.Next()
	c.logger.DebugContext(ctx, "countdown", "tick", tick, "remaining", remaining)

	c.publish(tick)

	if err != nil {
		return fmt.Errorf("lamp cycle %d: %w", tick, err)
	}
	return nil
}

func (c *Controller) publish(tick uint64) {
	state := c.machine.State()
	c.snapshot.Store(&Snapshot{
		Tick:      tick,
		State:     state,
		StateName: c.names.Name(state),
		Light:     c.light.IsOn(),
		Pressed:   c.env.Pressed,
		Remaining: c.countdown.Remaining(),
		Timestamp: c.now(),
	})
}

// Snapshot returns the state published by the last cycle. Safe from any goroutine.
func (c *Controller) Snapshot() Snapshot {
	return *c.snapshot.Load()
}

// Machine exposes the underlying state machine.
func (c *Controller) Machine() *minuterie.Machine[*Env] {
	return c.machine
}

// Period returns the cycle period the controller was configured with.
func (c *Controller) Period() time.Duration {
	return c.period
}

// HoldCycles returns how many cycles the light stays on after a press.
func (c *Controller) HoldCycles() int {
	return c.env.Hold
}
