package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/minuterie/pkg/ports"
)

// ErrInvalidPeriod is returned by Run when the period is not positive.
var ErrInvalidPeriod = errors.New("runner: period must be positive")

// Runner drives a ports.Cycler at a fixed cadence.
type Runner struct {
	period    time.Duration
	logger    *slog.Logger
	maxTicks  uint64
	immediate bool
	observe   func(tick uint64, took time.Duration)
}

// New creates a Runner. Without options it ticks every DefaultPeriod, forever.
func New(opts ...Option) *Runner {
	r := &Runner{
		period: DefaultPeriod,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Period returns the configured cycle period.
func (r *Runner) Period() time.Duration {
	return r.period
}

// Run executes cycles until ctx is cancelled, the tick budget is exhausted, or a cycle
// returns an error. Cancellation is a normal stop and yields nil. A cycle that only hit
// its own per-cycle deadline is logged and the loop continues.
func (r *Runner) Run(ctx context.Context, c ports.Cycler) error {
	if r.period <= 0 {
		return ErrInvalidPeriod
	}

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	r.logger.InfoContext(ctx, "control loop started", "period", r.period, "max_ticks", r.maxTicks)

	var tick uint64
	if r.immediate {
		tick++
		if done, err := r.step(ctx, c, tick); done {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "control loop stopped", "ticks", tick)
			return nil
		case <-ticker.C:
			tick++
			if done, err := r.step(ctx, c, tick); done {
				return err
			}
		}
	}
}

// step runs one cycle and reports whether the loop must stop.
func (r *Runner) step(ctx context.Context, c ports.Cycler, tick uint64) (bool, error) {
	start := time.Now()

	cycleCtx, cancel := context.WithTimeout(ctx, r.period)
	err := c.Cycle(cycleCtx, tick)
	cancel()

	took := time.Since(start)
	if took > r.period {
		if took > 2*r.period {
			r.logger.ErrorContext(ctx, "cycle took more than twice the period", "tick", tick, "took", took, "period", r.period)
		} else {
			r.logger.WarnContext(ctx, "cycle overran the period", "tick", tick, "took", took, "period", r.period)
		}
	}
	if r.observe != nil {
		r.observe(tick, took)
	}

	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			r.logger.InfoContext(ctx, "control loop cancelled", "tick", tick)
			return true, nil
		case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
			r.logger.WarnContext(ctx, "cycle timed out", "tick", tick, "error", err)
		default:
			r.logger.ErrorContext(ctx, "cycle failed", "tick", tick, "error", err)
			return true, fmt.Errorf("control loop stopped at tick %d: %w", tick, err)
		}
	}

	if r.maxTicks > 0 && tick >= r.maxTicks {
		r.logger.InfoContext(ctx, "tick budget exhausted", "ticks", tick)
		return true, nil
	}
	return false, nil
}
