package runner

import (
	"log/slog"
	"time"
)

// DefaultPeriod is the cycle period used when none is configured.
const DefaultPeriod = 200 * time.Millisecond

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithPeriod sets the cycle period.
func WithPeriod(period time.Duration) Option {
	return func(r *Runner) {
		r.period = period
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMaxTicks stops the loop after n cycles. Zero means run until cancelled.
func WithMaxTicks(n uint64) Option {
	return func(r *Runner) {
		r.maxTicks = n
	}
}

// WithImmediateStart runs the first cycle right away instead of waiting one period.
func WithImmediateStart(immediate bool) Option {
	return func(r *Runner) {
		r.immediate = immediate
	}
}

// WithObserver registers a callback invoked after every cycle with its wall-clock
// duration. It runs on the loop goroutine.
func WithObserver(fn func(tick uint64, took time.Duration)) Option {
	return func(r *Runner) {
		r.observe = fn
	}
}
