package runner_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/minuterie/internal/testutils"
	"github.com/aretw0/minuterie/pkg/ports"
	"github.com/aretw0/minuterie/pkg/runner"
)

func TestRunner_TickBudget(t *testing.T) {
	var ticks []uint64
	c := ports.CyclerFunc(func(_ context.Context, tick uint64) error {
		ticks = append(ticks, tick)
		return nil
	})

	r := runner.New(runner.WithPeriod(time.Millisecond), runner.WithMaxTicks(5))
	require.NoError(t, r.Run(context.Background(), c))
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, ticks)
}

func TestRunner_ImmediateStart(t *testing.T) {
	var first time.Duration
	start := time.Now()
	c := ports.CyclerFunc(func(_ context.Context, tick uint64) error {
		if tick == 1 {
			first = time.Since(start)
		}
		return nil
	})

	r := runner.New(
		runner.WithPeriod(time.Second),
		runner.WithMaxTicks(1),
		runner.WithImmediateStart(true),
	)
	require.NoError(t, r.Run(context.Background(), c))
	assert.Less(t, first, 500*time.Millisecond)
}

func TestRunner_CancelStopsCleanly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := ports.CyclerFunc(func(_ context.Context, tick uint64) error {
		if tick == 3 {
			cancel()
		}
		return nil
	})

	r := runner.New(runner.WithPeriod(time.Millisecond))
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx, c) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop after cancellation")
	}
}

func TestRunner_CycleErrorStopsLoop(t *testing.T) {
	boom := errors.New("boom")
	logger, logs := testutils.NewLogger(t, slog.LevelInfo)
	c := ports.CyclerFunc(func(_ context.Context, tick uint64) error {
		if tick == 2 {
			return boom
		}
		return nil
	})

	r := runner.New(
		runner.WithPeriod(time.Millisecond),
		runner.WithLogger(logger),
	)
	err := r.Run(context.Background(), c)
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "tick 2")
	assert.Contains(t, logs.String(), "cycle failed")
}

func TestRunner_CanceledCycleIsNotAnError(t *testing.T) {
	c := ports.CyclerFunc(func(context.Context, uint64) error {
		return context.Canceled
	})
	r := runner.New(runner.WithPeriod(time.Millisecond))
	assert.NoError(t, r.Run(context.Background(), c))
}

func TestRunner_OverrunIsLogged(t *testing.T) {
	logger, logs := testutils.NewLogger(t, slog.LevelInfo)
	var observed []time.Duration
	c := ports.CyclerFunc(func(context.Context, uint64) error {
		time.Sleep(15 * time.Millisecond)
		return nil
	})

	r := runner.New(
		runner.WithPeriod(5*time.Millisecond),
		runner.WithMaxTicks(1),
		runner.WithLogger(logger),
		runner.WithObserver(func(_ uint64, took time.Duration) {
			observed = append(observed, took)
		}),
	)
	require.NoError(t, r.Run(context.Background(), c))

	assert.Contains(t, logs.String(), "more than twice the period")
	require.Len(t, observed, 1)
	assert.GreaterOrEqual(t, observed[0], 15*time.Millisecond)
}

func TestRunner_CycleDeadline(t *testing.T) {
	var deadlines []bool
	c := ports.CyclerFunc(func(ctx context.Context, _ uint64) error {
		_, ok := ctx.Deadline()
		deadlines = append(deadlines, ok)
		return nil
	})

	r := runner.New(runner.WithPeriod(time.Millisecond), runner.WithMaxTicks(2))
	require.NoError(t, r.Run(context.Background(), c))
	assert.Equal(t, []bool{true, true}, deadlines)
}

func TestRunner_InvalidPeriod(t *testing.T) {
	r := runner.New(runner.WithPeriod(0))
	err := r.Run(context.Background(), ports.CyclerFunc(func(context.Context, uint64) error { return nil }))
	assert.ErrorIs(t, err, runner.ErrInvalidPeriod)
}
