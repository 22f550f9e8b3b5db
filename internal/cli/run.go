package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aretw0/minuterie"
	httpapi "github.com/aretw0/minuterie/internal/adapters/http"
	"github.com/aretw0/minuterie/internal/config"
	"github.com/aretw0/minuterie/internal/logging"
	"github.com/aretw0/minuterie/internal/presentation/graph"
	"github.com/aretw0/minuterie/internal/presentation/tui"
	"github.com/aretw0/minuterie/pkg/domain"
	"github.com/aretw0/minuterie/pkg/lamp"
	"github.com/aretw0/minuterie/pkg/observability"
	"github.com/aretw0/minuterie/pkg/ports"
	"github.com/aretw0/minuterie/pkg/runner"
)

// Run wires the lamp to the configured I/O and drives it until ctx is cancelled, the
// tick budget is spent or a cycle fails. It returns the last published snapshot.
func Run(ctx context.Context, cfg config.Config, opts RunOptions) (lamp.Snapshot, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return lamp.Snapshot{}, err
	}
	logger := logging.NewWithWriter(opts.Stderr, level, cfg.Log.Format)

	if opts.Banner {
		tui.PrintBanner(opts.Stdout, minuterie.Version)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	dev, err := openDevices(cfg, opts, cancel, logger)
	if err != nil {
		return lamp.Snapshot{}, fmt.Errorf("failed to open %s devices: %w", cfg.Driver, err)
	}
	defer func() {
		if err := dev.close(); err != nil {
			logger.Warn("failed to release devices", "error", err)
		}
	}()

	names := lamp.Names()
	metrics := observability.NewMetrics(names)
	hooks := metrics.Hooks().Merge(observability.LogHooks(logger, names))

	j, err := openJournal(ctx, cfg.Journal)
	if err != nil {
		return lamp.Snapshot{}, fmt.Errorf("failed to open journal: %w", err)
	}
	if j != nil {
		defer j.Close()

		dispatcher := observability.NewDispatcher(j,
			observability.WithBuffer(cfg.Journal.Buffer),
			observability.WithDispatchLogger(logger),
			observability.WithDropHook(metrics.IncDropped),
		)
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := dispatcher.Close(flushCtx); err != nil {
				logger.Warn("journal flush incomplete", "error", err)
			}
		}()
		hooks = hooks.Merge(dispatcher.Hooks())
	}

	ctrl := lamp.NewController(dev.button, dev.light,
		lamp.WithTiming(cfg.Period, cfg.Hold),
		lamp.WithLogger(logger),
		lamp.WithLifecycleHooks(hooks),
	)

	loop := runner.New(
		runner.WithPeriod(cfg.Period),
		runner.WithLogger(logger),
		runner.WithMaxTicks(opts.MaxTicks),
		runner.WithImmediateStart(true),
		runner.WithObserver(metrics.ObserveLoop),
	)

	cycler := ports.CyclerFunc(func(ctx context.Context, tick uint64) error {
		err := ctrl.Cycle(ctx, tick)
		metrics.SetCountdown(ctrl.Snapshot().Remaining)
		return err
	})

	logger.Info("lamp ready",
		"driver", cfg.Driver,
		"period", cfg.Period,
		"hold", cfg.Hold,
		"hold_cycles", ctrl.HoldCycles())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return loop.Run(gctx, cycler)
	})

	if cfg.HTTP.Enabled {
		handler := newHTTPHandler(ctrl, dev, j, metrics, logger)
		g.Go(func() error {
			return httpapi.Serve(gctx, cfg.HTTP.Addr, handler, logger)
		})
	}

	if dev.background != nil {
		// Not part of the group: a blocked terminal read cannot be interrupted.
		go func() {
			if err := dev.background(gctx); err != nil {
				logger.Warn("input reader stopped", "error", err)
			}
		}()
	}

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return ctrl.Snapshot(), err
}

func newHTTPHandler(ctrl *lamp.Controller, dev *devices, j journal, metrics *observability.Metrics, logger *slog.Logger) http.Handler {
	opts := []httpapi.Option{
		httpapi.WithGraph(graph.GenerateMermaid(ctrl.Machine().Table(), lamp.Names(), nil)),
		httpapi.WithMetrics(metrics.Handler()),
		httpapi.WithLogger(logger),
	}
	if dev.presser != nil {
		opts = append(opts, httpapi.WithPresser(dev.presser))
	}
	if j != nil {
		opts = append(opts, httpapi.WithEvents(j))
	}
	return httpapi.NewHandler(ctrl, opts...)
}

// Describe renders the lamp table for humans.
func Describe(cfg config.Config) string {
	return tui.DescribeMarkdown("Timed light", lamp.NewTable(), lamp.Names(), &tui.Timing{
		Period:     cfg.Period.String(),
		Hold:       cfg.Hold.String(),
		HoldCycles: lamp.CyclesFor(cfg.Hold, cfg.Period),
	})
}

// Graph renders the lamp table as a Mermaid flowchart, highlighting current if set.
func Graph(current *domain.State) string {
	var overlay *graph.GraphOverlay
	if current != nil {
		overlay = &graph.GraphOverlay{Current: current}
	}
	return graph.GenerateMermaid(lamp.NewTable(), lamp.Names(), overlay)
}
