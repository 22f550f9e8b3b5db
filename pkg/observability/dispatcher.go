package observability

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/minuterie/pkg/domain"
	"github.com/aretw0/minuterie/pkg/ports"
)

// DefaultDispatchBuffer is the number of events a Dispatcher queues before dropping.
const DefaultDispatchBuffer = 64

// Dispatcher forwards transition events to an EventSink on a background goroutine.
// Publish never blocks: when the queue is full the event is dropped and counted.
type Dispatcher struct {
	sink    ports.EventSink
	logger  *slog.Logger
	timeout time.Duration
	onDrop  func()

	mu      sync.RWMutex
	closed  bool
	queue   chan domain.TransitionEvent
	done    chan struct{}
	dropped atomic.Uint64
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithBuffer sets the queue length.
func WithBuffer(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.queue = make(chan domain.TransitionEvent, n)
		}
	}
}

// WithDispatchLogger sets the logger used to report sink failures and drops.
func WithDispatchLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithRecordTimeout bounds each call to the sink.
func WithRecordTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.timeout = timeout
	}
}

// WithDropHook registers a callback invoked for every dropped event.
func WithDropHook(fn func()) DispatcherOption {
	return func(d *Dispatcher) {
		d.onDrop = fn
	}
}

// NewDispatcher starts a dispatcher writing to sink. Call Close to flush and stop it.
func NewDispatcher(sink ports.EventSink, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		sink:    sink,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout: time.Second,
		queue:   make(chan domain.TransitionEvent, DefaultDispatchBuffer),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	go d.loop()
	return d
}

func (d *Dispatcher) loop() {
	defer close(d.done)
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.sink.Record(ctx, ev); err != nil {
			d.logger.Warn("failed to record transition", "cycle", ev.Cycle, "error", err)
		}
		cancel()
	}
}

// Publish queues a copy of e. It returns false when the event was dropped.
func (d *Dispatcher) Publish(e *domain.TransitionEvent) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.closed {
		select {
		case d.queue <- *e:
			return true
		default:
		}
	}

	d.dropped.Add(1)
	if d.onDrop != nil {
		d.onDrop()
	}
	d.logger.Warn("transition event dropped", "cycle", e.Cycle)
	return false
}

// Hooks returns lifecycle hooks that publish every transition.
func (d *Dispatcher) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			d.Publish(e)
		},
	}
}

// Dropped returns how many events were dropped so far.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Close stops accepting events and waits until the queued ones reach the sink or ctx
// expires.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
