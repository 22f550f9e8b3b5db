package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/minuterie/pkg/domain"
)

const namespace = "minuterie"

// Metrics holds the Prometheus collectors of one machine.
// Collectors live on a private registry so several machines (or tests) never collide.
type Metrics struct {
	registry *prometheus.Registry
	names    domain.StateNames

	cycles        prometheus.Counter
	transitions   *prometheus.CounterVec
	actionErrors  *prometheus.CounterVec
	droppedEvents prometheus.Counter
	state         prometheus.Gauge
	countdown     prometheus.Gauge
	evalDuration  prometheus.Histogram
	loopDuration  prometheus.Histogram
}

// NewMetrics creates and registers the collectors. names labels states in the
// transition counter; unnamed states use their number.
func NewMetrics(names domain.StateNames) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		names:    names,
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_total",
			Help:      "Total number of evaluation cycles",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Total number of transitions fired, by source and target state",
		}, []string{"from", "to"}),
		actionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "action_errors_total",
			Help:      "Total number of failed transition actions",
		}, []string{"action"}),
		droppedEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_events_total",
			Help:      "Transition events dropped because the journal could not keep up",
		}),
		state: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "state",
			Help:      "Current machine state",
		}),
		countdown: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "countdown_cycles",
			Help:      "Cycles left before the light turns off",
		}),
		evalDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Duration of one engine update",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		loopDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_duration_seconds",
			Help:      "Wall-clock duration of one control loop cycle, including I/O",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}

	m.registry.MustRegister(
		m.cycles,
		m.transitions,
		m.actionErrors,
		m.droppedEvents,
		m.state,
		m.countdown,
		m.evalDuration,
		m.loopDuration,
		prometheus.NewGoCollector(),
	)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			m.transitions.WithLabelValues(m.names.Name(e.From), m.names.Name(e.To)).Inc()
			if e.Err != "" {
				m.actionErrors.WithLabelValues(e.Action).Inc()
			}
		},
		OnCycle: func(_ context.Context, e *domain.CycleEvent) {
			m.cycles.Inc()
			m.state.Set(float64(e.State))
			m.evalDuration.Observe(e.Duration.Seconds())
		},
	}
}

// ObserveLoop records the duration of one control loop cycle.
func (m *Metrics) ObserveLoop(_ uint64, took time.Duration) {
	m.loopDuration.Observe(took.Seconds())
}

// SetCountdown publishes the cycles left on the countdown.
func (m *Metrics) SetCountdown(n int) {
	m.countdown.Set(float64(n))
}

// IncDropped counts one dropped event.
func (m *Metrics) IncDropped() {
	m.droppedEvents.Inc()
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
