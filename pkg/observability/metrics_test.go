package observability_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/minuterie/pkg/domain"
	"github.com/aretw0/minuterie/pkg/observability"
)

func TestMetrics_Hooks(t *testing.T) {
	ctx := context.Background()
	m := observability.NewMetrics(domain.StateNames{0: "off", 1: "on"})
	hooks := m.Hooks()

	hooks.OnTransition(ctx, &domain.TransitionEvent{From: 0, To: 1, Action: "light_on"})
	hooks.OnTransition(ctx, &domain.TransitionEvent{From: 1, To: 1, Action: "light_on", Err: "gpio busy"})
	hooks.OnCycle(ctx, &domain.CycleEvent{State: 1, Duration: time.Microsecond})
	hooks.OnCycle(ctx, &domain.CycleEvent{State: 1, Duration: time.Microsecond})
	m.SetCountdown(17)
	m.IncDropped()
	m.ObserveLoop(1, 3*time.Millisecond)

	expected := `
# HELP minuterie_transitions_total Total number of transitions fired, by source and target state
# TYPE minuterie_transitions_total counter
minuterie_transitions_total{from="off",to="on"} 1
minuterie_transitions_total{from="on",to="on"} 1
`
	require.NoError(t, testutil.CollectAndCompare(m.Registry(), strings.NewReader(expected), "minuterie_transitions_total"))

	assert.Equal(t, 2, testutil.CollectAndCount(m.Registry(), "minuterie_transitions_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "minuterie_action_errors_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Registry(), "minuterie_cycle_duration_seconds"))

	expected = `
# HELP minuterie_cycles_total Total number of evaluation cycles
# TYPE minuterie_cycles_total counter
minuterie_cycles_total 2
# HELP minuterie_countdown_cycles Cycles left before the light turns off
# TYPE minuterie_countdown_cycles gauge
minuterie_countdown_cycles 17
# HELP minuterie_dropped_events_total Transition events dropped because the journal could not keep up
# TYPE minuterie_dropped_events_total counter
minuterie_dropped_events_total 1
# HELP minuterie_state Current machine state
# TYPE minuterie_state gauge
minuterie_state 1
`
	require.NoError(t, testutil.CollectAndCompare(m.Registry(), strings.NewReader(expected),
		"minuterie_cycles_total", "minuterie_countdown_cycles", "minuterie_dropped_events_total", "minuterie_state"))
}

func TestMetrics_Handler(t *testing.T) {
	m := observability.NewMetrics(nil)
	m.Hooks().OnCycle(context.Background(), &domain.CycleEvent{State: 0})

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "minuterie_cycles_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_Isolated(t *testing.T) {
	a := observability.NewMetrics(nil)
	b := observability.NewMetrics(nil)
	a.IncDropped()

	dropped := func(n int) string {
		return fmt.Sprintf(`
# HELP minuterie_dropped_events_total Transition events dropped because the journal could not keep up
# TYPE minuterie_dropped_events_total counter
minuterie_dropped_events_total %d
`, n)
	}
	assert.NoError(t, testutil.CollectAndCompare(a.Registry(), strings.NewReader(dropped(1)), "minuterie_dropped_events_total"))
	assert.NoError(t, testutil.CollectAndCompare(b.Registry(), strings.NewReader(dropped(0)), "minuterie_dropped_events_total"))
}
