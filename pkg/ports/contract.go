package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/minuterie/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunEventLogContract runs a suite of tests to verify that an EventLog implementation
// adheres to the defined interface contract. The log must be empty on entry.
func RunEventLogContract(t *testing.T, log EventLog) {
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Empty", func(t *testing.T) {
		events, err := log.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("Record and Read Back", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			err := log.Record(ctx, domain.TransitionEvent{
				Timestamp: base.Add(time.Duration(i) * time.Second),
				Cycle:     uint64(i + 1),
				Row:       i,
				From:      domain.State(i),
				To:        domain.State(i + 1),
				Guard:     "guard",
				Action:    "action",
			})
			require.NoError(t, err, "Record should not return error")
		}

		events, err := log.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 3)

		// Newest first
		assert.Equal(t, uint64(3), events[0].Cycle)
		assert.Equal(t, uint64(1), events[2].Cycle)
		assert.Equal(t, domain.State(2), events[0].From)
		assert.Equal(t, domain.State(3), events[0].To)
		assert.Equal(t, "guard", events[0].Guard)
		assert.Equal(t, "action", events[0].Action)
		assert.True(t, base.Add(2*time.Second).Equal(events[0].Timestamp))
	})

	t.Run("Limit", func(t *testing.T) {
		events, err := log.Recent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, uint64(3), events[0].Cycle)
		assert.Equal(t, uint64(2), events[1].Cycle)
	})

	t.Run("Error Preserved", func(t *testing.T) {
		err := log.Record(ctx, domain.TransitionEvent{Timestamp: base, Cycle: 9, Err: "output stuck"})
		require.NoError(t, err)

		events, err := log.Recent(ctx, 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "output stuck", events[0].Err)
	})
}
