package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/minuterie/internal/adapters/memory"
	"github.com/aretw0/minuterie/pkg/domain"
	"github.com/aretw0/minuterie/pkg/ports"
)

func TestJournal_Contract(t *testing.T) {
	ports.RunEventLogContract(t, memory.NewJournal(16))
}

func TestJournal_Wraps(t *testing.T) {
	ctx := context.Background()
	j := memory.NewJournal(3)

	for i := uint64(1); i <= 5; i++ {
		require.NoError(t, j.Record(ctx, domain.TransitionEvent{Cycle: i}))
	}

	events, err := j.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, uint64(5), events[0].Cycle)
	assert.Equal(t, uint64(4), events[1].Cycle)
	assert.Equal(t, uint64(3), events[2].Cycle)
}

func TestJournal_NonPositiveLimitReturnsAll(t *testing.T) {
	ctx := context.Background()
	j := memory.NewJournal(0)
	require.NoError(t, j.Record(ctx, domain.TransitionEvent{Cycle: 1}))
	require.NoError(t, j.Record(ctx, domain.TransitionEvent{Cycle: 2}))

	events, err := j.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
