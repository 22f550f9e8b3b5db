package memory

import (
	"context"
	"sync"

	"github.com/aretw0/minuterie/pkg/domain"
)

// DefaultJournalSize is the capacity of a Journal created with a non-positive size.
const DefaultJournalSize = 256

// Journal implements ports.EventLog with a fixed-size ring buffer.
// The oldest events are overwritten once it is full. Safe for concurrent use.
type Journal struct {
	mu     sync.RWMutex
	events []domain.TransitionEvent
	next   int
	full   bool
}

// NewJournal creates a journal keeping the last size events.
func NewJournal(size int) *Journal {
	if size <= 0 {
		size = DefaultJournalSize
	}
	return &Journal{
		events: make([]domain.TransitionEvent, size),
	}
}

// Record stores the event.
func (j *Journal) Record(_ context.Context, e domain.TransitionEvent) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.events[j.next] = e
	j.next = (j.next + 1) % len(j.events)
	if j.next == 0 {
		j.full = true
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (j *Journal) Recent(_ context.Context, limit int) ([]domain.TransitionEvent, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	n := j.next
	if j.full {
		n = len(j.events)
	}
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]domain.TransitionEvent, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (j.next - i + len(j.events)) % len(j.events)
		out = append(out, j.events[idx])
	}
	return out, nil
}
