package ports

import (
	"context"

	"github.com/aretw0/minuterie/pkg/domain"
)

// EventSink records transition events.
type EventSink interface {
	Record(ctx context.Context, event domain.TransitionEvent) error
}

// EventSource reads back recorded transition events.
type EventSource interface {
	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]domain.TransitionEvent, error)
}

// EventLog is a sink that can also be read back.
type EventLog interface {
	EventSink
	EventSource
}
