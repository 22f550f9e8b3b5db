package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/minuterie/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultMaxLen is the number of entries a journal stream keeps by default.
const DefaultMaxLen = 1000

const eventField = "event"

// Journal implements ports.EventLog on a Redis stream.
// Each transition is one XADD entry; the stream is capped at MaxLen entries.
type Journal struct {
	client *backend.Client
	stream string
	maxLen int64
}

type Option func(*Journal)

// WithStream sets the stream key.
func WithStream(stream string) Option {
	return func(j *Journal) {
		j.stream = stream
	}
}

// WithMaxLen caps the stream length. Zero or less keeps every entry.
func WithMaxLen(n int64) Option {
	return func(j *Journal) {
		j.maxLen = n
	}
}

// New creates a journal with its own client.
func New(address, password string, db int, opts ...Option) *Journal {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a journal from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Journal {
	j := &Journal{
		client: client,
		stream: "minuterie:transitions",
		maxLen: DefaultMaxLen,
	}

	for _, opt := range opts {
		opt(j)
	}

	return j
}

// Stream returns the stream key.
func (j *Journal) Stream() string {
	return j.stream
}

// Ping checks the connection.
func (j *Journal) Ping(ctx context.Context) error {
	if err := j.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}
	return nil
}

// Record appends the event to the stream.
func (j *Journal) Record(ctx context.Context, e domain.TransitionEvent) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	args := &backend.XAddArgs{
		Stream: j.stream,
		Values: map[string]any{eventField: data},
	}
	if j.maxLen > 0 {
		args.MaxLen = j.maxLen
	}

	if err := j.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("failed to append to stream: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]domain.TransitionEvent, error) {
	var (
		msgs []backend.XMessage
		err  error
	)
	if limit > 0 {
		msgs, err = j.client.XRevRangeN(ctx, j.stream, "+", "-", int64(limit)).Result()
	} else {
		msgs, err = j.client.XRevRange(ctx, j.stream, "+", "-").Result()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stream: %w", err)
	}

	events := make([]domain.TransitionEvent, 0, len(msgs))
	for _, msg := range msgs {
		raw, ok := msg.Values[eventField].(string)
		if !ok {
			return nil, fmt.Errorf("stream entry %s has no %q field", msg.ID, eventField)
		}

		var e domain.TransitionEvent
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry %s: %w", msg.ID, err)
		}
		events = append(events, e)
	}

	return events, nil
}

// Close closes the redis client.
func (j *Journal) Close() error {
	return j.client.Close()
}
