package ports

import "context"

// Cycler is one unit of periodic work.
// The runner calls Cycle once per period, never concurrently.
type Cycler interface {
	Cycle(ctx context.Context, tick uint64) error
}

// CyclerFunc adapts a function to Cycler.
type CyclerFunc func(ctx context.Context, tick uint64) error

// Cycle calls f.
func (f CyclerFunc) Cycle(ctx context.Context, tick uint64) error {
	return f(ctx, tick)
}
