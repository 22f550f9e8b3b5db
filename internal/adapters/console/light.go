package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// Light renders the lamp as a single status line that is redrawn on every change.
type Light struct {
	mu  sync.Mutex
	out *termenv.Output
	on  bool
}

// NewLight writes to w using the colour profile detected for it.
func NewLight(w io.Writer, opts ...termenv.OutputOption) *Light {
	return &Light{out: termenv.NewOutput(w, opts...)}
}

// Set implements ports.Output.
func (l *Light) Set(on bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.on = on
	status := termenv.String(" ○ light off ").Faint()
	if on {
		status = l.out.String(" ● LIGHT ON ").Bold().Foreground(l.out.Color("#facc15"))
	}

	l.out.ClearLine()
	if _, err := fmt.Fprintf(l.out, "\r%s", status); err != nil {
		return fmt.Errorf("failed to draw light: %w", err)
	}
	return nil
}

// IsOn implements ports.Output.
func (l *Light) IsOn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
