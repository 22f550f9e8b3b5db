package memory

import "sync/atomic"

// Pin is a software level: an input a test or another goroutine can drive.
// Safe for concurrent use.
type Pin struct {
	level atomic.Bool
}

// Set drives the pin.
func (p *Pin) Set(asserted bool) {
	p.level.Store(asserted)
}

// Asserted implements ports.Input.
func (p *Pin) Asserted() bool {
	return p.level.Load()
}

// Button is a virtual push-button. Press latches until the next sample, so a press
// shorter than one cycle is never missed. Safe for concurrent use.
type Button struct {
	held    atomic.Bool
	pending atomic.Bool
}

// Press registers one momentary press.
func (b *Button) Press() {
	b.pending.Store(true)
}

// Hold keeps the button down (true) or releases it (false).
func (b *Button) Hold(down bool) {
	b.held.Store(down)
}

// Asserted implements ports.Input. Reading consumes a latched press.
func (b *Button) Asserted() bool {
	return b.pending.Swap(false) || b.held.Load()
}

// Light is an in-memory output that remembers how often it switched.
// Safe for concurrent use.
type Light struct {
	on       atomic.Bool
	switches atomic.Uint64
}

// Set implements ports.Output.
func (l *Light) Set(on bool) error {
	if l.on.Swap(on) != on {
		l.switches.Add(1)
	}
	return nil
}

// IsOn implements ports.Output.
func (l *Light) IsOn() bool {
	return l.on.Load()
}

// Switches returns how many times the light changed level.
func (l *Light) Switches() uint64 {
	return l.switches.Load()
}
