// Package periph drives the lamp from real GPIO lines through periph.io.
package periph

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// ErrUnknownPin is returned when a pin name is not registered on this host.
var ErrUnknownPin = errors.New("unknown gpio pin")

// Line describes one GPIO line.
type Line struct {
	Name      string
	ActiveLow bool
	// Pull only applies to inputs: "up", "down", "float" or "" for the line default.
	Pull string
}

// ParsePull converts a pull name to a gpio.Pull.
func ParsePull(s string) (gpio.Pull, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return gpio.PullNoChange, nil
	case "up":
		return gpio.PullUp, nil
	case "down":
		return gpio.PullDown, nil
	case "float", "none":
		return gpio.Float, nil
	}
	return gpio.PullNoChange, fmt.Errorf("invalid pull %q (want up, down or float)", s)
}

// Button reads a push-button wired to an input line. Level reads are not debounced.
type Button struct {
	pin       gpio.PinIO
	activeLow bool
}

// NewButton configures pin as an input.
func NewButton(pin gpio.PinIO, activeLow bool, pull gpio.Pull) (*Button, error) {
	if err := pin.In(pull, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("failed to configure %s as input: %w", pin.Name(), err)
	}
	return &Button{pin: pin, activeLow: activeLow}, nil
}

// Asserted implements ports.Input.
func (b *Button) Asserted() bool {
	return bool(b.pin.Read()) != b.activeLow
}

// Light drives an output line.
type Light struct {
	pin       gpio.PinIO
	activeLow bool
	on        atomic.Bool
}

// NewLight configures pin as an output and switches it off.
func NewLight(pin gpio.PinIO, activeLow bool) (*Light, error) {
	l := &Light{pin: pin, activeLow: activeLow}
	if err := l.Set(false); err != nil {
		return nil, err
	}
	return l, nil
}

// Set implements ports.Output.
func (l *Light) Set(on bool) error {
	if err := l.pin.Out(gpio.Level(on != l.activeLow)); err != nil {
		return fmt.Errorf("failed to drive %s: %w", l.pin.Name(), err)
	}
	l.on.Store(on)
	return nil
}

// IsOn implements ports.Output.
func (l *Light) IsOn() bool {
	return l.on.Load()
}

// Open initializes the host drivers and returns the button and the light.
func Open(button, light Line) (*Button, *Light, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize gpio host: %w", err)
	}
	return OpenWith(gpioreg.ByName, button, light)
}

// OpenWith is Open with a custom pin lookup and no host initialization.
func OpenWith(lookup func(name string) gpio.PinIO, button, light Line) (*Button, *Light, error) {
	pull, err := ParsePull(button.Pull)
	if err != nil {
		return nil, nil, err
	}

	bp := lookup(button.Name)
	if bp == nil {
		return nil, nil, fmt.Errorf("button %q: %w", button.Name, ErrUnknownPin)
	}
	lp := lookup(light.Name)
	if lp == nil {
		return nil, nil, fmt.Errorf("light %q: %w", light.Name, ErrUnknownPin)
	}

	b, err := NewButton(bp, button.ActiveLow, pull)
	if err != nil {
		return nil, nil, err
	}
	l, err := NewLight(lp, light.ActiveLow)
	if err != nil {
		return nil, nil, err
	}
	return b, l, nil
}
