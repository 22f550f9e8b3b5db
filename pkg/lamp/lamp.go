package lamp

import (
	"context"
	"fmt"

	"github.com/aretw0/minuterie/pkg/domain"
	"github.com/aretw0/minuterie/pkg/dsl"
	"github.com/aretw0/minuterie/pkg/ports"
)

// Lamp states.
const (
	Off domain.State = 0
	On  domain.State = 1
)

// Guard and action labels.
const (
	GuardButtonPressed = "button_pressed"
	GuardTimerExpired  = "timer_expired"
	ActionLightOn      = "light_on"
	ActionLightOff     = "light_off"
)

// Env is the environment the lamp's guards and actions see during one cycle.
// Pressed is a snapshot of the button taken before evaluation.
type Env struct {
	Pressed   bool
	Light     ports.Output
	Countdown *Countdown
	// Hold is the countdown length, in cycles, armed by LightOn.
	Hold int
}

// ButtonPressed holds while the activation input is asserted.
func ButtonPressed(_ context.Context, e *Env) bool {
	return e.Pressed
}

// TimerExpired holds once the countdown has reached zero.
func TimerExpired(_ context.Context, e *Env) bool {
	return e.Countdown.Expired()
}

// LightOn asserts the output and (re)starts the countdown.
func LightOn(_ context.Context, e *Env) error {
	if err := e.Light.Set(true); err != nil {
		return fmt.Errorf("assert light: %w", err)
	}
	e.Countdown.Start(e.Hold)
	return nil
}

// LightOff deasserts the output.
func LightOff(_ context.Context, e *Env) error {
	if err := e.Light.Set(false); err != nil {
		return fmt.Errorf("deassert light: %w", err)
	}
	return nil
}

func builder() *dsl.Builder[*Env] {
	b := dsl.New[*Env]()
	b.State(Off, "off").State(On, "on")

	b.From(Off).When(GuardButtonPressed, ButtonPressed).Go(On).Do(ActionLightOn, LightOn)
	b.From(On).When(GuardButtonPressed, ButtonPressed).Go(On).Do(ActionLightOn, LightOn)
	b.From(On).When(GuardTimerExpired, TimerExpired).Go(Off).Do(ActionLightOff, LightOff)

	return b
}

// NewTable builds the lamp's transition table. Each call returns a fresh table.
func NewTable() *domain.Table[*Env] {
	return builder().MustBuild()
}

// Names returns the state labels of the lamp.
func Names() domain.StateNames {
	return builder().Names()
}
