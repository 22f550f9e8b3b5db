package ports

// Input is a boolean sensor.
// Asserted must return promptly: it is sampled once per cycle on the control goroutine.
type Input interface {
	Asserted() bool
}

// Output is a boolean actuator.
type Output interface {
	// Set drives the output. An error means the physical state is unknown.
	Set(on bool) error

	// IsOn reports the last successfully written level.
	IsOn() bool
}

// InputFunc adapts a function to Input.
type InputFunc func() bool

// Asserted calls f.
func (f InputFunc) Asserted() bool {
	return f()
}
