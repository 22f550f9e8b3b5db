package lamp

import "time"

// Countdown counts cycles down to zero.
// It is owned by the control loop and handed to guards and actions through Env.
type Countdown struct {
	remaining int
}

// Start arms the countdown with n cycles.
func (c *Countdown) Start(n int) {
	if n < 0 {
		n = 0
	}
	c.remaining = n
}

// Next advances by one cycle and returns what is left. It never goes below zero.
func (c *Countdown) Next() int {
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining
}

// Expired reports whether the countdown is at zero.
func (c *Countdown) Expired() bool {
	return c.remaining == 0
}

// Remaining returns the cycles left.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// CyclesFor converts a hold duration into whole cycles of the given period,
// e.g. 4s at 200ms is 20 cycles.
func CyclesFor(hold, period time.Duration) int {
	if period <= 0 {
		return 0
	}
	return int(hold / period)
}
