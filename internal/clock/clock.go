// Package clock provides the logical game clock: a monotonic, tick-quantized
// time source advanced once per driver tick. All scheduling due-times are
// expressed on this clock, never on wall time, so a simulation can be driven
// faster or slower than real time without changing behavior.
package clock

import "time"

type Clock struct {
	tickLen time.Duration
	ticks   uint64
}

func New(tickLen time.Duration) *Clock {
	return &Clock{tickLen: tickLen}
}

// Now returns the current logical time: ticks elapsed × tick length.
func (c *Clock) Now() time.Duration {
	return time.Duration(c.ticks) * c.tickLen
}

func (c *Clock) TickLength() time.Duration {
	return c.tickLen
}

// Ticks returns the number of completed ticks.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Advance moves the clock forward by one tick.
func (c *Clock) Advance() {
	c.ticks++
}
