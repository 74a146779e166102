package player

import (
	"math"
	"sync/atomic"
)

// Clock is the simulation time source. Now returns the current simulation time in seconds.
type Clock interface {
	Now() float32
}

// ManualClock is a Clock whose time only changes when it is set. The prediction layer sets it
// to the timestamp of each move before simulating the move, so replays observe the same times
// as the first simulation of the move.
type ManualClock struct {
	t atomic.Uint32
}

// NewManualClock returns a clock starting at t.
func NewManualClock(t float32) *ManualClock {
	c := &ManualClock{}
	c.Set(t)
	return c
}

// Now ...
func (c *ManualClock) Now() float32 {
	return math.Float32frombits(c.t.Load())
}

// Set sets the current time of the clock.
func (c *ManualClock) Set(t float32) {
	c.t.Store(math.Float32bits(t))
}

// Advance moves the clock forward by dt and returns the new time.
func (c *ManualClock) Advance(dt float32) float32 {
	t := c.Now() + dt
	c.Set(t)
	return t
}
