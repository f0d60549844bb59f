package engine

import "time"

// Clock converts real elapsed time into fixed simulation ticks
// In step mode the accumulator is disabled and lag is discarded, ticks run only on request
type Clock struct {
	tick float64
	lag  float64
	step bool
}

// NewClock creates an accumulator clock for a tick length in seconds
func NewClock(tick float64) *Clock {
	return &Clock{tick: tick}
}

// Tick returns the fixed tick length in seconds
func (c *Clock) Tick() float64 {
	return c.tick
}

// Advance accumulates elapsed time and runs every whole tick it covers, returns the tick count
func (c *Clock) Advance(elapsed time.Duration, step func(dt float64)) int {
	if c.step {
		c.lag = 0
		return 0
	}

	c.lag += elapsed.Seconds()
	n := 0
	for c.lag >= c.tick {
		step(c.tick)
		c.lag -= c.tick
		n++
	}
	return n
}

// StepMode reports whether ticks are manual
func (c *Clock) StepMode() bool {
	return c.step
}

// SetStepMode enables or disables manual ticking
func (c *Clock) SetStepMode(on bool) {
	c.step = on
	c.lag = 0
}

// Lag returns the accumulated time not yet consumed by ticks
func (c *Clock) Lag() float64 {
	return c.lag
}
