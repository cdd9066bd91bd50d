package game

import "time"

// Clock supplies tick timestamps.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// SteppedClock is a synthetic clock that only moves when Advance is called.
// Headless runs advance it by one frame interval per tick so delta is 1.
type SteppedClock struct {
	now  time.Time
	step time.Duration
}

// NewSteppedClock returns a clock starting at the Unix epoch.
func NewSteppedClock(step time.Duration) *SteppedClock {
	return &SteppedClock{now: time.Unix(0, 0), step: step}
}

// Now returns the current synthetic time.
func (c *SteppedClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by one step.
func (c *SteppedClock) Advance() {
	c.now = c.now.Add(c.step)
}

// AdvanceBy moves the clock forward by d.
func (c *SteppedClock) AdvanceBy(d time.Duration) {
	c.now = c.now.Add(d)
}
