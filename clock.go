package reel

import "time"

// defaultMaxStep caps a single frame delta at a quarter second so a stall
// (window drag, debugger break) does not fast-forward the timeline.
const defaultMaxStep = 0.25

// Clock converts wall time into per-frame deltas for [Animation.Update],
// for callers not already running under a fixed-timestep loop.
type Clock struct {
	// MaxStep caps the delta returned by a single Dt call, in seconds.
	// Zero or negative disables the cap.
	MaxStep float64

	last time.Time
}

// NewClock creates a clock with the default max step, referenced to now.
func NewClock() *Clock {
	return &Clock{
		MaxStep: defaultMaxStep,
		last:    time.Now(),
	}
}

// Dt returns the seconds elapsed since the previous Dt (or Restart) call,
// capped at MaxStep.
func (c *Clock) Dt() float64 {
	now := time.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if c.MaxStep > 0 && dt > c.MaxStep {
		dt = c.MaxStep
	}
	return dt
}

// Restart resets the reference instant to now, so the next Dt call measures
// from this point. Call it when resuming after a long suspension.
func (c *Clock) Restart() {
	c.last = time.Now()
}
