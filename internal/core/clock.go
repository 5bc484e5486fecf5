package core

import "time"

// GameClock counts whole seconds of play against an optional limit.
// A zero limit means the clock only counts up.
type GameClock struct {
	elapsed int
	limit   int
}

// NewGameClock creates a clock with the given limit in seconds.
func NewGameClock(limit int) *GameClock {
	return &GameClock{limit: max(limit, 0)}
}

// Tick records one elapsed second. Ticks past an expired limit are ignored.
func (c *GameClock) Tick() {
	if c.Expired() {
		return
	}
	c.elapsed++
}

// Elapsed returns whole seconds counted so far.
func (c *GameClock) Elapsed() int {
	return c.elapsed
}

// Limit returns the configured limit; 0 when unlimited.
func (c *GameClock) Limit() int {
	return c.limit
}

// Remaining returns seconds left before the limit, or 0 when unlimited.
func (c *GameClock) Remaining() int {
	if c.limit == 0 {
		return 0
	}
	return max(c.limit-c.elapsed, 0)
}

// Expired reports whether a limited clock has run out.
func (c *GameClock) Expired() bool {
	return c.limit > 0 && c.elapsed >= c.limit
}

// Reset zeroes the clock and installs a new limit.
func (c *GameClock) Reset(limit int) {
	c.elapsed = 0
	c.limit = max(limit, 0)
}

// FrameStepper turns a fixed frame rate into per-frame durations whose sum
// is exact, so N frames at rate N always add up to one second.
type FrameStepper struct {
	rate   int64
	frames int64
}

// NewFrameStepper creates a stepper; a non-positive rate uses the default.
func NewFrameStepper(rate int) *FrameStepper {
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return &FrameStepper{rate: int64(rate)}
}

// Next returns the duration of the next frame.
func (f *FrameStepper) Next() time.Duration {
	prev := f.frames * int64(time.Second) / f.rate
	f.frames++
	return time.Duration(f.frames*int64(time.Second)/f.rate - prev)
}
