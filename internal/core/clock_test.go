package core

import (
	"testing"
	"time"
)

func TestGameClockCountdown(t *testing.T) {
	c := NewGameClock(3)

	for i := 0; i < 5; i++ {
		c.Tick()
	}

	if c.Elapsed() != 3 {
		t.Errorf("Elapsed() = %d, expected ticks to stop at the limit", c.Elapsed())
	}
	if c.Remaining() != 0 || !c.Expired() {
		t.Errorf("Remaining() = %d, Expired() = %v", c.Remaining(), c.Expired())
	}

	c.Reset(60)
	if c.Elapsed() != 0 || c.Remaining() != 60 || c.Expired() {
		t.Errorf("after Reset: elapsed=%d remaining=%d", c.Elapsed(), c.Remaining())
	}
}

func TestGameClockUnlimited(t *testing.T) {
	c := NewGameClock(0)
	for i := 0; i < 100; i++ {
		c.Tick()
	}
	if c.Expired() {
		t.Error("unlimited clock should never expire")
	}
	if c.Elapsed() != 100 || c.Remaining() != 0 {
		t.Errorf("elapsed=%d remaining=%d", c.Elapsed(), c.Remaining())
	}
}

func TestFrameStepperHasNoDrift(t *testing.T) {
	for _, rate := range []int{30, 60, 7} {
		f := NewFrameStepper(rate)
		var total time.Duration
		for i := 0; i < rate*3; i++ {
			total += f.Next()
		}
		if total != 3*time.Second {
			t.Errorf("rate %d: %d frames summed to %v", rate, rate*3, total)
		}
	}
}
