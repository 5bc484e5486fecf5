package core

import (
	"testing"
	"time"
)

func TestSchedulerFiresInOrder(t *testing.T) {
	s := NewScheduler()
	var order []TimerKind

	s.After("b", 2*time.Second, func() { order = append(order, "b") })
	s.After("a", time.Second, func() { order = append(order, "a") })
	s.After("c", 2*time.Second, func() { order = append(order, "c") })

	s.Advance(1500 * time.Millisecond)
	if len(order) != 1 || order[0] != "a" {
		t.Fatalf("after 1.5s fired %v, expected [a]", order)
	}

	s.Advance(time.Second)
	if len(order) != 3 || order[1] != "b" || order[2] != "c" {
		t.Errorf("fired %v, expected [a b c]", order)
	}
	if s.Now() != 2500*time.Millisecond {
		t.Errorf("Now() = %v, expected 2.5s", s.Now())
	}
}

func TestSchedulerSameKindReplaces(t *testing.T) {
	s := NewScheduler()
	fired := 0

	first := s.After("tick", time.Second, func() { fired += 1 })
	s.After("tick", time.Second, func() { fired += 10 })

	if first.Stop() {
		t.Error("replaced timer should already be stopped")
	}
	s.Advance(time.Second)
	if fired != 10 {
		t.Errorf("fired = %d, expected only the replacement to run", fired)
	}
}

func TestSchedulerStopIsNoop(t *testing.T) {
	s := NewScheduler()
	fired := false

	timer := s.After("unflip", time.Second, func() { fired = true })
	if !timer.Stop() {
		t.Fatal("Stop on pending timer should return true")
	}
	s.Advance(5 * time.Second)

	if fired {
		t.Error("stopped timer callback ran")
	}
	if s.Pending("unflip") {
		t.Error("stopped timer still pending")
	}
}

func TestSchedulerRearmDuringCallback(t *testing.T) {
	s := NewScheduler()
	ticks := 0

	var tick func()
	tick = func() {
		ticks++
		s.After("clock", time.Second, tick)
	}
	s.After("clock", time.Second, tick)

	s.Advance(3500 * time.Millisecond)
	if ticks != 3 {
		t.Errorf("ticks = %d, expected 3", ticks)
	}
	if d, ok := s.Remaining("clock"); !ok || d != 500*time.Millisecond {
		t.Errorf("Remaining = %v, %v; expected 500ms", d, ok)
	}
}

func TestSchedulerPause(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After("x", time.Second, func() { fired = true })

	s.Advance(600 * time.Millisecond)
	s.Pause()
	s.Advance(10 * time.Second)
	if fired || s.Now() != 600*time.Millisecond {
		t.Fatalf("paused scheduler advanced: now=%v fired=%v", s.Now(), fired)
	}

	s.Resume()
	s.Advance(400 * time.Millisecond)
	if !fired {
		t.Error("timer should fire once the partial second completes")
	}
}

func TestSchedulerClear(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After("a", time.Second, func() { fired++ })
	s.After("b", time.Second, func() { fired++ })

	s.Clear()
	s.Advance(2 * time.Second)

	if fired != 0 {
		t.Errorf("cleared timers fired %d times", fired)
	}
	if s.Cancel("a") {
		t.Error("Cancel after Clear should report nothing pending")
	}
}
