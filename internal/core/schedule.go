package core

import "time"

// TimerKind names a timer slot. A scheduler holds at most one pending timer
// per kind.
type TimerKind string

// Timer is a one-shot callback armed on a Scheduler.
type Timer struct {
	kind  TimerKind
	due   time.Duration
	seq   uint64
	fn    func()
	done  bool
	owner *Scheduler
}

// Kind returns the slot the timer occupies.
func (t *Timer) Kind() TimerKind {
	return t.kind
}

// Stop cancels the timer. It returns false if the timer already fired or was
// stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	if t.owner.pending[t.kind] == t {
		delete(t.owner.pending, t.kind)
	}
	return true
}

// Scheduler runs one-shot timers against virtual time. Time only moves when
// the owner calls Advance, so all callbacks run on the caller's goroutine and
// a paused scheduler never loses or gains time.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	paused  bool
	pending map[TimerKind]*Timer
}

// NewScheduler creates a scheduler at virtual time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[TimerKind]*Timer)}
}

// Now returns the accumulated virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After arms fn to run d after the current virtual time. Any pending timer of
// the same kind is cancelled first.
func (s *Scheduler) After(kind TimerKind, d time.Duration, fn func()) *Timer {
	if prev, ok := s.pending[kind]; ok {
		prev.Stop()
	}
	s.seq++
	t := &Timer{
		kind:  kind,
		due:   s.now + max(d, 0),
		seq:   s.seq,
		fn:    fn,
		owner: s,
	}
	s.pending[kind] = t
	return t
}

// Cancel stops the pending timer of the given kind, if any.
func (s *Scheduler) Cancel(kind TimerKind) bool {
	t, ok := s.pending[kind]
	if !ok {
		return false
	}
	return t.Stop()
}

// Pending reports whether a timer of the given kind is armed.
func (s *Scheduler) Pending(kind TimerKind) bool {
	_, ok := s.pending[kind]
	return ok
}

// Remaining returns how long until the timer of the given kind fires.
func (s *Scheduler) Remaining(kind TimerKind) (time.Duration, bool) {
	t, ok := s.pending[kind]
	if !ok {
		return 0, false
	}
	return t.due - s.now, true
}

// Clear cancels every pending timer.
func (s *Scheduler) Clear() {
	for _, t := range s.pending {
		t.done = true
	}
	clear(s.pending)
}

// Pause freezes virtual time.
func (s *Scheduler) Pause() {
	s.paused = true
}

// Resume unfreezes virtual time.
func (s *Scheduler) Resume() {
	s.paused = false
}

// Paused reports whether the scheduler is paused.
func (s *Scheduler) Paused() bool {
	return s.paused
}

// Advance moves virtual time forward by dt, firing due timers in due order
// (ties in arming order). Timers armed by a callback fire in the same call if
// they fall due within dt. If a callback pauses the scheduler, the remaining
// time is discarded.
func (s *Scheduler) Advance(dt time.Duration) {
	if s.paused || dt <= 0 {
		return
	}
	target := s.now + dt
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = max(s.now, next.due)
		next.done = true
		delete(s.pending, next.kind)
		next.fn()
		if s.paused {
			return
		}
	}
	s.now = target
}

func (s *Scheduler) nextDue(limit time.Duration) *Timer {
	var next *Timer
	for _, t := range s.pending {
		if t.due > limit {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	return next
}
