package maze

import (
	"time"

	"github.com/vovakirdan/milkyway-arcade/internal/core"
)

// GameID identifies the maze in events and storage.
const GameID = "maze"

// Scoring constants.
const (
	KeyPoints       = 10
	DistractionCost = 5

	timerClock    = core.TimerKind("clock")
	timerReminder = core.TimerKind("reminder")
)

// State is the maze engine's lifecycle state.
type State string

const (
	StateGenerating State = "generating"
	StatePlaying    State = "playing"
	StateWon        State = "won"
	StateTimedOut   State = "timed_out"
)

// MoveResult reports what a Move did.
type MoveResult int

const (
	Moved MoveResult = iota
	Blocked
	Locked
	KeyCollected
	Distracted
	Escaped
	Rejected
)

// MarshalText encodes the result by name.
func (r MoveResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r MoveResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case Locked:
		return "locked"
	case KeyCollected:
		return "key-collected"
	case Distracted:
		return "distracted"
	case Escaped:
		return "escaped"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Config is everything a maze round needs.
type Config struct {
	Params
	TimeLimit     int // seconds, 0 = untimed
	ReminderAfter int // seconds, 0 = no reminder
}

// Engine runs one maze round. It is not safe for concurrent use; the owner
// drives it from a single goroutine.
type Engine struct {
	cfg   Config
	rng   core.RNG
	sched *core.Scheduler
	clock *core.GameClock
	bus   *core.Bus

	grid            *Grid
	player          Position
	state           State
	score           int
	collected       int
	distractionsHit int
	reminderDue     bool
	last            MoveResult
}

// NewEngine generates a maze and starts the round.
func NewEngine(cfg Config, rng core.RNG) *Engine {
	cfg.Params = cfg.Params.normalized()
	e := &Engine{
		cfg:   cfg,
		rng:   rng,
		sched: core.NewScheduler(),
		clock: core.NewGameClock(cfg.TimeLimit),
		bus:   core.NewBus(),
	}
	e.begin()
	return e
}

func (e *Engine) begin() {
	e.state = StateGenerating
	e.grid = Generate(e.cfg.Params, e.rng)
	e.player = Start
	e.score = 0
	e.collected = 0
	e.distractionsHit = 0
	e.reminderDue = false
	e.last = Moved

	e.sched.Clear()
	e.sched.Resume()
	e.clock.Reset(e.cfg.TimeLimit)
	e.armClock()
	if e.cfg.ReminderAfter > 0 {
		e.sched.After(timerReminder, time.Duration(e.cfg.ReminderAfter)*time.Second, e.onReminder)
	}
	e.state = StatePlaying
}

// Events returns the engine's event bus.
func (e *Engine) Events() *core.Bus {
	return e.bus
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Player returns the player's position.
func (e *Engine) Player() Position {
	return e.player
}

// Elapsed returns whole seconds of unpaused play.
func (e *Engine) Elapsed() int {
	return e.clock.Elapsed()
}

// KeysRemaining returns how many keys are still on the grid.
func (e *Engine) KeysRemaining() int {
	return e.grid.Count(Key)
}

// Paused reports whether the clock is frozen.
func (e *Engine) Paused() bool {
	return e.sched.Paused()
}

// Terminal reports whether the round has ended.
func (e *Engine) Terminal() bool {
	return e.state == StateWon || e.state == StateTimedOut
}

// Move tries to step the player one cell in direction d.
func (e *Engine) Move(d Direction) MoveResult {
	if e.state != StatePlaying || e.sched.Paused() || !d.Valid() {
		return e.result(Rejected)
	}

	next := e.player.Step(d)
	switch e.grid.At(next) {
	case Wall:
		e.publish(core.EventBlocked, e.grid.Index(e.player))
		return e.result(Blocked)

	case Exit:
		if e.KeysRemaining() > 0 {
			e.publish(core.EventLocked, e.grid.Index(next))
			return e.result(Locked)
		}
		e.player = next
		e.state = StateWon
		e.sched.Clear()
		e.publish(core.EventWon, e.grid.Index(next))
		return e.result(Escaped)

	case Key:
		e.player = next
		e.grid.Set(next, Open)
		e.collected++
		e.score += KeyPoints
		idx := e.grid.Index(next)
		e.publish(core.EventKeyCollected, idx)
		e.publish(core.EventCellChanged, idx)
		e.publish(core.EventScoreChanged, idx)
		return e.result(KeyCollected)

	case Distraction:
		e.reshuffle(next)
		return e.result(Distracted)

	default:
		e.player = next
		e.publish(core.EventMoved, e.grid.Index(next))
		return e.result(Moved)
	}
}

// reshuffle applies the distraction penalty: back to start, keys forfeited,
// score reduced, and a fresh maze of the same shape.
func (e *Engine) reshuffle(at Position) {
	idx := e.grid.Index(at)
	e.distractionsHit++
	e.collected = 0
	e.score = max(e.score-DistractionCost, 0)
	e.grid = Generate(e.cfg.Params, e.rng)
	e.player = Start
	e.publish(core.EventDistraction, idx)
	e.publish(core.EventScoreChanged, idx)
}

// Restart generates a new maze and resets score, keys and clock.
func (e *Engine) Restart() {
	e.begin()
	e.publish(core.EventRestarted, -1)
}

// Pause freezes the clock and rejects moves until Resume.
func (e *Engine) Pause() {
	if e.Terminal() || e.sched.Paused() {
		return
	}
	e.sched.Pause()
	e.publish(core.EventPaused, -1)
}

// Resume continues a paused round.
func (e *Engine) Resume() {
	if !e.sched.Paused() {
		return
	}
	e.sched.Resume()
	e.publish(core.EventResumed, -1)
}

// Advance moves engine time forward by dt.
func (e *Engine) Advance(dt time.Duration) {
	e.sched.Advance(dt)
}

func (e *Engine) armClock() {
	e.sched.After(timerClock, time.Second, e.onSecond)
}

func (e *Engine) onSecond() {
	if e.state != StatePlaying {
		return
	}
	e.clock.Tick()
	e.publish(core.EventTick, -1)
	if e.clock.Expired() {
		e.state = StateTimedOut
		e.sched.Clear()
		e.publish(core.EventTimeout, -1)
		return
	}
	e.armClock()
}

func (e *Engine) onReminder() {
	if e.state != StatePlaying {
		return
	}
	e.reminderDue = true
	e.publish(core.EventReminderDue, -1)
}

func (e *Engine) result(r MoveResult) MoveResult {
	e.last = r
	return r
}

func (e *Engine) publish(kind core.EventKind, index int) {
	e.bus.Publish(core.Event{
		Kind:    kind,
		Game:    GameID,
		Score:   e.score,
		Elapsed: e.clock.Elapsed(),
		Index:   index,
		Count:   e.KeysRemaining(),
	})
}
