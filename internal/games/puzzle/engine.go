package puzzle

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/milkyway-arcade/internal/core"
)

// GameID identifies the puzzle in events and storage.
const GameID = "puzzle"

// ErrInvalidSwap is returned for swaps the board cannot take.
var ErrInvalidSwap = errors.New("puzzle: invalid swap")

const (
	timerClock = core.TimerKind("clock")
	timerIdle  = core.TimerKind("idle")
)

// State is the puzzle's lifecycle state.
type State string

const (
	StateShuffled State = "shuffled"
	StatePlaying  State = "playing"
	StateSolved   State = "solved"
	StateTimedOut State = "timed_out"
)

// Config is everything a puzzle round needs.
type Config struct {
	Size      int // board edge, at least 2
	TimeLimit int // seconds, 0 = untimed
	HintAfter int // idle seconds before a hint, 0 = never
}

// Engine runs one puzzle round. Not safe for concurrent use.
type Engine struct {
	cfg   Config
	rng   core.RNG
	sched *core.Scheduler
	clock *core.GameClock
	bus   *core.Bus

	tiles    Permutation
	state    State
	hint     int
	selected int
	moves    int
}

// NewEngine shuffles a new board and starts the clock.
func NewEngine(cfg Config, rng core.RNG) *Engine {
	cfg.Size = max(cfg.Size, 2)
	e := &Engine{
		cfg:   cfg,
		rng:   rng,
		sched: core.NewScheduler(),
		clock: core.NewGameClock(cfg.TimeLimit),
		bus:   core.NewBus(),
	}
	e.begin(Shuffle(cfg.Size, rng))
	return e
}

// NewEngineWith starts a round from a given arrangement.
func NewEngineWith(cfg Config, tiles Permutation, rng core.RNG) (*Engine, error) {
	if !tiles.Valid() || len(tiles) < 4 {
		return nil, fmt.Errorf("puzzle: %v is not a board permutation", tiles)
	}
	side := 2
	for side*side < len(tiles) {
		side++
	}
	if side*side != len(tiles) {
		return nil, fmt.Errorf("puzzle: %d tiles do not form a square board", len(tiles))
	}
	cfg.Size = side
	e := &Engine{
		cfg:   cfg,
		rng:   rng,
		sched: core.NewScheduler(),
		clock: core.NewGameClock(cfg.TimeLimit),
		bus:   core.NewBus(),
	}
	e.begin(tiles.Clone())
	return e, nil
}

func (e *Engine) begin(tiles Permutation) {
	e.tiles = tiles
	e.state = StateShuffled
	e.hint = -1
	e.selected = -1
	e.moves = 0

	e.sched.Clear()
	e.sched.Resume()
	e.clock.Reset(e.cfg.TimeLimit)
	e.armClock()
	e.armIdle()
	e.checkSolved()
}

// Events returns the engine's event bus.
func (e *Engine) Events() *core.Bus { return e.bus }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Size returns the board edge length.
func (e *Engine) Size() int { return e.cfg.Size }

// Progress returns the rounded percentage of tiles in place.
func (e *Engine) Progress() int { return e.tiles.Progress() }

// Hint returns the highlighted index, or -1.
func (e *Engine) Hint() int { return e.hint }

// Selected returns the picked-up index, or -1.
func (e *Engine) Selected() int { return e.selected }

// Elapsed returns whole seconds of unpaused play.
func (e *Engine) Elapsed() int { return e.clock.Elapsed() }

// Paused reports whether the clock is frozen.
func (e *Engine) Paused() bool { return e.sched.Paused() }

// Terminal reports whether the round has ended.
func (e *Engine) Terminal() bool {
	return e.state == StateSolved || e.state == StateTimedOut
}

func (e *Engine) accepting() error {
	switch {
	case e.state == StateSolved:
		return fmt.Errorf("%w: board already solved", ErrInvalidSwap)
	case e.state == StateTimedOut:
		return fmt.Errorf("%w: time is up", ErrInvalidSwap)
	case e.sched.Paused():
		return fmt.Errorf("%w: game paused", ErrInvalidSwap)
	}
	return nil
}

func (e *Engine) inRange(i int) bool {
	return i >= 0 && i < len(e.tiles)
}

// Select marks index i as picked up, the start of a drag. It counts as
// activity for the idle hint.
func (e *Engine) Select(i int) error {
	if err := e.accepting(); err != nil {
		return err
	}
	if !e.inRange(i) {
		return fmt.Errorf("%w: index %d out of range", ErrInvalidSwap, i)
	}
	e.selected = i
	e.touch()
	return nil
}

// Swap exchanges the tiles at a and b. Swapping an index with itself is a
// valid no-op move.
func (e *Engine) Swap(a, b int) error {
	if err := e.accepting(); err != nil {
		return err
	}
	if !e.inRange(a) || !e.inRange(b) {
		return fmt.Errorf("%w: indices %d, %d out of range", ErrInvalidSwap, a, b)
	}

	e.tiles[a], e.tiles[b] = e.tiles[b], e.tiles[a]
	e.moves++
	e.selected = -1
	if e.state == StateShuffled {
		e.state = StatePlaying
	}
	e.touch()
	e.publish(core.EventSwap, b)
	e.checkSolved()
	return nil
}

// touch records player activity: the hint clears and the idle timer restarts.
func (e *Engine) touch() {
	if e.hint >= 0 {
		e.hint = -1
		e.publish(core.EventHintCleared, -1)
	}
	e.armIdle()
}

func (e *Engine) checkSolved() {
	if e.state == StateSolved || !e.tiles.Solved() {
		return
	}
	e.state = StateSolved
	e.hint = -1
	e.sched.Clear()
	e.publish(core.EventSolved, -1)
}

// Restart reshuffles the board and resets the clock.
func (e *Engine) Restart() {
	e.begin(Shuffle(e.cfg.Size, e.rng))
	e.publish(core.EventRestarted, -1)
}

// Pause freezes the clock and the idle timer.
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

func (e *Engine) armIdle() {
	if e.cfg.HintAfter <= 0 || e.Terminal() {
		return
	}
	e.sched.After(timerIdle, time.Duration(e.cfg.HintAfter)*time.Second, e.onIdle)
}

func (e *Engine) onSecond() {
	if e.Terminal() {
		return
	}
	e.clock.Tick()
	e.publish(core.EventTick, -1)
	if e.clock.Expired() {
		e.state = StateTimedOut
		e.hint = -1
		e.sched.Clear()
		e.publish(core.EventTimeout, -1)
		return
	}
	e.armClock()
}

func (e *Engine) onIdle() {
	if e.Terminal() {
		return
	}
	if idx := e.tiles.FirstMisplaced(); idx >= 0 {
		e.hint = idx
		e.publish(core.EventHint, idx)
	}
}

func (e *Engine) publish(kind core.EventKind, index int) {
	e.bus.Publish(core.Event{
		Kind:    kind,
		Game:    GameID,
		Score:   e.tiles.Progress(),
		Elapsed: e.clock.Elapsed(),
		Index:   index,
		Count:   e.tiles.Progress(),
	})
}
