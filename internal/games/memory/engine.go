package memory

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/milkyway-arcade/internal/core"
)

// GameID identifies the memory game in events and storage.
const GameID = "memory"

// ErrInvalidFlip is returned for flips the table cannot take.
var ErrInvalidFlip = errors.New("memory: invalid flip")

// Scoring.
const (
	MatchPoints     = 10
	MismatchPenalty = 2
)

// DefaultMismatchDelay is how long a mismatched pair stays face up.
const DefaultMismatchDelay = time.Second

const (
	timerClock  = core.TimerKind("clock")
	timerUnflip = core.TimerKind("unflip")
)

// State is the memory game's lifecycle state.
type State string

const (
	StateDealt    State = "dealt"
	StatePlaying  State = "playing"
	StateWon      State = "won"
	StateTimedOut State = "timed_out"
)

// Config is everything a memory round needs.
type Config struct {
	Symbols       []string
	TimeLimit     int // countdown seconds, 0 = untimed
	MismatchDelay time.Duration
}

// Engine runs one memory round. Not safe for concurrent use.
type Engine struct {
	cfg   Config
	rng   core.RNG
	sched *core.Scheduler
	clock *core.GameClock
	bus   *core.Bus

	deck    Deck
	state   State
	first   int
	score   int
	matched int
}

// NewEngine deals a face-down deck. The countdown starts with Start or the
// first flip.
func NewEngine(cfg Config, rng core.RNG) *Engine {
	if cfg.MismatchDelay <= 0 {
		cfg.MismatchDelay = DefaultMismatchDelay
	}
	e := &Engine{
		cfg:   cfg,
		rng:   rng,
		sched: core.NewScheduler(),
		clock: core.NewGameClock(cfg.TimeLimit),
		bus:   core.NewBus(),
	}
	e.deal()
	return e
}

func (e *Engine) deal() {
	e.deck = Deal(e.cfg.Symbols, e.rng)
	e.state = StateDealt
	e.first = -1
	e.score = 0
	e.matched = 0
	e.sched.Clear()
	e.sched.Resume()
	e.clock.Reset(e.cfg.TimeLimit)
}

// Events returns the engine's event bus.
func (e *Engine) Events() *core.Bus { return e.bus }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Deck returns a copy of the cards.
func (e *Engine) Deck() Deck { return e.deck.Clone() }

// Elapsed returns whole seconds of unpaused play.
func (e *Engine) Elapsed() int { return e.clock.Elapsed() }

// Remaining returns countdown seconds left.
func (e *Engine) Remaining() int { return e.clock.Remaining() }

// Paused reports whether the clock is frozen.
func (e *Engine) Paused() bool { return e.sched.Paused() }

// Terminal reports whether the round has ended.
func (e *Engine) Terminal() bool {
	return e.state == StateWon || e.state == StateTimedOut
}

// PairPending reports whether two unmatched cards are face up, either being
// resolved or waiting to flip back.
func (e *Engine) PairPending() bool {
	return e.sched.Pending(timerUnflip) || e.deck.FaceUp() >= 2
}

// Start begins the countdown. It returns false unless the deck is freshly
// dealt.
func (e *Engine) Start() bool {
	if e.state != StateDealt {
		return false
	}
	e.state = StatePlaying
	e.armClock()
	e.publish(core.EventStarted, -1)
	return true
}

// Flip turns card id face up. The second card of a pair is resolved at once.
func (e *Engine) Flip(id int) error {
	switch {
	case e.Terminal():
		return fmt.Errorf("%w: game over", ErrInvalidFlip)
	case e.sched.Paused():
		return fmt.Errorf("%w: game paused", ErrInvalidFlip)
	case id < 0 || id >= len(e.deck):
		return fmt.Errorf("%w: no card %d", ErrInvalidFlip, id)
	case e.deck[id].Matched:
		return fmt.Errorf("%w: card %d already matched", ErrInvalidFlip, id)
	case e.deck[id].Flipped:
		return fmt.Errorf("%w: card %d already face up", ErrInvalidFlip, id)
	case e.PairPending():
		return fmt.Errorf("%w: a pair is still face up", ErrInvalidFlip)
	}

	if e.state == StateDealt {
		e.Start()
	}

	e.deck[id].Flipped = true
	e.publish(core.EventFlip, id)

	if e.first < 0 {
		e.first = id
		return nil
	}
	e.resolvePair(e.first, id)
	return nil
}

// resolvePair scores the two face-up cards a and b.
func (e *Engine) resolvePair(a, b int) {
	e.first = -1

	if e.deck[a].Symbol == e.deck[b].Symbol {
		e.deck[a].Matched = true
		e.deck[b].Matched = true
		e.matched++
		e.score += MatchPoints
		e.publish(core.EventMatch, b)
		e.publish(core.EventScoreChanged, b)

		if e.matched == e.deck.Pairs() {
			e.state = StateWon
			e.sched.Clear()
			e.publish(core.EventWon, -1)
		}
		return
	}

	e.score = max(e.score-MismatchPenalty, 0)
	e.publish(core.EventMismatch, b)
	e.publish(core.EventScoreChanged, b)
	e.sched.After(timerUnflip, e.cfg.MismatchDelay, func() {
		for _, id := range [...]int{a, b} {
			if !e.deck[id].Matched {
				e.deck[id].Flipped = false
				e.publish(core.EventUnflip, id)
			}
		}
	})
}

// Restart deals a new deck and waits for Start.
func (e *Engine) Restart() {
	e.deal()
	e.publish(core.EventRestarted, -1)
}

// Pause freezes the countdown and any pending flip-back.
func (e *Engine) Pause() {
	if e.state != StatePlaying || e.sched.Paused() {
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
		e.first = -1
		e.sched.Clear()
		e.publish(core.EventTimeout, -1)
		return
	}
	e.armClock()
}

func (e *Engine) publish(kind core.EventKind, index int) {
	e.bus.Publish(core.Event{
		Kind:    kind,
		Game:    GameID,
		Score:   e.score,
		Elapsed: e.clock.Elapsed(),
		Index:   index,
		Count:   e.matched,
	})
}
