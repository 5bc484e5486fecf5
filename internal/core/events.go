package core

import "sync"

// EventKind identifies what happened inside an engine.
type EventKind string

const (
	EventStarted      EventKind = "started"
	EventTick         EventKind = "tick"
	EventMoved        EventKind = "moved"
	EventBlocked      EventKind = "blocked"
	EventLocked       EventKind = "locked"
	EventKeyCollected EventKind = "key-collected"
	EventDistraction  EventKind = "distraction"
	EventSwap         EventKind = "swap"
	EventHint         EventKind = "hint"
	EventHintCleared  EventKind = "hint-cleared"
	EventFlip         EventKind = "flip"
	EventMatch        EventKind = "match"
	EventMismatch     EventKind = "mismatch"
	EventUnflip       EventKind = "unflip"
	EventScoreChanged EventKind = "score-changed"
	EventCellChanged  EventKind = "cell-changed"
	EventReminderDue  EventKind = "reminder-due"
	EventWon          EventKind = "won"
	EventSolved       EventKind = "solved"
	EventTimeout      EventKind = "timeout"
	EventPaused       EventKind = "paused"
	EventResumed      EventKind = "resumed"
	EventRestarted    EventKind = "restarted"
)

// Terminal reports whether the event ends a round.
func (k EventKind) Terminal() bool {
	return k == EventWon || k == EventSolved || k == EventTimeout
}

// Event is an immutable notification published by an engine.
// Index carries a tile, card or cell index where one applies, -1 otherwise.
// Count is the game's progress counter: keys left in the maze, percent
// complete in the puzzle, pairs matched in memory.
type Event struct {
	Kind    EventKind `json:"kind"`
	Game    string    `json:"game"`
	Score   int       `json:"score"`
	Elapsed int       `json:"elapsed"`
	Index   int       `json:"index"`
	Count   int       `json:"count"`
	Message string    `json:"message,omitempty"`
}

type subscriber struct {
	id int
	fn func(Event)
}

// Bus fans engine events out to observers. Observers are called
// synchronously in subscription order and cannot affect engine state.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   []subscriber
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn and returns a function that removes it.
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers ev to every current subscriber.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	subs := b.subs
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(ev)
	}
}

// Len returns the number of subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
