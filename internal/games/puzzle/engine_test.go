package puzzle

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/milkyway-arcade/internal/core"
)

func newBoard(t *testing.T, cfg Config, tiles ...int) (*Engine, *[]core.Event) {
	t.Helper()
	e, err := NewEngineWith(cfg, Permutation(tiles), core.NewRNG(1))
	if err != nil {
		t.Fatalf("NewEngineWith() failed: %v", err)
	}
	var events []core.Event
	e.Events().Subscribe(func(ev core.Event) {
		if ev.Kind != core.EventTick {
			events = append(events, ev)
		}
	})
	return e, &events
}

func countKind(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

var defaultCfg = Config{Size: 2, HintAfter: 5}

func TestSwapSolvesBoard(t *testing.T) {
	e, events := newBoard(t, defaultCfg, 1, 0, 2, 3)

	if e.State() != StateShuffled || e.Progress() != 50 {
		t.Fatalf("state=%s progress=%d", e.State(), e.Progress())
	}

	if err := e.Swap(0, 1); err != nil {
		t.Fatalf("Swap(0, 1) failed: %v", err)
	}

	if e.State() != StateSolved {
		t.Errorf("State() = %s, expected solved", e.State())
	}
	if e.Progress() != 100 {
		t.Errorf("Progress() = %d, expected 100", e.Progress())
	}
	if n := countKind(*events, core.EventSolved); n != 1 {
		t.Errorf("solved events = %d, expected exactly 1", n)
	}

	// Solved boards are frozen.
	err := e.Swap(2, 3)
	if !errors.Is(err, ErrInvalidSwap) {
		t.Errorf("Swap after solve error = %v, expected ErrInvalidSwap", err)
	}
	if countKind(*events, core.EventSolved) != 1 {
		t.Error("solved must fire only once")
	}
}

func TestSwapRejectsBadInput(t *testing.T) {
	e, _ := newBoard(t, defaultCfg, 3, 2, 1, 0)

	for _, pair := range [][2]int{{-1, 0}, {0, 4}, {9, 9}} {
		if err := e.Swap(pair[0], pair[1]); !errors.Is(err, ErrInvalidSwap) {
			t.Errorf("Swap(%d, %d) error = %v, expected ErrInvalidSwap", pair[0], pair[1], err)
		}
	}

	e.Pause()
	if err := e.Swap(0, 3); !errors.Is(err, ErrInvalidSwap) {
		t.Errorf("Swap while paused error = %v", err)
	}
	if err := e.Select(0); !errors.Is(err, ErrInvalidSwap) {
		t.Errorf("Select while paused error = %v", err)
	}
}

func TestSwapSameIndexIsNoop(t *testing.T) {
	e, _ := newBoard(t, defaultCfg, 3, 2, 1, 0)
	before := e.Snapshot().Tiles

	if err := e.Swap(2, 2); err != nil {
		t.Fatalf("Swap(2, 2) failed: %v", err)
	}
	after := e.Snapshot()
	for i := range before {
		if before[i] != after.Tiles[i] {
			t.Fatal("self-swap changed the board")
		}
	}
	if after.State != StatePlaying || after.Moves != 1 {
		t.Errorf("state=%s moves=%d", after.State, after.Moves)
	}
}

func TestIdleHintAppearsAndClears(t *testing.T) {
	e, events := newBoard(t, defaultCfg, 0, 2, 1, 3)

	e.Advance(4 * time.Second)
	if e.Hint() != -1 {
		t.Fatal("hint shown too early")
	}
	e.Advance(time.Second)
	if e.Hint() != 1 {
		t.Fatalf("Hint() = %d, expected 1", e.Hint())
	}
	if countKind(*events, core.EventHint) != 1 {
		t.Error("hint event not published")
	}

	e.Swap(0, 3)
	if e.Hint() != -1 {
		t.Error("swap should clear the hint")
	}
	if countKind(*events, core.EventHintCleared) != 1 {
		t.Error("hint-cleared event not published")
	}

	// The idle timer restarted on the swap.
	e.Advance(4 * time.Second)
	if e.Hint() != -1 {
		t.Error("hint reappeared before the idle threshold")
	}
	e.Advance(time.Second)
	if e.Hint() != 0 {
		t.Errorf("Hint() = %d, expected first misplaced index 0", e.Hint())
	}
}

func TestSelectResetsIdle(t *testing.T) {
	e, _ := newBoard(t, defaultCfg, 0, 2, 1, 3)

	e.Advance(4 * time.Second)
	if err := e.Select(1); err != nil {
		t.Fatal(err)
	}
	e.Advance(4 * time.Second)
	if e.Hint() != -1 {
		t.Error("select should restart the idle timer")
	}
	e.Advance(time.Second)
	if e.Hint() != 1 {
		t.Errorf("Hint() = %d, expected 1", e.Hint())
	}
}

func TestTimeout(t *testing.T) {
	e, events := newBoard(t, Config{Size: 2, TimeLimit: 2}, 1, 0, 2, 3)

	e.Advance(time.Second)
	if e.Terminal() {
		t.Fatal("timed out early")
	}
	e.Advance(5 * time.Second)
	if e.State() != StateTimedOut {
		t.Fatalf("State() = %s, expected timed_out", e.State())
	}
	if countKind(*events, core.EventTimeout) != 1 {
		t.Error("timeout must fire exactly once")
	}
	if err := e.Swap(0, 1); !errors.Is(err, ErrInvalidSwap) {
		t.Errorf("Swap after timeout error = %v", err)
	}
	if e.Snapshot().Remaining != 0 {
		t.Error("remaining should be 0 after timeout")
	}
}

func TestPauseFreezesClock(t *testing.T) {
	e, _ := newBoard(t, defaultCfg, 0, 2, 1, 3)

	e.Advance(2 * time.Second)
	e.Pause()
	e.Advance(30 * time.Second)
	if e.Elapsed() != 2 || e.Hint() != -1 {
		t.Errorf("paused engine advanced: elapsed=%d hint=%d", e.Elapsed(), e.Hint())
	}
	e.Resume()
	e.Advance(3 * time.Second)
	if e.Elapsed() != 5 || e.Hint() != 1 {
		t.Errorf("after resume: elapsed=%d hint=%d", e.Elapsed(), e.Hint())
	}
}

func TestRestartReshuffles(t *testing.T) {
	e, events := newBoard(t, Config{Size: 3, HintAfter: 5}, 1, 0, 2, 3, 4, 5, 6, 7, 8)
	e.Swap(0, 1)
	if e.State() != StateSolved {
		t.Fatal("setup: board should be solved")
	}

	e.Restart()

	snap := e.Snapshot()
	if len(snap.Tiles) != 9 || !Permutation(snap.Tiles).Valid() {
		t.Errorf("restart produced %v", snap.Tiles)
	}
	if snap.Elapsed != 0 || snap.Hint != -1 || snap.Moves != 0 {
		t.Errorf("restart left state behind: %+v", snap)
	}
	if countKind(*events, core.EventRestarted) != 1 {
		t.Error("restarted event missing")
	}
}

func TestNewEngineWithRejectsBadBoards(t *testing.T) {
	for _, tiles := range []Permutation{{0, 1, 2}, {0, 0, 1, 2}, {0}} {
		if _, err := NewEngineWith(defaultCfg, tiles, core.NewRNG(1)); err == nil {
			t.Errorf("NewEngineWith(%v) should fail", tiles)
		}
	}
}

func TestNewEngineSizes(t *testing.T) {
	for size := 2; size <= 4; size++ {
		e := NewEngine(Config{Size: size, HintAfter: 5}, core.NewRNG(int64(size)))
		if got := len(e.Snapshot().Tiles); got != size*size {
			t.Errorf("size %d board has %d tiles", size, got)
		}
	}
}
