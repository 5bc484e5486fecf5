package announce

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/milkyway-arcade/internal/core"
)

func TestCatalogText(t *testing.T) {
	cat := Default()

	tests := []struct {
		name string
		ev   core.Event
		want string
	}{
		{"blocked", core.Event{Kind: core.EventBlocked}, "Bumped into a wall!"},
		{"locked", core.Event{Kind: core.EventLocked}, "The exit is locked. Collect all keys first!"},
		{"key with more left", core.Event{Kind: core.EventKeyCollected, Count: 2}, "Key collected! 2 left."},
		{"last key", core.Event{Kind: core.EventKeyCollected, Count: 0}, "All keys collected. The exit is open!"},
		{"maze won", core.Event{Kind: core.EventWon, Game: "maze", Elapsed: 42}, "You escaped the maze in 42 seconds!"},
		{"memory won", core.Event{Kind: core.EventWon, Game: "memory", Score: 38}, "All pairs found! Final score 38."},
		{"puzzle progress", core.Event{Kind: core.EventSwap, Count: 75}, "Puzzle 75% complete."},
		{"hint is one-based", core.Event{Kind: core.EventHint, Index: 0}, "Hint: tile 1 is out of place."},
		{"restart uses the kind as id", core.Event{Kind: core.EventRestarted}, "New round."},
		{"reminder uses the kind as id", core.Event{Kind: core.EventReminderDue}, "You have been playing a while. Remember to rest your eyes."},
		{"timeout uses the kind as id", core.Event{Kind: core.EventTimeout}, "Time's up!"},
		{"tick is silent", core.Event{Kind: core.EventTick}, ""},
		{"score update is silent", core.Event{Kind: core.EventScoreChanged}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cat.Text(tt.ev); got != tt.want {
				t.Errorf("Text() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestCatalogCustomPO(t *testing.T) {
	po := []byte(`msgid ""
msgstr ""
"Language: fr\n"

msgid "blocked"
msgstr "Un mur !"

msgid "key-collected"
msgstr "Clé trouvée ! Encore %d."
`)
	cat := NewCatalog(po)

	if got := cat.Text(core.Event{Kind: core.EventBlocked}); got != "Un mur !" {
		t.Errorf("Text() = %q", got)
	}
	if got := cat.Text(core.Event{Kind: core.EventKeyCollected, Count: 3}); got != "Clé trouvée ! Encore 3." {
		t.Errorf("formatted Text() = %q", got)
	}
	// Missing translations fall back to the message id.
	if got := cat.Text(core.Event{Kind: core.EventPaused}); got != "paused" {
		t.Errorf("untranslated Text() = %q, expected the msgid", got)
	}
}

func TestAnnouncerLogsTerminalEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	bus := core.NewBus()

	unsub := New(logger, nil).Attach(bus)

	bus.Publish(core.Event{Kind: core.EventMoved, Game: "maze"})
	bus.Publish(core.Event{Kind: core.EventBlocked, Game: "maze"})
	if buf.Len() != 0 {
		t.Errorf("non-terminal events should log at debug only, got %q", buf.String())
	}

	bus.Publish(core.Event{Kind: core.EventSolved, Game: "puzzle", Elapsed: 12})
	if !strings.Contains(buf.String(), "Blast off! Puzzle solved in 12 seconds.") {
		t.Errorf("solved event not logged: %q", buf.String())
	}

	unsub()
	buf.Reset()
	bus.Publish(core.Event{Kind: core.EventTimeout, Game: "memory"})
	if buf.Len() != 0 {
		t.Error("announcer should be detached")
	}
}
