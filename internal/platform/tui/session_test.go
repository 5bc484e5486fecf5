package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/milkyway-arcade/internal/config"
	"github.com/vovakirdan/milkyway-arcade/internal/registry"

	_ "github.com/vovakirdan/milkyway-arcade/internal/games/maze"
	_ "github.com/vovakirdan/milkyway-arcade/internal/games/memory"
	_ "github.com/vovakirdan/milkyway-arcade/internal/games/puzzle"
)

func sessionPress(t *testing.T, m SessionModel, msg tea.KeyMsg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestSessionMenuLevelGameFlow(t *testing.T) {
	m := NewSessionModel(testConfig(), config.DefaultLevels(), "alice", Options{})

	// Games are listed by ID: maze first.
	m, _ = sessionPress(t, m, enterKey)
	if m.screen != screenLevels {
		t.Fatalf("screen = %v, expected level selector", m.screen)
	}
	if !strings.Contains(m.View(), "5x5 maze") {
		t.Errorf("level view should describe the easy maze:\n%s", m.View())
	}

	m, _ = sessionPress(t, m, downKey)
	m, cmd := sessionPress(t, m, enterKey)
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}
	if lv, ok := m.gameModel.game.(registry.Leveled); !ok || lv.Level() != config.Medium {
		t.Error("selected level was not applied to the game")
	}
	if m.gameModel.opts.WatchID != "alice/maze" {
		t.Errorf("WatchID = %q", m.gameModel.opts.WatchID)
	}

	// Esc pauses on the next tick, the second Esc leaves.
	m, _ = sessionPress(t, m, escKey)
	next, _ := m.Update(TickMsg{Gen: m.gameModel.gen})
	m = next.(SessionModel)
	m, cmd = sessionPress(t, m, escKey)
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after leaving the game", m.screen)
	}
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Error("leaving a game must not end the session")
		}
	}
}

func TestSessionLevelBack(t *testing.T) {
	m := NewSessionModel(testConfig(), config.DefaultLevels(), "bob", Options{})

	m, _ = sessionPress(t, m, downKey)
	m, _ = sessionPress(t, m, enterKey)
	if m.screen != screenLevels {
		t.Fatalf("screen = %v, expected level selector", m.screen)
	}
	m, _ = sessionPress(t, m, escKey)
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(testConfig(), config.DefaultLevels(), "carol", Options{})

	m, _ = sessionPress(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scoreboard", m.screen)
	}
	m, _ = sessionPress(t, m, escKey)
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testConfig(), config.DefaultLevels(), "dave", Options{})

	m, cmd := sessionPress(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestLevelSummary(t *testing.T) {
	levels := config.DefaultLevels()

	tests := []struct {
		game string
		d    config.Difficulty
		want string
	}{
		{"maze", config.Easy, "5x5 maze, 3 keys, 2 distractions"},
		{"puzzle", config.Hard, "4x4 tiles"},
		{"memory", config.Medium, "6 pairs, 60s limit"},
		{"unknown", config.Easy, ""},
	}
	for _, tt := range tests {
		if got := LevelSummary(tt.game, levels, tt.d); got != tt.want {
			t.Errorf("LevelSummary(%s, %s) = %q, expected %q", tt.game, tt.d, got, tt.want)
		}
	}
}
