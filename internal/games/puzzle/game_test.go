package puzzle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/milkyway-arcade/internal/config"
	"github.com/vovakirdan/milkyway-arcade/internal/core"
	"github.com/vovakirdan/milkyway-arcade/internal/registry"
)

func newTestGame(t *testing.T, level config.Difficulty) *Game {
	t.Helper()
	g := New()
	g.SetLevel(level)
	cfg := core.DefaultConfig()
	cfg.Seed = 99
	g.Reset(cfg)
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("puzzle should self-register")
	}
}

func TestGameBoardSizeFollowsLevel(t *testing.T) {
	for level, size := range map[config.Difficulty]int{config.Easy: 2, config.Medium: 3, config.Hard: 4} {
		g := newTestGame(t, level)
		if g.Engine().Size() != size {
			t.Errorf("%s board size = %d, expected %d", level, g.Engine().Size(), size)
		}
	}
}

func TestGameCursorWraps(t *testing.T) {
	g := newTestGame(t, config.Medium)

	g.Step(core.NewInputFrame(core.ActionLeft))
	if g.Cursor() != 2 {
		t.Errorf("cursor = %d after wrapping left, expected 2", g.Cursor())
	}
	g.Step(core.NewInputFrame(core.ActionUp))
	if g.Cursor() != 8 {
		t.Errorf("cursor = %d after wrapping up, expected 8", g.Cursor())
	}
}

func TestGamePickAndDropSwaps(t *testing.T) {
	g := newTestGame(t, config.Hard)
	before := g.Engine().Snapshot().Tiles

	g.Step(core.NewInputFrame(core.ActionConfirm))
	if g.Engine().Selected() != 0 {
		t.Fatalf("Selected() = %d, expected 0", g.Engine().Selected())
	}
	g.Step(core.NewInputFrame(core.ActionRight))
	g.Step(core.NewInputFrame(core.ActionConfirm))

	after := g.Engine().Snapshot()
	if after.Tiles[0] != before[1] || after.Tiles[1] != before[0] {
		t.Errorf("tiles %v -> %v, expected 0 and 1 swapped", before, after.Tiles)
	}
	if after.Selected != -1 || after.Moves != 1 {
		t.Errorf("selected=%d moves=%d", after.Selected, after.Moves)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, config.Medium)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"GALAXY PUZZLE", "Medium", "Progress:"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestGameFallsBackOnBadLevelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	if err := os.WriteFile(path, []byte("puzzle: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := newTestGame(t, config.Easy)

	snap := g.Snapshot().(Snapshot)
	if snap.Size != 2 {
		t.Errorf("size = %d, expected the built-in easy board", snap.Size)
	}
	if !strings.Contains(g.message, "built-in levels") {
		t.Errorf("message = %q, expected a fallback notice", g.message)
	}
}
