package puzzle

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/milkyway-arcade/internal/announce"
	"github.com/vovakirdan/milkyway-arcade/internal/config"
	"github.com/vovakirdan/milkyway-arcade/internal/core"
	"github.com/vovakirdan/milkyway-arcade/internal/registry"
)

var configPath string

// SetConfigPath sets a custom levels file for new rounds.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the puzzle engine to the arcade platform. A cursor walks the
// board; Confirm picks a tile up and a second Confirm drops it, swapping.
type Game struct {
	level   config.Difficulty
	engine  *Engine
	frames  *core.FrameStepper
	cursor  int
	message string
	unsub   func()
}

// New creates a puzzle game at the default difficulty.
func New() *Game {
	return &Game{level: config.DefaultDifficulty}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Galaxy Puzzle" }

// SetLevel selects the difficulty used by the next Reset.
func (g *Game) SetLevel(d config.Difficulty) { g.level = d }

// Level returns the selected difficulty.
func (g *Game) Level() config.Difficulty { return g.level }

// Reset shuffles a new board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	levels, err := config.LoadLevels(configPath)
	if err != nil {
		levels = config.DefaultLevels()
	}

	if g.unsub != nil {
		g.unsub()
	}
	g.engine = NewEngine(ConfigFor(levels.ForPuzzle(g.level)), core.NewRNG(cfg.Seed))
	g.frames = core.NewFrameStepper(cfg.TickRate)
	g.cursor = 0
	g.message = "Swap tiles to rebuild the picture."
	if err != nil {
		g.message = "Level file unusable, playing built-in levels."
	}
	g.unsub = g.engine.Events().Subscribe(func(ev core.Event) {
		if text := announce.Default().Text(ev); text != "" {
			g.message = text
		}
	})
}

// Step applies input then advances the engine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		if g.engine.Paused() {
			g.engine.Resume()
		} else {
			g.engine.Pause()
		}
	}
	if in.Has(core.ActionRestart) {
		g.engine.Restart()
		g.cursor = 0
	}
	if a, ok := in.Direction(); ok && !g.engine.Paused() {
		g.moveCursor(a)
	}
	if in.Has(core.ActionConfirm) {
		g.confirm()
	}
	g.engine.Advance(g.frames.Next())
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(a core.Action) {
	n := g.engine.Size()
	row, col := g.cursor/n, g.cursor%n
	switch a {
	case core.ActionUp:
		row = core.Wrap(row-1, n)
	case core.ActionDown:
		row = core.Wrap(row+1, n)
	case core.ActionLeft:
		col = core.Wrap(col-1, n)
	case core.ActionRight:
		col = core.Wrap(col+1, n)
	}
	g.cursor = row*n + col
}

func (g *Game) confirm() {
	var err error
	if sel := g.engine.Selected(); sel < 0 {
		err = g.engine.Select(g.cursor)
	} else {
		err = g.engine.Swap(sel, g.cursor)
	}
	if errors.Is(err, ErrInvalidSwap) && !g.engine.Terminal() && !g.engine.Paused() {
		g.message = err.Error()
	}
}

// State returns the platform view of the round.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.engine.Progress(),
		GameOver: g.engine.Terminal(),
		Paused:   g.engine.Paused(),
		Elapsed:  g.engine.Elapsed(),
	}
	switch g.engine.State() {
	case StateSolved:
		st.Outcome = core.OutcomeWon
	case StateTimedOut:
		st.Outcome = core.OutcomeTimedOut
	}
	return st
}

// Events exposes the engine event bus.
func (g *Game) Events() *core.Bus { return g.engine.Events() }

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() any { return g.engine.Snapshot() }

// Engine returns the underlying engine.
func (g *Game) Engine() *Engine { return g.engine }

// Cursor returns the board index under the cursor.
func (g *Game) Cursor() int { return g.cursor }

const tileW, tileH = 6, 3

// Render draws the board as numbered tiles; tile k belongs at index k.
func (g *Game) Render(dst *core.Screen) {
	snap := g.engine.Snapshot()

	hud := fmt.Sprintf("GALAXY PUZZLE  %s   Progress: %d%%   Moves: %d   Time: %ds",
		g.level.Title(), snap.Progress, snap.Moves, snap.Elapsed)
	if snap.Remaining > 0 {
		hud += fmt.Sprintf("   Left: %ds", snap.Remaining)
	}
	dst.DrawTextCenteredColor(0, hud, core.ColorHUD)

	n := snap.Size
	area := core.NewRect(0, 2, dst.Width(), dst.Height()-5).Centered(n*tileW, n*tileH)
	for i, tile := range snap.Tiles {
		r := core.NewRect(area.X+(i%n)*tileW, area.Y+(i/n)*tileH, tileW, tileH)

		color := core.ColorWall
		switch {
		case tile == i:
			color = core.ColorSuccess
		case i == snap.Hint:
			color = core.ColorHint
		}
		if i == snap.Selected {
			color = core.ColorKey
		}
		if i == g.cursor && !snap.Paused {
			color = core.ColorPlayer
		}

		dst.DrawBox(r, color)
		label := strconv.Itoa(tile + 1)
		dst.DrawTextColor(r.X+(tileW-len(label))/2, r.Y+1, label, color)
	}

	dst.DrawTextCenteredColor(dst.Height()-2, g.message, core.ColorHUD)
	dst.DrawTextCenteredColor(dst.Height()-1, "Arrows move  Enter pick/drop  P pause  R reshuffle  Esc menu", core.ColorMuted)

	switch {
	case snap.State == StateSolved:
		dst.DrawTextCenteredColor(area.Bottom(), " BLAST OFF! ", core.ColorSuccess)
	case snap.State == StateTimedOut:
		dst.DrawTextCenteredColor(area.Bottom(), " OUT OF TIME ", core.ColorHazard)
	case snap.Paused:
		dst.DrawTextCenteredColor(area.Bottom(), " PAUSED ", core.ColorBrightYellow)
	}
}
