package maze

import (
	"fmt"

	"github.com/vovakirdan/milkyway-arcade/internal/announce"
	"github.com/vovakirdan/milkyway-arcade/internal/config"
	"github.com/vovakirdan/milkyway-arcade/internal/core"
	"github.com/vovakirdan/milkyway-arcade/internal/registry"
)

// Package-level variables for config
var configPath string

// SetConfigPath sets a custom levels file for new rounds.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the maze engine to the arcade platform.
type Game struct {
	level   config.Difficulty
	engine  *Engine
	frames  *core.FrameStepper
	message string
	unsub   func()
}

// New creates a maze game at the default difficulty.
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
func (g *Game) Title() string { return "Space Maze" }

// SetLevel selects the difficulty used by the next Reset.
func (g *Game) SetLevel(d config.Difficulty) { g.level = d }

// Level returns the selected difficulty.
func (g *Game) Level() config.Difficulty { return g.level }

// Reset generates a new maze for the selected difficulty.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	levels, err := config.LoadLevels(configPath)
	if err != nil {
		levels = config.DefaultLevels()
	}

	if g.unsub != nil {
		g.unsub()
	}
	g.engine = NewEngine(ConfigFor(levels.ForMaze(g.level)), core.NewRNG(cfg.Seed))
	g.frames = core.NewFrameStepper(cfg.TickRate)
	g.message = announce.Default().Text(core.Event{Kind: core.EventStarted})
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
	}
	if a, ok := in.Direction(); ok {
		g.engine.Move(directionFor(a))
	}
	g.engine.Advance(g.frames.Next())
	return core.StepResult{State: g.State()}
}

func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return Up
	case core.ActionDown:
		return Down
	case core.ActionLeft:
		return Left
	case core.ActionRight:
		return Right
	default:
		return Direction(-1)
	}
}

// State returns the platform view of the round.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Terminal(),
		Paused:   g.engine.Paused(),
		Elapsed:  g.engine.Elapsed(),
	}
	switch g.engine.State() {
	case StateWon:
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

// Render draws the maze, two screen columns per cell.
func (g *Game) Render(dst *core.Screen) {
	snap := g.engine.Snapshot()

	hud := fmt.Sprintf("SPACE MAZE  %s   Score: %d   Keys: %d/%d   Time: %ds",
		g.level.Title(), snap.Score, snap.KeysCollected, snap.KeysCollected+snap.KeysRemaining, snap.Elapsed)
	if snap.Remaining > 0 {
		hud += fmt.Sprintf("   Left: %ds", snap.Remaining)
	}
	dst.DrawTextCenteredColor(0, hud, core.ColorHUD)

	area := core.NewRect(0, 2, dst.Width(), dst.Height()-5).Centered(snap.Cols*2, snap.Rows)
	for r, row := range snap.Grid {
		for c, cell := range row {
			x, y := area.X+c*2, area.Y+r
			glyph, color := cellGlyph(cell, snap.ExitUnlocked)
			if (Position{Row: r, Col: c}) == snap.Player {
				glyph, color = "@ ", core.ColorPlayer
			}
			dst.DrawTextColor(x, y, glyph, color)
		}
	}

	status := fmt.Sprintf("Distractions hit: %d   Exit: %s", snap.DistractionsHit, lockLabel(snap.ExitUnlocked))
	dst.DrawTextCenteredColor(dst.Height()-3, status, core.ColorMuted)
	dst.DrawTextCenteredColor(dst.Height()-2, g.message, core.ColorHUD)
	dst.DrawTextCenteredColor(dst.Height()-1, "Arrows/WASD move  P pause  R new maze  Esc menu", core.ColorMuted)

	switch {
	case snap.State == StateWon:
		dst.DrawTextCenteredColor(area.Y+snap.Rows/2, " ESCAPED! ", core.ColorSuccess)
	case snap.State == StateTimedOut:
		dst.DrawTextCenteredColor(area.Y+snap.Rows/2, " OUT OF TIME ", core.ColorHazard)
	case snap.Paused:
		dst.DrawTextCenteredColor(area.Y+snap.Rows/2, " PAUSED ", core.ColorBrightYellow)
	}
}

func cellGlyph(c Cell, unlocked bool) (string, core.Color) {
	switch c {
	case Wall:
		return "██", core.ColorWall
	case Key:
		return "k ", core.ColorKey
	case Distraction:
		return "* ", core.ColorHazard
	case Exit:
		if unlocked {
			return "E ", core.ColorExit
		}
		return "▒▒", core.ColorMuted
	default:
		return "· ", core.ColorMuted
	}
}

func lockLabel(unlocked bool) string {
	if unlocked {
		return "open"
	}
	return "locked"
}
