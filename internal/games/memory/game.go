package memory

import (
	"errors"
	"fmt"

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

// Game adapts the memory engine to the arcade platform.
type Game struct {
	level   config.Difficulty
	engine  *Engine
	frames  *core.FrameStepper
	cursor  int
	message string
	unsub   func()
}

// New creates a memory game at the default difficulty.
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
func (g *Game) Title() string { return "Memory Match" }

// SetLevel selects the difficulty used by the next Reset.
func (g *Game) SetLevel(d config.Difficulty) { g.level = d }

// Level returns the selected difficulty.
func (g *Game) Level() config.Difficulty { return g.level }

// Reset deals a new table.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	levels, err := config.LoadLevels(configPath)
	if err != nil {
		levels = config.DefaultLevels()
	}

	if g.unsub != nil {
		g.unsub()
	}
	g.engine = NewEngine(ConfigFor(levels.ForMemory(g.level)), core.NewRNG(cfg.Seed))
	g.frames = core.NewFrameStepper(cfg.TickRate)
	g.cursor = 0
	g.message = "Press Enter to start, then flip two cards at a time."
	if err != nil {
		g.message = "Level file unusable, playing built-in levels."
	}
	g.unsub = g.engine.Events().Subscribe(func(ev core.Event) {
		if text := announce.Default().Text(ev); text != "" {
			g.message = text
		}
	})
}

// columns returns how many cards sit in one table row.
func (g *Game) columns() int {
	if len(g.engine.deck) > 16 {
		return 6
	}
	return 4
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
	n := len(g.engine.deck)
	cols := g.columns()
	switch a {
	case core.ActionUp:
		g.cursor = core.Wrap(g.cursor-cols, n)
	case core.ActionDown:
		g.cursor = core.Wrap(g.cursor+cols, n)
	case core.ActionLeft:
		g.cursor = core.Wrap(g.cursor-1, n)
	case core.ActionRight:
		g.cursor = core.Wrap(g.cursor+1, n)
	}
}

func (g *Game) confirm() {
	if g.engine.State() == StateDealt && g.engine.Start() {
		return
	}
	if err := g.engine.Flip(g.cursor); errors.Is(err, ErrInvalidFlip) && !g.engine.Terminal() && !g.engine.Paused() {
		g.message = err.Error()
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

// Cursor returns the card under the cursor.
func (g *Game) Cursor() int { return g.cursor }

const cardW, cardH = 7, 3

// Render draws the table of cards.
func (g *Game) Render(dst *core.Screen) {
	snap := g.engine.Snapshot()

	hud := fmt.Sprintf("MEMORY MATCH  %s   Score: %d   Pairs: %d/%d   Time left: %ds",
		g.level.Title(), snap.Score, snap.MatchedPairs, snap.TotalPairs, snap.Remaining)
	dst.DrawTextCenteredColor(0, hud, core.ColorHUD)

	cols := g.columns()
	rows := (len(snap.Cards) + cols - 1) / cols
	area := core.NewRect(0, 2, dst.Width(), dst.Height()-5).Centered(cols*cardW, rows*cardH)

	for i, card := range snap.Cards {
		r := core.NewRect(area.X+(i%cols)*cardW, area.Y+(i/cols)*cardH, cardW-1, cardH)

		face, color := " ? ", core.ColorWall
		switch {
		case card.Matched:
			face, color = Label(card.Symbol), core.ColorSuccess
		case card.Flipped:
			face, color = Label(card.Symbol), core.ColorKey
		}
		if i == g.cursor && snap.State != StateDealt {
			color = core.ColorPlayer
		}
		dst.DrawBox(r, color)
		dst.DrawTextColor(r.X+1+(r.W-2-len([]rune(face)))/2, r.Y+1, face, color)
	}

	dst.DrawTextCenteredColor(dst.Height()-2, g.message, core.ColorHUD)
	dst.DrawTextCenteredColor(dst.Height()-1, "Arrows move  Enter start/flip  P pause  R re-deal  Esc menu", core.ColorMuted)

	switch {
	case snap.State == StateDealt:
		dst.DrawTextCenteredColor(area.Bottom(), " PRESS ENTER TO START ", core.ColorBrightYellow)
	case snap.State == StateWon:
		dst.DrawTextCenteredColor(area.Bottom(), " ALL PAIRS FOUND! ", core.ColorSuccess)
	case snap.State == StateTimedOut:
		dst.DrawTextCenteredColor(area.Bottom(), " TIME'S UP ", core.ColorHazard)
	case snap.Paused:
		dst.DrawTextCenteredColor(area.Bottom(), " PAUSED ", core.ColorBrightYellow)
	}
}
