package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/milkyway-arcade/internal/announce"
	"github.com/vovakirdan/milkyway-arcade/internal/config"
	"github.com/vovakirdan/milkyway-arcade/internal/core"
	"github.com/vovakirdan/milkyway-arcade/internal/platform/watch"
	"github.com/vovakirdan/milkyway-arcade/internal/registry"
	"github.com/vovakirdan/milkyway-arcade/internal/storage"
)

// Options carries the optional services a game model talks to.
type Options struct {
	Store   *storage.Store
	Hub     *watch.Hub
	Logger  *log.Logger
	Palette *Palette

	// WatchID names the spectator channel. Defaults to the game ID.
	WatchID string

	// Embedded models return to a menu on Back instead of quitting.
	Embedded bool
}

// Model is the Bubble Tea model for running one arcade game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	opts        Options
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	detach      []func()
	gen         uint64
	watchers    int // spectators seen at the last tick
	quitting    bool
	backToMenu  bool
	resultSaved bool // whether the current terminal outcome was stored
}

// NewModel resets game and wires it to the services in opts.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Palette == nil {
		opts.Palette = defaultPalette
	}
	if opts.WatchID == "" {
		opts.WatchID = game.ID()
	}

	game.Reset(cfg)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		gen:        nextTickGen(),
	}

	if obs, ok := game.(registry.Observable); ok {
		m.detach = append(m.detach, announce.New(opts.Logger, nil).Attach(obs.Events()))
		if opts.Hub != nil {
			m.detach = append(m.detach, opts.Hub.Attach(opts.WatchID, obs.Events()))
		}
	}
	m.publishSnapshot()

	opts.Logger.Info("round started", "game", game.ID(), "level", levelOf(game), "watch", opts.WatchID)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.BlurMsg:
		// Losing focus pauses a running round; resuming stays manual.
		if !m.gameState.GameOver && !m.gameState.Paused {
			m.inputFrame.Set(core.ActionPause)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// Boards are sized by level, not by the window, so a resize only
		// changes the drawing area.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.Close()
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if !m.gameState.GameOver && !m.gameState.Paused {
			m.inputFrame.Set(core.ActionPause)
			return m, nil
		}
		m.Close()
		if m.opts.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	restarted := m.inputFrame.Has(core.ActionRestart)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// Late spectators only see deltas, so give them the whole board.
	if m.spectatorJoined() || restarted {
		m.publishSnapshot()
	}

	switch {
	case m.gameState.GameOver && !m.resultSaved:
		m.recordResult()
		m.resultSaved = true
	case !m.gameState.GameOver:
		// A restart after game over starts a new round to record.
		m.resultSaved = false
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// recordResult stores the finished round. Storage failures are logged and
// never interrupt play.
func (m Model) recordResult() {
	st := m.gameState
	logger := m.opts.Logger

	logger.Info("round finished",
		"game", m.game.ID(),
		"outcome", st.Outcome,
		"score", st.Score,
		"elapsed", st.Elapsed,
	)
	m.publishSnapshot()

	store := m.opts.Store
	if store == nil {
		return
	}
	if st.Score > 0 {
		if _, err := store.SaveScore(m.game.ID(), st.Score); err != nil {
			logger.Warn("cannot save score", "err", err)
		}
	}
	_, err := store.SaveResult(storage.Result{
		GameID:      m.game.ID(),
		Level:       string(levelOf(m.game)),
		Outcome:     string(st.Outcome),
		Score:       st.Score,
		ElapsedSecs: st.Elapsed,
	})
	if err != nil {
		logger.Warn("cannot save result", "err", err)
	}
}

func (m Model) publishSnapshot() {
	if m.opts.Hub == nil {
		return
	}
	if snap, ok := m.game.(registry.Snapshotter); ok {
		m.opts.Hub.PublishSnapshot(m.opts.WatchID, snap.Snapshot())
	}
}

// spectatorJoined reports whether the watch channel gained a spectator
// since the last tick.
func (m *Model) spectatorJoined() bool {
	if m.opts.Hub == nil {
		return false
	}
	n := m.opts.Hub.Spectators(m.opts.WatchID)
	joined := n > m.watchers
	m.watchers = n
	return joined
}

func levelOf(g registry.Game) config.Difficulty {
	if lv, ok := g.(registry.Leveled); ok {
		return lv.Level()
	}
	return ""
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
	}
}

// Close detaches the model from the event bus. Safe to call more than once.
func (m Model) Close() {
	for _, fn := range m.detach {
		fn()
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return m.opts.Palette.Render(m.screen)
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}
