package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/milkyway-arcade/internal/config"
	"github.com/vovakirdan/milkyway-arcade/internal/core"
)

// LevelSummary describes the tuple a difficulty selects for a game.
func LevelSummary(gameID string, levels config.Levels, d config.Difficulty) string {
	var s string
	limit := 0
	switch gameID {
	case "maze":
		lvl := levels.ForMaze(d)
		s = fmt.Sprintf("%dx%d maze, %d keys, %d distractions", lvl.Rows, lvl.Cols, lvl.Keys, lvl.Distractions)
		limit = lvl.TimeLimit
	case "puzzle":
		lvl := levels.ForPuzzle(d)
		s = fmt.Sprintf("%dx%d tiles", lvl.Size, lvl.Size)
		limit = lvl.TimeLimit
	case "memory":
		lvl := levels.ForMemory(d)
		s = fmt.Sprintf("%d pairs", len(lvl.Symbols))
		limit = lvl.TimeLimit
	default:
		return ""
	}
	if limit > 0 {
		s += fmt.Sprintf(", %ds limit", limit)
	}
	return s
}

// LevelModel lets users pick the difficulty for one game.
type LevelModel struct {
	gameID    string
	title     string
	levels    config.Levels
	choices   []config.Difficulty
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *config.Difficulty
	quitting  bool
	back      bool
}

// NewLevelModel creates a level selector with the cursor on current.
func NewLevelModel(gameID, title string, levels config.Levels, current config.Difficulty, width, height int) LevelModel {
	m := LevelModel{
		gameID:    gameID,
		title:     title,
		levels:    levels,
		choices:   config.Difficulties(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, d := range m.choices {
		if d == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m LevelModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp, MenuActionLeft:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown, MenuActionRight:
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		d := m.choices[m.cursor]
		m.selected = &d
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the level list.
func (m LevelModel) View() string {
	if m.quitting || m.back || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select level:", m.width))
	b.WriteString("\n\n")

	for i, d := range m.choices {
		line := fmt.Sprintf("%-7s %s", d.Title(), LevelSummary(m.gameID, m.levels, d))
		if i == m.cursor {
			line = menuActiveStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuMutedStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen difficulty, or nil if none was chosen.
func (m LevelModel) Selected() *config.Difficulty {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level picker. A nil difficulty means the user
// backed out or quit.
func RunLevelSelector(gameID, title string, levels config.Levels, current config.Difficulty, cfg core.RuntimeConfig) (*config.Difficulty, error) {
	p := tea.NewProgram(
		NewLevelModel(gameID, title, levels, current, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
