// Package tui provides the Bubble Tea front-end for the arcade: the game
// loop, menus, scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/milkyway-arcade/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the model that scheduled it; a model ignores ticks from
// an earlier game still in flight.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd schedules the next frame. Engines are advanced by the frame
// duration, never by wall time, so a late tick only slows the game.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
