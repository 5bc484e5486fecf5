package puzzle

// Snapshot is an immutable copy of the puzzle state.
type Snapshot struct {
	Game      string `json:"game"`
	State     State  `json:"state"`
	Size      int    `json:"size"`
	Tiles     []int  `json:"tiles"`
	Progress  int    `json:"progress"`
	Hint      int    `json:"hint"`
	Selected  int    `json:"selected"`
	Moves     int    `json:"moves"`
	Elapsed   int    `json:"elapsed"`
	Remaining int    `json:"remaining"`
	Paused    bool   `json:"paused"`
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Game:      GameID,
		State:     e.state,
		Size:      e.cfg.Size,
		Tiles:     e.tiles.Clone(),
		Progress:  e.tiles.Progress(),
		Hint:      e.hint,
		Selected:  e.selected,
		Moves:     e.moves,
		Elapsed:   e.clock.Elapsed(),
		Remaining: e.clock.Remaining(),
		Paused:    e.sched.Paused(),
	}
}
