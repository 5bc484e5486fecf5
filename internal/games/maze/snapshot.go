package maze

// Snapshot is an immutable copy of the engine state for renderers and
// transports.
type Snapshot struct {
	Game            string     `json:"game"`
	State           State      `json:"state"`
	Rows            int        `json:"rows"`
	Cols            int        `json:"cols"`
	Grid            [][]Cell   `json:"grid"`
	Player          Position   `json:"player"`
	Exit            Position   `json:"exit"`
	Score           int        `json:"score"`
	KeysCollected   int        `json:"keys_collected"`
	KeysRemaining   int        `json:"keys_remaining"`
	DistractionsHit int        `json:"distractions_hit"`
	ExitUnlocked    bool       `json:"exit_unlocked"`
	Elapsed         int        `json:"elapsed"`
	Remaining       int        `json:"remaining"`
	Paused          bool       `json:"paused"`
	ReminderDue     bool       `json:"reminder_due"`
	LastMove        MoveResult `json:"last_move"`
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	remaining := e.KeysRemaining()
	return Snapshot{
		Game:            GameID,
		State:           e.state,
		Rows:            e.grid.Rows(),
		Cols:            e.grid.Cols(),
		Grid:            e.grid.Rows2D(),
		Player:          e.player,
		Exit:            ExitFor(e.grid.Rows(), e.grid.Cols()),
		Score:           e.score,
		KeysCollected:   e.collected,
		KeysRemaining:   remaining,
		DistractionsHit: e.distractionsHit,
		ExitUnlocked:    remaining == 0,
		Elapsed:         e.clock.Elapsed(),
		Remaining:       e.clock.Remaining(),
		Paused:          e.sched.Paused(),
		ReminderDue:     e.reminderDue,
		LastMove:        e.last,
	}
}
