package memory

// Snapshot is an immutable copy of the memory table.
type Snapshot struct {
	Game         string `json:"game"`
	State        State  `json:"state"`
	Cards        Deck   `json:"cards"`
	Score        int    `json:"score"`
	MatchedPairs int    `json:"matched_pairs"`
	TotalPairs   int    `json:"total_pairs"`
	Progress     int    `json:"progress"`
	PairPending  bool   `json:"pair_pending"`
	Elapsed      int    `json:"elapsed"`
	Remaining    int    `json:"remaining"`
	Paused       bool   `json:"paused"`
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	total := e.deck.Pairs()
	progress := 0
	if total > 0 {
		progress = e.matched * 100 / total
	}
	return Snapshot{
		Game:         GameID,
		State:        e.state,
		Cards:        e.deck.Clone(),
		Score:        e.score,
		MatchedPairs: e.matched,
		TotalPairs:   total,
		Progress:     progress,
		PairPending:  e.PairPending(),
		Elapsed:      e.clock.Elapsed(),
		Remaining:    e.clock.Remaining(),
		Paused:       e.sched.Paused(),
	}
}
