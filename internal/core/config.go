package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second; each Step advances engine time by 1/TickRate
	Seed     int64 // RNG seed for deterministic generation (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// Outcome is the terminal result of a round.
type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeWon      Outcome = "won"
	OutcomeLost     Outcome = "lost"
	OutcomeTimedOut Outcome = "timed_out"
)

// Terminal reports whether the outcome ends the round.
func (o Outcome) Terminal() bool {
	return o != OutcomeNone
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Outcome  Outcome
	Elapsed  int // whole seconds of unpaused play
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
