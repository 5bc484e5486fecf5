package puzzle

import "github.com/vovakirdan/milkyway-arcade/internal/config"

// ConfigFor converts a level tuple into an engine config.
func ConfigFor(lvl config.PuzzleLevel) Config {
	return Config{
		Size:      lvl.Size,
		TimeLimit: lvl.TimeLimit,
		HintAfter: lvl.HintAfter,
	}
}
