package maze

import "github.com/vovakirdan/milkyway-arcade/internal/config"

// ConfigFor converts a level tuple into an engine config.
func ConfigFor(lvl config.MazeLevel) Config {
	return Config{
		Params: Params{
			Rows:         lvl.Rows,
			Cols:         lvl.Cols,
			Keys:         lvl.Keys,
			Distractions: lvl.Distractions,
			WallDensity:  lvl.WallDensity,
		},
		TimeLimit:     lvl.TimeLimit,
		ReminderAfter: lvl.ReminderAfter,
	}
}
