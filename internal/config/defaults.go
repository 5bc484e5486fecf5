package config

import (
	_ "embed"
	"slices"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

var spaceSymbols = []string{"rocket", "planet", "galaxy", "satellite", "moon", "comet", "astronaut", "earth"}

// DefaultLevels returns the built-in level tuples.
func DefaultLevels() Levels {
	return Levels{
		Maze: map[Difficulty]MazeLevel{
			Easy:   {Rows: 5, Cols: 5, Keys: 3, Distractions: 2, WallDensity: 0.1, ReminderAfter: 15},
			Medium: {Rows: 6, Cols: 6, Keys: 5, Distractions: 3, WallDensity: 0.2, ReminderAfter: 15},
			Hard:   {Rows: 8, Cols: 8, Keys: 7, Distractions: 4, WallDensity: 0.25, ReminderAfter: 15},
		},
		Puzzle: map[Difficulty]PuzzleLevel{
			Easy:   {Size: 2, HintAfter: 5},
			Medium: {Size: 3, HintAfter: 5},
			Hard:   {Size: 4, HintAfter: 5},
		},
		Memory: map[Difficulty]MemoryLevel{
			Easy:   {Symbols: slices.Clone(spaceSymbols[:4]), TimeLimit: 60, MismatchDelayMS: 1000},
			Medium: {Symbols: slices.Clone(spaceSymbols[:6]), TimeLimit: 60, MismatchDelayMS: 1000},
			Hard:   {Symbols: slices.Clone(spaceSymbols[:8]), TimeLimit: 60, MismatchDelayMS: 1000},
		},
	}
}
