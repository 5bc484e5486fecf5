// Package config provides YAML-based level configuration for the arcade
// games: one (size, counts, timings) tuple per game and difficulty.
package config

// MazeLevel tunes maze generation and the maze clock.
type MazeLevel struct {
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	Keys          int     `yaml:"keys"`
	Distractions  int     `yaml:"distractions"`
	WallDensity   float64 `yaml:"wall_density"`
	TimeLimit     int     `yaml:"time_limit"`     // seconds, 0 = untimed
	ReminderAfter int     `yaml:"reminder_after"` // seconds, 0 = never
}

// PuzzleLevel tunes the sliding puzzle.
type PuzzleLevel struct {
	Size      int `yaml:"size"`
	TimeLimit int `yaml:"time_limit"`
	HintAfter int `yaml:"hint_after"`
}

// MemoryLevel tunes the memory match deck and countdown.
type MemoryLevel struct {
	Symbols         []string `yaml:"symbols"`
	TimeLimit       int      `yaml:"time_limit"`
	MismatchDelayMS int      `yaml:"mismatch_delay_ms"`
}

// Levels holds every per-difficulty tuple for all three games.
type Levels struct {
	Maze   map[Difficulty]MazeLevel   `yaml:"maze"`
	Puzzle map[Difficulty]PuzzleLevel `yaml:"puzzle"`
	Memory map[Difficulty]MemoryLevel `yaml:"memory"`
}

// ForMaze returns the maze tuple for d, falling back to the built-in default.
func (l Levels) ForMaze(d Difficulty) MazeLevel {
	if lvl, ok := l.Maze[d]; ok {
		return lvl
	}
	return DefaultLevels().Maze[d]
}

// ForPuzzle returns the puzzle tuple for d, falling back to the built-in default.
func (l Levels) ForPuzzle(d Difficulty) PuzzleLevel {
	if lvl, ok := l.Puzzle[d]; ok {
		return lvl
	}
	return DefaultLevels().Puzzle[d]
}

// ForMemory returns the memory tuple for d, falling back to the built-in default.
func (l Levels) ForMemory(d Difficulty) MemoryLevel {
	if lvl, ok := l.Memory[d]; ok {
		return lvl
	}
	return DefaultLevels().Memory[d]
}

// fillDefaults copies in any difficulty a loaded document left out.
func (l *Levels) fillDefaults() {
	def := DefaultLevels()
	if l.Maze == nil {
		l.Maze = make(map[Difficulty]MazeLevel)
	}
	if l.Puzzle == nil {
		l.Puzzle = make(map[Difficulty]PuzzleLevel)
	}
	if l.Memory == nil {
		l.Memory = make(map[Difficulty]MemoryLevel)
	}
	for _, d := range Difficulties() {
		if _, ok := l.Maze[d]; !ok {
			l.Maze[d] = def.Maze[d]
		}
		if _, ok := l.Puzzle[d]; !ok {
			l.Puzzle[d] = def.Puzzle[d]
		}
		if _, ok := l.Memory[d]; !ok {
			l.Memory[d] = def.Memory[d]
		}
	}
}
