package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LevelsFile is the file name searched for in the config directories.
const LevelsFile = "levels.yaml"

// LoadLevels loads the level tuples for all games.
// Search order: customPath -> ~/.arcade/configs/levels.yaml -> ./configs/levels.yaml -> embedded default
func LoadLevels(customPath string) (Levels, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultLevels(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		lv, err := ParseLevels(data)
		if err != nil {
			return DefaultLevels(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return lv, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(LevelsFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if lv, err := ParseLevels(data); err == nil {
				return lv, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", LevelsFile)); err == nil {
		if lv, err := ParseLevels(data); err == nil {
			return lv, nil
		}
	}

	// Use embedded default YAML
	lv, err := ParseLevels(defaultLevelsYAML)
	if err != nil {
		return DefaultLevels(), nil
	}
	return lv, nil
}

// ParseLevels decodes a levels document, fills in omitted difficulties and
// validates the result.
func ParseLevels(data []byte) (Levels, error) {
	var lv Levels
	if err := yaml.Unmarshal(data, &lv); err != nil {
		return lv, err
	}
	lv.fillDefaults()
	if err := lv.Validate(); err != nil {
		return lv, err
	}
	return lv, nil
}

// Marshal renders the levels as YAML.
func (l Levels) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}

// Validate checks every tuple. All problems are reported together; each is a
// *ConfigurationError.
func (l Levels) Validate() error {
	var errs []error
	bad := func(field string, value any, reason string) {
		errs = append(errs, &ConfigurationError{
			Field:  field,
			Value:  fmt.Sprint(value),
			Reason: reason,
		})
	}

	for _, d := range Difficulties() {
		if m, ok := l.Maze[d]; ok {
			prefix := "maze." + string(d) + "."
			if m.Rows < 5 {
				bad(prefix+"rows", m.Rows, "must be at least 5")
			}
			if m.Cols < 5 {
				bad(prefix+"cols", m.Cols, "must be at least 5")
			}
			if m.Keys < 0 {
				bad(prefix+"keys", m.Keys, "must not be negative")
			}
			if m.Distractions < 0 {
				bad(prefix+"distractions", m.Distractions, "must not be negative")
			}
			// Interior cells minus start and exit.
			free := (m.Rows-2)*(m.Cols-2) - 2
			if m.Rows >= 5 && m.Cols >= 5 && m.Keys+m.Distractions > free {
				bad(prefix+"keys", m.Keys, "keys and distractions do not fit in "+strconv.Itoa(free)+" free cells")
			}
			if m.WallDensity < 0 || m.WallDensity > 1 {
				bad(prefix+"wall_density", m.WallDensity, "must be between 0 and 1")
			}
			if m.TimeLimit < 0 {
				bad(prefix+"time_limit", m.TimeLimit, "must not be negative")
			}
			if m.ReminderAfter < 0 {
				bad(prefix+"reminder_after", m.ReminderAfter, "must not be negative")
			}
		}

		if p, ok := l.Puzzle[d]; ok {
			prefix := "puzzle." + string(d) + "."
			if p.Size < 2 {
				bad(prefix+"size", p.Size, "must be at least 2")
			}
			if p.TimeLimit < 0 {
				bad(prefix+"time_limit", p.TimeLimit, "must not be negative")
			}
			if p.HintAfter < 0 {
				bad(prefix+"hint_after", p.HintAfter, "must not be negative")
			}
		}

		if m, ok := l.Memory[d]; ok {
			prefix := "memory." + string(d) + "."
			if len(m.Symbols) == 0 {
				bad(prefix+"symbols", "[]", "at least one symbol is required")
			}
			seen := make(map[string]bool, len(m.Symbols))
			for _, s := range m.Symbols {
				if s == "" {
					bad(prefix+"symbols", s, "symbols must not be empty")
				} else if seen[s] {
					bad(prefix+"symbols", s, "duplicate symbol")
				}
				seen[s] = true
			}
			if m.TimeLimit < 0 {
				bad(prefix+"time_limit", m.TimeLimit, "must not be negative")
			}
			if m.MismatchDelayMS < 0 {
				bad(prefix+"mismatch_delay_ms", m.MismatchDelayMS, "must not be negative")
			}
		}
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
