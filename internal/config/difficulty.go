package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Difficulty selects one of the three level tuples of a game.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// DefaultDifficulty is used when no level, or an unknown one, is requested.
const DefaultDifficulty = Easy

// Difficulties returns all levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Title returns the display name ("Easy", "Medium", "Hard").
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Next cycles to the following difficulty, wrapping after Hard.
func (d Difficulty) Next() Difficulty {
	all := Difficulties()
	for i, v := range all {
		if v == d {
			return all[(i+1)%len(all)]
		}
	}
	return DefaultDifficulty
}

// ParseDifficulty matches name case-insensitively. Unknown names yield
// DefaultDifficulty together with a *ConfigurationError so callers can warn
// and carry on.
func ParseDifficulty(name string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(name))); d {
	case Easy, Medium, Hard:
		return d, nil
	case "":
		return DefaultDifficulty, nil
	default:
		return DefaultDifficulty, &ConfigurationError{
			Field:  "level",
			Value:  name,
			Reason: "unknown difficulty, expected easy, medium or hard",
		}
	}
}

// UnmarshalYAML accepts "Easy", "easy" and "EASY" alike.
func (d *Difficulty) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseDifficulty(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ConfigurationError reports an unusable level tuple or level name.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: invalid %s=%q: %s", e.Field, e.Value, e.Reason)
}
