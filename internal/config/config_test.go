package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"Easy", Easy, false},
		{"MEDIUM", Medium, false},
		{" hard ", Hard, false},
		{"", DefaultDifficulty, false},
		{"nightmare", DefaultDifficulty, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDifficulty(tt.name)
			if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %q, expected %q", tt.name, got, tt.want)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDifficulty(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			var cfgErr *ConfigurationError
			if err != nil && !errors.As(err, &cfgErr) {
				t.Errorf("error %T should be *ConfigurationError", err)
			}
		})
	}
}

func TestDifficultyNextAndTitle(t *testing.T) {
	if Easy.Next() != Medium || Medium.Next() != Hard || Hard.Next() != Easy {
		t.Error("Next should cycle easy -> medium -> hard -> easy")
	}
	if Medium.Title() != "Medium" {
		t.Errorf("Title() = %q", Medium.Title())
	}
}

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	lv, err := ParseLevels(defaultLevelsYAML)
	if err != nil {
		t.Fatalf("embedded levels.yaml invalid: %v", err)
	}
	if !reflect.DeepEqual(lv, DefaultLevels()) {
		t.Errorf("embedded levels differ from DefaultLevels()\n got: %+v\nwant: %+v", lv, DefaultLevels())
	}
}

func TestDefaultLevelsAreValid(t *testing.T) {
	lv := DefaultLevels()
	if err := lv.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	if m := lv.ForMaze(Easy); m.Rows != 5 || m.Keys != 3 || m.Distractions != 2 {
		t.Errorf("easy maze = %+v", m)
	}
	if p := lv.ForPuzzle(Hard); p.Size != 4 {
		t.Errorf("hard puzzle size = %d, expected 4", p.Size)
	}
	if m := lv.ForMemory(Medium); len(m.Symbols) != 6 || m.TimeLimit != 60 {
		t.Errorf("medium memory = %+v", m)
	}
}

func TestDefaultLevelsDoNotShareSymbols(t *testing.T) {
	a := DefaultLevels()
	a.Memory[Easy].Symbols[0] = "changed"

	if DefaultLevels().Memory[Hard].Symbols[0] != "rocket" {
		t.Error("mutating one DefaultLevels() result leaked into another")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	lv := DefaultLevels()
	lv.Maze[Easy] = MazeLevel{Rows: 3, Cols: 5, WallDensity: 1.5}
	lv.Puzzle[Medium] = PuzzleLevel{Size: 1}
	lv.Memory[Hard] = MemoryLevel{Symbols: []string{"moon", "moon"}, TimeLimit: 60}

	err := lv.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	for _, field := range []string{"maze.easy.rows", "maze.easy.wall_density", "puzzle.medium.size", "memory.hard.symbols"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Error("joined error should unwrap to *ConfigurationError")
	}
}

func TestValidateKeysMustFit(t *testing.T) {
	lv := DefaultLevels()
	// 5x5 has 9 interior cells, 7 after start and exit.
	lv.Maze[Easy] = MazeLevel{Rows: 5, Cols: 5, Keys: 5, Distractions: 3, WallDensity: 0.1}

	if err := lv.Validate(); err == nil {
		t.Error("8 items in 7 free cells should be rejected")
	}
}

func TestLoadLevelsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	doc := `
maze:
  Easy:
    rows: 7
    cols: 9
    keys: 4
    distractions: 1
    wall_density: 0.3
puzzle:
  HARD:
    size: 5
    hint_after: 3
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	lv, err := LoadLevels(path)
	if err != nil {
		t.Fatalf("LoadLevels() failed: %v", err)
	}

	if m := lv.ForMaze(Easy); m.Rows != 7 || m.Cols != 9 || m.Keys != 4 {
		t.Errorf("easy maze = %+v", m)
	}
	if p := lv.ForPuzzle(Hard); p.Size != 5 || p.HintAfter != 3 {
		t.Errorf("hard puzzle = %+v", p)
	}
	// Untouched difficulties fall back to defaults.
	if m := lv.ForMaze(Hard); m.Rows != 8 {
		t.Errorf("hard maze rows = %d, expected default 8", m.Rows)
	}
	if len(lv.ForMemory(Easy).Symbols) != 4 {
		t.Error("memory section should be filled from defaults")
	}
}

func TestLoadLevelsCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadLevels(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("maze:\n  impossible:\n    rows: 5\n"), 0o644)
	if _, err := LoadLevels(bad); err == nil {
		t.Error("unknown difficulty key should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("puzzle:\n  easy:\n    size: 1\n"), 0o644)
	_, err := LoadLevels(invalid)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("invalid tuple error = %v, expected *ConfigurationError", err)
	}
}

func TestLevelsMarshalRoundTrip(t *testing.T) {
	data, err := DefaultLevels().Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "wall_density") {
		t.Errorf("marshalled YAML missing snake_case keys:\n%s", data)
	}
	if _, err := ParseLevels(data); err != nil {
		t.Errorf("marshalled YAML does not parse back: %v", err)
	}
}
