package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/milkyway-arcade/internal/config"
	"github.com/vovakirdan/milkyway-arcade/internal/registry"
)

func TestWriteGameList(t *testing.T) {
	var buf bytes.Buffer
	writeGameList(&buf, registry.List(), config.DefaultLevels())
	out := buf.String()

	want := []string{
		"Space Maze (default: Easy)",
		"Galaxy Puzzle (default: Easy)",
		"Memory Match (default: Easy)",
		"5x5 maze, 3 keys, 2 distractions",
		"8x8 maze, 7 keys, 4 distractions",
		"3x3 tiles",
		"8 pairs, 60s limit",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("list output missing %q:\n%s", w, out)
		}
	}
}

func TestWriteGameListEmpty(t *testing.T) {
	var buf bytes.Buffer
	writeGameList(&buf, nil, config.DefaultLevels())
	if got := strings.TrimSpace(buf.String()); got != "No games available." {
		t.Errorf("empty list output = %q", got)
	}
}
