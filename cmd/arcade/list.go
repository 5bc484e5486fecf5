package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/milkyway-arcade/internal/config"
	"github.com/vovakirdan/milkyway-arcade/internal/platform/tui"
	"github.com/vovakirdan/milkyway-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games and their difficulty levels",
	Long: `Shows every game registered in the arcade. Games with difficulty
levels list each level as the effective level table (see --config) defines it.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(_ *cobra.Command, _ []string) {
	levels, err := config.LoadLevels(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	writeGameList(os.Stdout, registry.List(), levels)
}

func writeGameList(w io.Writer, games []registry.GameInfo, levels config.Levels) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	idWidth := 2
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}
	levelWidth := 0
	for _, d := range config.Difficulties() {
		levelWidth = max(levelWidth, len(d.Title()))
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)
	for _, g := range games {
		game, err := registry.Create(g.ID)
		if err != nil {
			continue
		}
		leveled, ok := game.(registry.Leveled)
		if !ok {
			fmt.Fprintf(w, "  %-*s  %s\n", idWidth, g.ID, g.Title)
			continue
		}

		fmt.Fprintf(w, "  %-*s  %s (default: %s)\n", idWidth, g.ID, g.Title, leveled.Level().Title())
		for _, d := range config.Difficulties() {
			fmt.Fprintf(w, "  %-*s    %-*s  %s\n", idWidth, "", levelWidth, d.Title(), tui.LevelSummary(g.ID, levels, d))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id> --level <level>' to play, 'arcade levels' to dump the level table.")
}
