package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/milkyway-arcade/internal/config"
	"github.com/vovakirdan/milkyway-arcade/internal/platform/tui"
	"github.com/vovakirdan/milkyway-arcade/internal/registry"
	"github.com/vovakirdan/milkyway-arcade/internal/storage"
)

var flagMenuWatch string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, then pick
a level. After a round you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Esc          - Back
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 60
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuWatch, "watch", "", "Serve a spectator websocket on this address")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger("arcade")
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	levels, err := config.LoadLevels(flagConfig)
	if err != nil {
		logger.Warn("using default levels", "err", err)
	}

	hub, stopWatch := startWatch(flagMenuWatch, logger)
	defer stopWatch()

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if lv, ok := game.(registry.Leveled); ok {
			picked, selErr := tui.RunLevelSelector(game.ID(), game.Title(), levels, lv.Level(), cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			if picked == nil {
				continue
			}
			lv.SetLevel(*picked)
		}

		// Fresh board every round unless a seed was pinned.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		opts := tui.Options{Store: store, Hub: hub, Logger: logger}
		if err := tui.Run(game, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
