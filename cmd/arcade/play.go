package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/milkyway-arcade/internal/config"
	"github.com/vovakirdan/milkyway-arcade/internal/core"
	"github.com/vovakirdan/milkyway-arcade/internal/platform/tui"
	"github.com/vovakirdan/milkyway-arcade/internal/registry"
	"github.com/vovakirdan/milkyway-arcade/internal/storage"
)

var (
	flagLevel string
	flagWatch string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move / move cursor
  Enter/Space  - Pick tile, flip card, start
  P            - Pause
  Esc          - Pause, then leave when paused or finished
  R            - Restart
  Q/Ctrl+C     - Quit

Levels:
  easy, medium, hard (case-insensitive). Without --level a level
  picker is shown first.

Spectators:
  --watch :8081 streams game events as JSON over a websocket at
  ws://<addr>/ws?game=<game>.

Examples:
  arcade play maze
  arcade play puzzle --level hard
  arcade play memory --watch :8081
  arcade play maze --config ./my-levels.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level: easy, medium, hard")
	playCmd.Flags().StringVar(&flagWatch, "watch", "", "Serve a spectator websocket on this address (e.g. :8081)")
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog := fileLogger("arcade")
	defer closeLog()

	cfg := terminalConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if lv, ok := game.(registry.Leveled); ok {
		levels, loadErr := config.LoadLevels(flagConfig)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, using built-in levels\n", loadErr)
			logger.Warn("using default levels", "err", loadErr)
		}

		if flagLevel != "" {
			level, parseErr := config.ParseDifficulty(flagLevel)
			var cfgErr *config.ConfigurationError
			if errors.As(parseErr, &cfgErr) {
				fmt.Fprintf(os.Stderr, "Warning: %v, playing %s\n", cfgErr, level)
			}
			lv.SetLevel(level)
		} else {
			picked, selErr := tui.RunLevelSelector(game.ID(), game.Title(), levels, lv.Level(), cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}
			// User pressed back or quit
			if picked == nil {
				return
			}
			lv.SetLevel(*picked)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	hub, stopWatch := startWatch(flagWatch, logger)

	runErr := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Hub:    hub,
		Logger: logger,
	})

	stopWatch()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
