package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start blockfall in interactive menu mode.

After a game ends, Esc returns you to the menu to play again.

Controls:
  Up/Down/j/k       - Navigate modes
  Tab/Left/Right    - Cycle difficulty
  Enter/Space       - Start
  Q/Esc             - Quit

Examples:
  blockfall menu
  blockfall menu --fps 30
  blockfall menu --difficulty hard`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closer, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg := runtimeConfig()
	difficulty := flagDifficulty

	for {
		res, err := tui.RunMenu(cfg, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config
		if res.Quit || res.GameID == "" {
			return
		}
		difficulty = string(res.Difficulty)

		game, err := registry.CreateConfigured(res.GameID, registry.Settings{
			ConfigPath: flagConfig,
			Difficulty: difficulty,
			Logger:     logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return
		}

		cfg.Seed = time.Now().UnixNano()
		logger.Info("starting", "mode", res.GameID, "difficulty", difficulty)

		if err := tui.Run(game, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
