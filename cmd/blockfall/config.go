package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config or check a custom one",
	Long: `Without --config, prints the built-in blockfall.yaml so it can be
saved to ~/.blockfall/configs/blockfall.yaml and edited.

With --config, validates the file and prints the resulting engine timing.

Examples:
  blockfall config > ~/.blockfall/configs/blockfall.yaml
  blockfall config --config ./my-blockfall.yaml --difficulty hard`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfig == "" && flagDifficulty == "" {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	ec, err := cfg.EngineConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Config OK")
	fmt.Println()
	fmt.Printf("  Board       %dx%d, spawn (%d, %d)\n", ec.Width, ec.Height, ec.Spawn.X, ec.Spawn.Y)
	fmt.Printf("  Step delay  %v (floor %v)\n", ec.StepDelay, ec.MinStepDelay)
	fmt.Printf("  Lock delay  %v\n", ec.LockDelay)
	fmt.Printf("  Levels      %d\n", len(ec.Levels)+1)
	for i, l := range ec.Levels {
		fmt.Printf("    %2d  after %-8v -%v\n", i+2, l.At, l.Decrement)
	}
}
