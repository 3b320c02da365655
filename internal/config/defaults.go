package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the built-in configuration. It matches
// defaults/blockfall.yaml and is used when the embedded file cannot be
// parsed.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
			SpawnX: -1,
			SpawnY: 8,
		},
		Timing: TimingConfig{
			StepDelay: time.Second,
			LockDelay: 500 * time.Millisecond,
		},
		Levels: LevelsConfig{
			Every:     30 * time.Second,
			Count:     9,
			Decrement: 200 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			StepDelayScale: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default document.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}
