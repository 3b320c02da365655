// Package config loads blockfall settings from YAML and turns them into an
// engine configuration.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/engine"
)

// ErrInvalid is wrapped by every validation error in this package.
var ErrInvalid = errors.New("invalid config")

// BlockfallConfig is the full YAML document.
type BlockfallConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Levels     LevelsConfig     `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield. The spawn cell is in board
// coordinates, with the origin at the center and y pointing up.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
}

// TimingConfig defines gravity and locking. Durations use Go syntax ("1s",
// "500ms").
type TimingConfig struct {
	StepDelay    time.Duration `yaml:"step_delay"`
	LockDelay    time.Duration `yaml:"lock_delay"`
	MinStepDelay time.Duration `yaml:"min_step_delay"`
}

// LevelsConfig defines the speed curve. Explicit Steps win; otherwise Count
// steps are generated, one every Every, each shortening gravity by
// Decrement.
type LevelsConfig struct {
	Every     time.Duration `yaml:"every"`
	Count     int           `yaml:"count"`
	Decrement time.Duration `yaml:"decrement"`
	Steps     []LevelStep   `yaml:"steps"`
}

// LevelStep is one explicit entry of the speed curve.
type LevelStep struct {
	At        time.Duration `yaml:"at"`
	Decrement time.Duration `yaml:"decrement"`
}

// DifficultyConfig scales the starting speed and toggles the level curve.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	StepDelayScale float64 `yaml:"step_delay_scale"` // 1.0 keeps timing.step_delay
}

// Validate checks the fields the engine cannot check on its own.
func (c BlockfallConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board %dx%d: %w", c.Board.Width, c.Board.Height, ErrInvalid)
	}
	if c.Timing.StepDelay <= 0 {
		return fmt.Errorf("config: step_delay must be positive: %w", ErrInvalid)
	}
	if c.Timing.LockDelay < 0 || c.Timing.MinStepDelay < 0 {
		return fmt.Errorf("config: negative timing value: %w", ErrInvalid)
	}
	if len(c.Levels.Steps) == 0 && c.Levels.Count > 0 && c.Levels.Every <= 0 {
		return fmt.Errorf("config: levels.every must be positive when levels.count is set: %w", ErrInvalid)
	}
	if c.Difficulty.StepDelayScale < 0 {
		return fmt.Errorf("config: step_delay_scale must not be negative: %w", ErrInvalid)
	}
	return nil
}

// LevelSteps returns the speed curve, expanding the every/count shorthand.
func (c BlockfallConfig) LevelSteps() []engine.LevelStep {
	if len(c.Levels.Steps) > 0 {
		steps := make([]engine.LevelStep, len(c.Levels.Steps))
		for i, s := range c.Levels.Steps {
			steps[i] = engine.LevelStep{At: s.At, Decrement: s.Decrement}
		}
		return steps
	}

	steps := make([]engine.LevelStep, 0, c.Levels.Count)
	for i := 1; i <= c.Levels.Count; i++ {
		steps = append(steps, engine.LevelStep{
			At:        time.Duration(i) * c.Levels.Every,
			Decrement: c.Levels.Decrement,
		})
	}
	return steps
}

// EngineConfig validates c and converts it for engine.New.
func (c BlockfallConfig) EngineConfig() (engine.Config, error) {
	if err := c.Validate(); err != nil {
		return engine.Config{}, err
	}

	step := c.Timing.StepDelay
	if scale := c.Difficulty.StepDelayScale; scale > 0 {
		step = time.Duration(float64(step) * scale).Round(time.Millisecond)
	}

	cfg := engine.Config{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		Spawn:        engine.Cell{X: c.Board.SpawnX, Y: c.Board.SpawnY},
		StepDelay:    max(step, time.Millisecond),
		LockDelay:    c.Timing.LockDelay,
		MinStepDelay: c.Timing.MinStepDelay,
	}
	if c.Difficulty.Enabled {
		cfg.Levels = c.LevelSteps()
	}
	return cfg, nil
}
