package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeedCurveConsumesEachStepOnce(t *testing.T) {
	cfg := DefaultConfig()
	c, err := NewSpeedCurve(cfg.StepDelay, cfg.MinStepDelay, cfg.Levels)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Level())
	assert.Equal(t, time.Second, c.Delay())

	assert.Equal(t, 0, c.Advance(30*time.Second), "threshold must be passed, not reached")
	assert.Equal(t, 1, c.Advance(30*time.Second+time.Nanosecond))
	assert.Equal(t, 800*time.Millisecond, c.Delay())

	assert.Equal(t, 0, c.Advance(31*time.Second))
	assert.Equal(t, 0, c.Advance(45*time.Second))
	assert.Equal(t, 800*time.Millisecond, c.Delay())

	assert.Equal(t, 2, c.Advance(100*time.Second))
	assert.Equal(t, 4, c.Level())
	assert.Equal(t, 400*time.Millisecond, c.Delay())
}

func TestSpeedCurveFloor(t *testing.T) {
	cfg := DefaultConfig()

	c, err := NewSpeedCurve(cfg.StepDelay, 0, cfg.Levels)
	require.NoError(t, err)
	assert.Equal(t, 9, c.Advance(time.Hour))
	assert.Equal(t, time.Duration(0), c.Delay())
	assert.Equal(t, 10, c.Level())

	c, err = NewSpeedCurve(cfg.StepDelay, 100*time.Millisecond, cfg.Levels)
	require.NoError(t, err)
	c.Advance(time.Hour)
	assert.Equal(t, 100*time.Millisecond, c.Delay())
}

func TestSpeedCurveOwnsSteps(t *testing.T) {
	steps := []LevelStep{{At: time.Second, Decrement: time.Millisecond}}
	c, err := NewSpeedCurve(time.Second, 0, steps)
	require.NoError(t, err)

	steps[0].Decrement = time.Hour
	c.Advance(2 * time.Second)
	assert.Equal(t, time.Second-time.Millisecond, c.Delay())
}

func TestNewSpeedCurveRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		initial time.Duration
		min     time.Duration
		steps   []LevelStep
	}{
		{"zero initial", 0, 0, nil},
		{"negative min", time.Second, -time.Second, nil},
		{"negative decrement", time.Second, 0, []LevelStep{{At: time.Second, Decrement: -1}}},
		{"unordered", time.Second, 0, []LevelStep{{At: 2 * time.Second}, {At: time.Second}}},
		{"duplicate threshold", time.Second, 0, []LevelStep{{At: time.Second}, {At: time.Second}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSpeedCurve(tc.initial, tc.min, tc.steps)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}
