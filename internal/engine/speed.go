package engine

import (
	"fmt"
	"time"
)

// LevelStep shortens the gravity interval by Decrement once session time has
// passed At.
type LevelStep struct {
	At        time.Duration
	Decrement time.Duration
}

// SpeedCurve is an ordered list of level steps consumed by a cursor that only
// moves forward, so each step applies at most once.
type SpeedCurve struct {
	steps  []LevelStep
	cursor int
	delay  time.Duration
	min    time.Duration
}

// NewSpeedCurve validates steps and returns a curve starting at initial.
// The delay never drops below min.
func NewSpeedCurve(initial, min time.Duration, steps []LevelStep) (*SpeedCurve, error) {
	if initial <= 0 {
		return nil, fmt.Errorf("engine: step delay must be positive, got %s: %w", initial, ErrInvalidConfig)
	}
	if min < 0 {
		return nil, fmt.Errorf("engine: minimum step delay must not be negative, got %s: %w", min, ErrInvalidConfig)
	}
	for i, s := range steps {
		if s.Decrement < 0 {
			return nil, fmt.Errorf("engine: level step %d has negative decrement: %w", i, ErrInvalidConfig)
		}
		if i > 0 && s.At <= steps[i-1].At {
			return nil, fmt.Errorf("engine: level step %d at %s is not after %s: %w", i, s.At, steps[i-1].At, ErrInvalidConfig)
		}
	}

	owned := make([]LevelStep, len(steps))
	copy(owned, steps)

	return &SpeedCurve{
		steps: owned,
		delay: max(initial, min),
		min:   min,
	}, nil
}

// Advance consumes every step whose threshold elapsed has passed.
// Returns how many steps were consumed by this call.
func (c *SpeedCurve) Advance(elapsed time.Duration) int {
	consumed := 0
	for c.cursor < len(c.steps) && elapsed > c.steps[c.cursor].At {
		c.delay = max(c.delay-c.steps[c.cursor].Decrement, c.min)
		c.cursor++
		consumed++
	}
	return consumed
}

// Delay returns the current gravity interval.
func (c *SpeedCurve) Delay() time.Duration {
	return c.delay
}

// Level returns 1 plus the number of consumed steps.
func (c *SpeedCurve) Level() int {
	return c.cursor + 1
}
