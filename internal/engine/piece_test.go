package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testStep = time.Second
	testLock = 500 * time.Millisecond
)

func newTestPiece(g *Grid, kind Kind, pos Cell) *Piece {
	return NewPiece(g, kind, pos, 0, testStep, testLock, nil)
}

func TestMove(t *testing.T) {
	g := NewGrid(10, 20)
	p := newTestPiece(g, KindT, Cell{0, 0})
	p.lockTimer = 300 * time.Millisecond

	require.True(t, p.Move(Left))
	assert.Equal(t, Cell{-1, 0}, p.Position())
	assert.Zero(t, p.lockTimer, "successful move should reset lock timer")
}

func TestMoveBlockedByWall(t *testing.T) {
	g := NewGrid(10, 20)
	p := newTestPiece(g, KindT, Cell{-4, 0})
	p.lockTimer = 300 * time.Millisecond

	assert.False(t, p.Move(Left))
	assert.Equal(t, Cell{-4, 0}, p.Position())
	assert.Equal(t, 300*time.Millisecond, p.lockTimer, "failed move must not touch lock timer")
}

func TestRotateInOpenSpace(t *testing.T) {
	g := NewGrid(10, 20)
	p := newTestPiece(g, KindT, Cell{0, 0})

	require.True(t, p.Rotate(1))
	assert.Equal(t, 1, p.Rotation())
	assert.Equal(t, Cell{0, 0}, p.Position())

	require.True(t, p.Rotate(-1))
	require.True(t, p.Rotate(-1))
	assert.Equal(t, 3, p.Rotation())
}

func TestRotateFullCycleRestoresPiece(t *testing.T) {
	for _, k := range Kinds {
		for _, dir := range []int{1, -1} {
			g := NewGrid(10, 20)
			p := newTestPiece(g, k, Cell{0, 0})
			for range 4 {
				require.True(t, p.Rotate(dir))
			}
			assert.Equal(t, 0, p.Rotation(), "kind %s", k)
			assert.Equal(t, Lookup(k).Cells, p.Cells(), "kind %s", k)
			assert.Equal(t, Cell{0, 0}, p.Position(), "kind %s", k)
		}
	}
}

func TestRotateUsesFirstValidKick(t *testing.T) {
	g := NewGrid(10, 20)
	// Blocks the unkicked rotation and the first kick (-1, 0).
	g.set(Cell{-4, -1}, TileZ)
	g.set(Cell{-5, -1}, TileZ)

	p := newTestPiece(g, KindT, Cell{-4, 0})

	require.True(t, p.Rotate(1))
	assert.Equal(t, 1, p.Rotation())
	// Third candidate (-1, 1) wins although later ones would also fit.
	assert.Equal(t, Cell{-5, 1}, p.Position())
}

func TestRotatePrefersEarlierKick(t *testing.T) {
	g := NewGrid(10, 20)
	g.set(Cell{-4, -1}, TileZ)

	p := newTestPiece(g, KindT, Cell{-4, 0})

	require.True(t, p.Rotate(1))
	assert.Equal(t, Cell{-5, 0}, p.Position())
}

func TestRotateRevertsWhenNoKickFits(t *testing.T) {
	g := NewGrid(10, 20)
	pos := Cell{0, 0}
	own := make(map[Cell]bool)
	for _, c := range Lookup(KindT).Cells {
		own[c.Add(pos)] = true
	}
	b := g.Bounds()
	for y := b.Y; y < b.Bottom(); y++ {
		for x := b.X; x < b.Right(); x++ {
			if !own[Cell{x, y}] {
				g.set(Cell{x, y}, TileJ)
			}
		}
	}

	p := newTestPiece(g, KindT, pos)
	p.lockTimer = 200 * time.Millisecond
	before := *p

	for _, dir := range []int{1, -1} {
		assert.False(t, p.Rotate(dir))
		assert.Equal(t, before.rotation, p.rotation)
		assert.Equal(t, before.cells, p.cells)
		assert.Equal(t, before.position, p.position)
		assert.Equal(t, before.lockTimer, p.lockTimer)
	}
}

func TestHardDropMatchesRepeatedMoveDown(t *testing.T) {
	setup := func() *Grid {
		g := NewGrid(10, 20)
		g.set(Cell{0, -3}, TileL)
		g.set(Cell{3, -7}, TileL)
		return g
	}

	for _, k := range Kinds {
		a := newTestPiece(setup(), k, Cell{0, 8})
		a.HardDrop()

		b := newTestPiece(setup(), k, Cell{0, 8})
		for b.Move(Down) {
		}

		assert.Equal(t, b.Position(), a.Position(), "kind %s", k)
		assert.False(t, a.Move(Down))
	}
}

func TestTickWaitsForStepTimer(t *testing.T) {
	g := NewGrid(10, 20)
	p := newTestPiece(g, KindT, Cell{0, 0})

	p.Tick(900*time.Millisecond, 900*time.Millisecond, IntentNone)
	assert.Equal(t, Cell{0, 0}, p.Position())

	p.Tick(100*time.Millisecond, time.Second, IntentNone)
	assert.Equal(t, Cell{0, -1}, p.Position())
	assert.Equal(t, 2*time.Second, p.stepTimer)
	assert.False(t, p.Locked(), "a successful gravity step resets the lock timer")
}

func TestTickLocksRestingPiece(t *testing.T) {
	g := NewGrid(10, 20)
	locked := 0
	p := NewPiece(g, KindT, Cell{0, -10}, 0, testStep, testLock, func(*Piece) { locked++ })

	p.Tick(time.Second, time.Second, IntentNone)

	assert.True(t, p.Locked())
	assert.Equal(t, 1, locked)
	assert.Equal(t, 4, g.Len())

	// Further ticks are ignored.
	p.Tick(time.Second, 2*time.Second, IntentMoveLeft)
	assert.Equal(t, 1, locked)
	assert.Equal(t, Cell{0, -10}, p.Position())
}

func TestTickMoveDefersLock(t *testing.T) {
	g := NewGrid(10, 20)
	p := newTestPiece(g, KindT, Cell{0, -10})

	p.Tick(900*time.Millisecond, 900*time.Millisecond, IntentMoveLeft)
	require.Equal(t, Cell{-1, -10}, p.Position())

	p.Tick(100*time.Millisecond, time.Second, IntentNone)
	assert.False(t, p.Locked(), "lock timer restarted by the move")

	p.Tick(time.Second, 2*time.Second, IntentNone)
	assert.True(t, p.Locked())
}

func TestTickDispatchesIntents(t *testing.T) {
	tests := []struct {
		intent   Intent
		position Cell
		rotation int
	}{
		{IntentNone, Cell{0, 0}, 0},
		{IntentMoveLeft, Cell{-1, 0}, 0},
		{IntentMoveRight, Cell{1, 0}, 0},
		{IntentSoftDrop, Cell{0, -1}, 0},
		{IntentHardDrop, Cell{0, -10}, 0},
		{IntentRotateCW, Cell{0, 0}, 1},
		{IntentRotateCCW, Cell{0, 0}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.intent.String(), func(t *testing.T) {
			g := NewGrid(10, 20)
			p := newTestPiece(g, KindT, Cell{0, 0})
			p.Tick(time.Millisecond, time.Millisecond, tc.intent)
			assert.Equal(t, tc.position, p.Position())
			assert.Equal(t, tc.rotation, p.Rotation())
		})
	}
}
