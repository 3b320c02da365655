package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGhostLandsOnFloor(t *testing.T) {
	g := NewGrid(10, 20)
	p := newTestPiece(g, KindT, Cell{-1, 8})
	ghost := NewGhost(g, g.Bounds().Y-1)

	ghost.Project(p)

	assert.Equal(t, Cell{-1, -10}, ghost.Position())
	assert.Equal(t, p.Cells(), ghost.Cells())
	assert.Equal(t, Cell{-1, 8}, p.Position(), "projection must not move the piece")
	assert.Equal(t, 0, g.Len())
}

func TestGhostLandsOnStack(t *testing.T) {
	g := NewGrid(10, 20)
	g.set(Cell{-1, -5}, TileL)
	p := newTestPiece(g, KindT, Cell{-1, 8})
	ghost := NewGhost(g, g.Bounds().Y-1)

	ghost.Project(p)

	assert.Equal(t, Cell{-1, -4}, ghost.Position())
	assert.Equal(t, [4]Cell{{-1, -3}, {-2, -4}, {-1, -4}, {0, -4}}, ghost.Absolute())
}

func TestGhostIgnoresCommittedPieceCells(t *testing.T) {
	g := NewGrid(10, 20)
	p := newTestPiece(g, KindI, Cell{0, 0})
	g.Commit(p.Cells(), p.Position(), p.Tile())
	ghost := NewGhost(g, g.Bounds().Y-1)

	ghost.Project(p)

	assert.Equal(t, Cell{0, -11}, ghost.Position())
	assert.Equal(t, 4, g.Len(), "released cells must be restored")
	for _, c := range p.Cells() {
		assert.True(t, g.IsOccupied(c.Add(p.Position())))
	}
}

func TestGhostMatchesHardDrop(t *testing.T) {
	for _, k := range Kinds {
		g := NewGrid(10, 20)
		g.set(Cell{1, -6}, TileS)
		g.set(Cell{-2, -8}, TileS)

		p := newTestPiece(g, k, Cell{0, 8})
		p.Rotate(1)

		ghost := NewGhost(g, g.Bounds().Y-1)
		ghost.Project(p)

		p.HardDrop()
		assert.Equal(t, p.Position(), ghost.Position(), "kind %s", k)
		assert.Equal(t, p.Cells(), ghost.Cells(), "kind %s", k)
	}
}

func TestGhostOverlappingLockedTileRestoresIt(t *testing.T) {
	g := NewGrid(10, 20)
	p := newTestPiece(g, KindO, Cell{0, 0})
	g.set(Cell{0, 0}, TileZ)
	ghost := NewGhost(g, g.Bounds().Y-1)

	ghost.Project(p)

	// Overlapped cells are lifted like the piece's own, so the scan reaches the floor.
	assert.Equal(t, Cell{0, -10}, ghost.Position())
	assert.Equal(t, 1, g.Len())
	tile, ok := g.Tile(Cell{0, 0})
	assert.True(t, ok)
	assert.Equal(t, TileZ, tile)
}
