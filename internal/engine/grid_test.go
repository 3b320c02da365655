package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid(10, 20)

	b := g.Bounds()
	assert.Equal(t, -5, b.X)
	assert.Equal(t, -10, b.Y)
	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 20, g.Height())

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"bottom-left corner", Cell{-5, -10}, true},
		{"top-right corner", Cell{4, 9}, true},
		{"origin", Cell{0, 0}, true},
		{"right of board", Cell{5, 0}, false},
		{"left of board", Cell{-6, 0}, false},
		{"above board", Cell{0, 10}, false},
		{"below board", Cell{0, -11}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, g.InBounds(tc.cell))
		})
	}
}

func TestCellKeyRoundTrip(t *testing.T) {
	for _, c := range []Cell{{0, 0}, {-5, -10}, {4, 9}, {-1, 1}, {1, -1}, {-2147483648, 2147483647}} {
		assert.Equal(t, c, keyCell(cellKey(c)))
	}
	assert.NotEqual(t, cellKey(Cell{1, -1}), cellKey(Cell{-1, 1}))
}

func TestIsValidPlacement(t *testing.T) {
	g := NewGrid(10, 20)
	g.set(Cell{0, 0}, TileT)

	tCells := Lookup(KindT).Cells

	tests := []struct {
		name     string
		position Cell
		expected bool
	}{
		{"open space", Cell{0, 5}, true},
		{"overlaps occupied cell", Cell{0, 0}, false},
		{"occupied cell under nub", Cell{0, -1}, false},
		{"against left wall", Cell{-4, 5}, true},
		{"through left wall", Cell{-5, 5}, false},
		{"through right wall", Cell{4, 5}, false},
		{"through floor", Cell{0, -11}, false},
		{"through ceiling", Cell{0, 9}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, g.IsValidPlacement(tCells, tc.position))
		})
	}
}

func TestCommitReleaseRestore(t *testing.T) {
	g := NewGrid(10, 20)
	cells := Lookup(KindO).Cells
	pos := Cell{0, -10}

	g.Commit(cells, pos, TileO)
	require.Equal(t, 4, g.Len())
	for _, c := range cells {
		tile, ok := g.Tile(c.Add(pos))
		require.True(t, ok)
		assert.Equal(t, TileO, tile)
	}
	assert.False(t, g.IsValidPlacement(cells, pos))

	lifted := g.Release(cells, pos)
	assert.Equal(t, 4, lifted.Len())
	assert.Equal(t, 0, g.Len())
	assert.True(t, g.IsValidPlacement(cells, pos))

	g.Restore(lifted)
	assert.Equal(t, 4, g.Len())
	assert.True(t, g.IsOccupied(Cell{1, -9}))
}

func TestReleaseOnlyLiftsOccupiedCells(t *testing.T) {
	g := NewGrid(10, 20)
	g.set(Cell{0, 0}, TileS)

	lifted := g.Release(Lookup(KindT).Cells, Cell{0, 0})
	assert.Equal(t, 1, lifted.Len())
	assert.Equal(t, 0, g.Len())

	g.Restore(lifted)
	tile, ok := g.Tile(Cell{0, 0})
	require.True(t, ok)
	assert.Equal(t, TileS, tile, "restore should put back the original tile")
	assert.Equal(t, 1, g.Len())
}

func TestGridEachAndReset(t *testing.T) {
	g := NewGrid(10, 20)
	g.Commit(Lookup(KindI).Cells, Cell{0, -11}, TileI)

	seen := make(map[Cell]TileID)
	g.Each(func(c Cell, tile TileID) {
		seen[c] = tile
	})
	assert.Len(t, seen, 4)
	assert.Equal(t, TileI, seen[Cell{-1, -10}])
	assert.Equal(t, TileI, seen[Cell{2, -10}])

	g.Reset()
	assert.Equal(t, 0, g.Len())
}
