package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillRow(g *Grid, row int, tile TileID, skip ...int) {
	b := g.Bounds()
outer:
	for x := b.X; x < b.Right(); x++ {
		for _, s := range skip {
			if s == x {
				continue outer
			}
		}
		g.set(Cell{x, row}, tile)
	}
}

func TestClearBottomTwoRows(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, -10, TileI)
	fillRow(g, -9, TileO)
	g.set(Cell{0, -8}, TileT)
	g.set(Cell{3, 5}, TileS)
	g.set(Cell{2, 9}, TileZ)

	assert.Equal(t, 2, g.ClearLines())

	assert.Equal(t, 3, g.Len())
	for _, want := range []struct {
		cell Cell
		tile TileID
	}{
		{Cell{0, -10}, TileT},
		{Cell{3, 3}, TileS},
		{Cell{2, 7}, TileZ},
	} {
		tile, ok := g.Tile(want.cell)
		if assert.True(t, ok, "expected tile at %v", want.cell) {
			assert.Equal(t, want.tile, tile)
		}
	}

	for x := -5; x < 5; x++ {
		for _, y := range []int{8, 9} {
			assert.False(t, g.IsOccupied(Cell{x, y}), "top rows should be empty at (%d, %d)", x, y)
		}
	}
}

func TestClearSeparatedRows(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, -10, TileL)
	g.set(Cell{1, -9}, TileJ)
	fillRow(g, -8, TileL)

	assert.Equal(t, 2, g.ClearLines())
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.IsOccupied(Cell{1, -10}))
}

func TestClearIgnoresPartialRows(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, -10, TileL, 4)
	fillRow(g, 0, TileL, -5)

	assert.Equal(t, 0, g.ClearLines())
	assert.Equal(t, 18, g.Len())
}

func TestClearWholeBoard(t *testing.T) {
	g := NewGrid(10, 20)
	for y := -10; y < 10; y++ {
		fillRow(g, y, TileT)
	}

	assert.Equal(t, 20, g.ClearLines())
	assert.Equal(t, 0, g.Len())
}

func TestClearTopRow(t *testing.T) {
	g := NewGrid(4, 4)
	fillRow(g, 1, TileI)
	g.set(Cell{0, 0}, TileO)

	assert.Equal(t, 1, g.ClearLines())
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.IsOccupied(Cell{0, 0}), "rows below a cleared row stay put")
}
