// Package engine implements the falling-block rules: board occupancy,
// rotation with wall kicks, line clears and the ghost projection.
// It has no knowledge of terminals or Bubble Tea; the platform layer drives
// it through Session.Tick and observes it through a Painter.
package engine

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Board is the capability a Piece holds into the grid.
// It is deliberately narrower than *Grid.
type Board interface {
	IsValidPlacement(cells [4]Cell, position Cell) bool
	Commit(cells [4]Cell, position Cell, tile TileID)
	Release(cells [4]Cell, position Cell) Lifted
	Restore(l Lifted)
}

// Lifted records the tiles removed by Release so they can be put back.
type Lifted struct {
	cells [4]Cell
	tiles [4]TileID
	n     int
}

// Len returns how many cells were actually removed.
func (l Lifted) Len() int {
	return l.n
}

// Grid holds the locked cells of a width x height board centered on the
// origin. Only locked cells are stored; the falling piece and its ghost live
// outside the grid.
type Grid struct {
	bounds core.Rect
	tiles  *intmap.Map[uint64, TileID]
}

// NewGrid creates an empty grid. Bounds start at (-width/2, -height/2).
func NewGrid(width, height int) *Grid {
	return &Grid{
		bounds: core.NewRect(-width/2, -height/2, width, height),
		tiles:  intmap.New[uint64, TileID](width * height),
	}
}

// cellKey packs a cell into a map key. Both halves keep their sign bits.
func cellKey(c Cell) uint64 {
	return uint64(uint32(int32(c.X)))<<32 | uint64(uint32(int32(c.Y)))
}

// keyCell reverses cellKey.
func keyCell(k uint64) Cell {
	return Cell{X: int(int32(uint32(k >> 32))), Y: int(int32(uint32(k)))}
}

// Bounds returns the board rectangle. Right and Bottom are exclusive.
func (g *Grid) Bounds() core.Rect {
	return g.bounds
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.bounds.W
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.bounds.H
}

// InBounds reports whether c lies inside the board.
func (g *Grid) InBounds(c Cell) bool {
	return g.bounds.Contains(c.X, c.Y)
}

// IsOccupied reports whether a locked tile sits at c.
func (g *Grid) IsOccupied(c Cell) bool {
	return g.tiles.Has(cellKey(c))
}

// Tile returns the tile locked at c.
func (g *Grid) Tile(c Cell) (TileID, bool) {
	return g.tiles.Get(cellKey(c))
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return g.tiles.Len()
}

// IsValidPlacement reports whether every cell, translated by position, is in
// bounds and free.
func (g *Grid) IsValidPlacement(cells [4]Cell, position Cell) bool {
	for _, c := range cells {
		p := c.Add(position)
		if !g.InBounds(p) || g.IsOccupied(p) {
			return false
		}
	}
	return true
}

// Commit locks the translated cells with the given tile.
func (g *Grid) Commit(cells [4]Cell, position Cell, tile TileID) {
	for _, c := range cells {
		g.set(c.Add(position), tile)
	}
}

// Release removes the translated cells and returns what was there.
func (g *Grid) Release(cells [4]Cell, position Cell) Lifted {
	var l Lifted
	for _, c := range cells {
		p := c.Add(position)
		if tile, ok := g.tiles.Get(cellKey(p)); ok {
			g.tiles.Del(cellKey(p))
			l.cells[l.n] = p
			l.tiles[l.n] = tile
			l.n++
		}
	}
	return l
}

// Restore puts back the tiles removed by a Release.
func (g *Grid) Restore(l Lifted) {
	for i := 0; i < l.n; i++ {
		g.set(l.cells[i], l.tiles[i])
	}
}

// Each calls fn for every occupied cell. Iteration order is undefined.
func (g *Grid) Each(fn func(c Cell, tile TileID)) {
	g.tiles.ForEach(func(k uint64, tile TileID) bool {
		fn(keyCell(k), tile)
		return true
	})
}

// Reset empties the grid.
func (g *Grid) Reset() {
	g.tiles.Clear()
}

// set writes a tile, or clears the cell for TileNone.
func (g *Grid) set(c Cell, tile TileID) {
	if tile == TileNone {
		g.tiles.Del(cellKey(c))
		return
	}
	g.tiles.Put(cellKey(c), tile)
}

// top returns the exclusive upper row bound. Rect calls it Bottom because
// screens grow downward; the board grows upward.
func (g *Grid) top() int {
	return g.bounds.Bottom()
}
