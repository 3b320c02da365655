package engine

// ClearLines removes every full row, collapsing the rows above it.
// Rows are scanned bottom-up and a cleared row index is tested again, so
// adjacent full rows fall into place in a single pass.
// Returns the number of rows removed.
func (g *Grid) ClearLines() int {
	cleared := 0
	row := g.bounds.Y
	for row < g.top() {
		if g.lineFull(row) {
			g.clearLine(row)
			cleared++
			continue
		}
		row++
	}
	return cleared
}

// lineFull reports whether every column of row is occupied.
func (g *Grid) lineFull(row int) bool {
	for col := g.bounds.X; col < g.bounds.Right(); col++ {
		if !g.IsOccupied(Cell{X: col, Y: row}) {
			return false
		}
	}
	return true
}

// clearLine empties row and shifts everything above it down by one.
// The topmost row copies from outside the board and ends empty.
func (g *Grid) clearLine(row int) {
	for col := g.bounds.X; col < g.bounds.Right(); col++ {
		g.set(Cell{X: col, Y: row}, TileNone)
	}

	for ; row < g.top(); row++ {
		for col := g.bounds.X; col < g.bounds.Right(); col++ {
			above, _ := g.Tile(Cell{X: col, Y: row + 1})
			g.set(Cell{X: col, Y: row}, above)
		}
	}
}
