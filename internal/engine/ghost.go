package engine

// Ghost is the projection of where the active piece would land.
// Projecting never changes the piece, and the board ends every projection
// with the same occupancy it started with.
type Ghost struct {
	board    Board
	floor    int // lowest row the scan may reach
	cells    [4]Cell
	position Cell
}

// NewGhost creates a projector scanning no lower than floor.
func NewGhost(board Board, floor int) *Ghost {
	return &Ghost{board: board, floor: floor}
}

// Project recomputes the landing position for p.
func (g *Ghost) Project(p *Piece) {
	g.cells = p.cells
	g.position = p.position

	// The piece must not collide with itself if it has been committed.
	lifted := g.board.Release(p.cells, p.position)
	defer g.board.Restore(lifted)

	pos := p.position
	for row := p.position.Y; row >= g.floor; row-- {
		pos.Y = row
		if !g.board.IsValidPlacement(g.cells, pos) {
			break
		}
		g.position = pos
	}
}

// Cells returns the projected offsets.
func (g *Ghost) Cells() [4]Cell {
	return g.cells
}

// Position returns the projected anchor.
func (g *Ghost) Position() Cell {
	return g.position
}

// Absolute returns the projected cells in board coordinates.
func (g *Ghost) Absolute() [4]Cell {
	return absolute(g.cells, g.position)
}

// absolute translates offsets by position.
func absolute(cells [4]Cell, position Cell) [4]Cell {
	var out [4]Cell
	for i, c := range cells {
		out[i] = c.Add(position)
	}
	return out
}
