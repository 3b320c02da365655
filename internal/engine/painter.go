package engine

// Painter receives visual updates from a Session. The session never reads
// anything back from it. Implementations must not retain the cells slice
// past the call.
type Painter interface {
	// Paint draws cells with the given tile.
	Paint(cells []Cell, tile TileID)
	// Erase removes whatever was drawn at cells.
	Erase(cells []Cell)
}

type nopPainter struct{}

func (nopPainter) Paint([]Cell, TileID) {}
func (nopPainter) Erase([]Cell)         {}
