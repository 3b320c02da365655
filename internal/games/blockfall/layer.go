package blockfall

import "github.com/vovakirdan/blockfall/internal/engine"

// tileLayer is one tilemap the session paints into. Render reads it back
// to draw the board.
type tileLayer struct {
	tiles map[engine.Cell]engine.TileID
}

func newTileLayer() *tileLayer {
	return &tileLayer{tiles: make(map[engine.Cell]engine.TileID)}
}

func (l *tileLayer) Paint(cells []engine.Cell, tile engine.TileID) {
	for _, c := range cells {
		l.tiles[c] = tile
	}
}

func (l *tileLayer) Erase(cells []engine.Cell) {
	for _, c := range cells {
		delete(l.tiles, c)
	}
}

func (l *tileLayer) Len() int {
	return len(l.tiles)
}

func (l *tileLayer) Reset() {
	clear(l.tiles)
}
