// Package core holds the terminal-facing primitives shared by games and the
// platform layer: screen buffers, colors, input frames and runtime settings.
// It has no external dependencies so games stay testable without Bubble Tea.
package core

// Rect is an axis-aligned rectangle. Y grows in whichever direction the
// owner uses: down on a Screen, up on a game board.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at (x, y) with the given size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first x past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first y past the rectangle. On a y-up board this is
// the row just above the top.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the half-open rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Centered returns a w x h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
