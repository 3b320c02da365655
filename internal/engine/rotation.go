package engine

import "math"

// rotationMatrix is {cos 90, sin 90, -sin 90, cos 90}. With a y-up board and
// direction +1 it turns offsets clockwise, which is the order the kick
// tables are written in.
var rotationMatrix = [4]float64{0, 1, -1, 0}

// rotateCell applies the rotation matrix scaled by direction to one offset.
// I and O pivot around the center of their bounding box, so their offsets are
// shifted by half a cell and rounded up instead of to nearest.
func rotateCell(kind Kind, c Cell, direction int) Cell {
	d := float64(direction)
	x, y := float64(c.X), float64(c.Y)

	switch kind {
	case KindI, KindO:
		x -= 0.5
		y -= 0.5
		return Cell{
			X: int(math.Ceil(x*rotationMatrix[0]*d + y*rotationMatrix[1]*d)),
			Y: int(math.Ceil(x*rotationMatrix[2]*d + y*rotationMatrix[3]*d)),
		}
	default:
		return Cell{
			X: int(math.Round(x*rotationMatrix[0]*d + y*rotationMatrix[1]*d)),
			Y: int(math.Round(x*rotationMatrix[2]*d + y*rotationMatrix[3]*d)),
		}
	}
}

// rotateCells rotates all four offsets in place.
func rotateCells(kind Kind, cells *[4]Cell, direction int) {
	for i := range cells {
		cells[i] = rotateCell(kind, cells[i], direction)
	}
}

// kickIndex selects the kick table row for a transition out of oldIndex.
func kickIndex(oldIndex, direction, rows int) int {
	idx := oldIndex * 2
	if direction < 0 {
		idx--
	}
	return wrap(idx, 0, rows)
}

// wrap folds v into [lo, hi).
func wrap(v, lo, hi int) int {
	n := hi - lo
	return ((v-lo)%n+n)%n + lo
}
