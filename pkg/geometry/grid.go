package geometry

import "math"

// SnapNearest quantizes p to the nearest multiple of cell on each axis,
// rounding halves away from zero. Idempotent for any cell > 0.
// This is the settle-time policy: a dragged item lands on the closest
// cell corner.
func SnapNearest(p Point2D, cell float64) Point2D {
	return Point2D{
		X: math.Round(p.X/cell) * cell,
		Y: math.Round(p.Y/cell) * cell,
	}
}

// SnapFloor quantizes p down to the corner of the cell containing it:
// each coordinate becomes the nearest multiple of cell at or below it,
// for negative coordinates included. This is the drop-time policy: a
// fresh component lands in the cell under the cursor.
func SnapFloor(p Point2D, cell float64) Point2D {
	return Point2D{
		X: math.Floor(p.X/cell) * cell,
		Y: math.Floor(p.Y/cell) * cell,
	}
}
