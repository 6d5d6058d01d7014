// Package core provides the cell canvas, input frames and runtime settings
// shared by games and the terminal platform. It has no Bubble Tea imports.
package core

import "cmp"

// Rect is a cell-space rectangle; X/Y is the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether two rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return spansOverlap(r.X, r.Right(), other.X, other.Right()) &&
		spansOverlap(r.Y, r.Bottom(), other.Y, other.Bottom())
}

// spansOverlap reports whether half-open spans [a0, a1) and [b0, b1) meet.
func spansOverlap(a0, a1, b0, b1 int) bool {
	return a0 < b1 && b0 < a1
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
