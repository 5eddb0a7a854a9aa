// Package core provides fundamental types and utilities shared by the game and
// its hosts. It contains no external dependencies (especially no Bubble Tea or
// ebiten) to keep game logic pure and testable.
package core

// Point is a position in canvas pixel space.
type Point struct {
	X, Y float64
}

// Rect represents an axis-aligned box in canvas pixel space.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// SpansInside reports whether the horizontal span [left, right] lies strictly
// inside the rectangle's horizontal span. Touching an edge does not count.
func (r Rect) SpansInside(left, right float64) bool {
	return left > r.X && right < r.Right()
}

// OverlapsVertically reports whether the vertical span [top, bottom] strictly
// overlaps the rectangle's vertical span.
func (r Rect) OverlapsVertically(top, bottom float64) bool {
	return bottom > r.Y && top < r.Bottom()
}

// ClampF restricts a float64 value to be within [min, max].
// When max < min the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}
