// Package core provides fundamental types and utilities for the lanerush
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box anchored at its center.
// The simulation works on a virtual canvas in float units, so rects
// carry float coordinates; the platform projects them to cells.
type Rect struct {
	X, Y float64 // Center position
	W, H float64 // Width and height
}

// NewRect creates a rectangle centered at (x, y).
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X - r.W/2
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W/2
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y - r.H/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H/2
}

// Intersects returns true if this rectangle overlaps with another.
// Overlap requires separation smaller than the half-width sums on
// both axes; touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if math.Abs(r.X-other.X) >= (r.W+other.W)/2 {
		return false
	}
	if math.Abs(r.Y-other.Y) >= (r.H+other.H)/2 {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// CircleIntersectsRect returns true if the circle at (cx, cy) with the
// given radius overlaps the rectangle. Uses the closest-point test.
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	nearX := ClampF(cx, r.Left(), r.Right())
	nearY := ClampF(cy, r.Top(), r.Bottom())
	dx := cx - nearX
	dy := cy - nearY
	return dx*dx+dy*dy < radius*radius
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
