// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in world units.
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

// Offset returns a copy of the rectangle moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that merely touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// biasedCenter returns the reference point used by ResolvePenetration:
// one eighth of the extent in from the top-left corner, not the geometric center.
func (r Rect) biasedCenter() (float64, float64) {
	return r.X + r.W/8, r.Y + r.H/8
}

// CollisionSide tags the outcome of a horizontal resolution.
type CollisionSide int

const (
	CollisionNone  CollisionSide = iota
	CollisionLeft                // a sits left of b and is pushed left
	CollisionRight               // a sits right of b and is pushed right
)

// String returns a human-readable name for the side.
func (s CollisionSide) String() string {
	switch s {
	case CollisionNone:
		return "None"
	case CollisionLeft:
		return "Left"
	case CollisionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Dir returns the push direction for the side: -1 for Left, +1 for Right.
func (s CollisionSide) Dir() float64 {
	switch s {
	case CollisionLeft:
		return -1
	case CollisionRight:
		return 1
	default:
		return 0
	}
}

// ResolvePenetration returns the correction that moves a out of b along a
// single axis. The axis is the one with the larger delta between the biased
// centers; the correction is the true overlap on that axis, signed by the delta.
// Returns (0, 0) when the rectangles do not intersect.
func ResolvePenetration(a, b Rect) (dx, dy float64) {
	if !a.Intersects(b) {
		return 0, 0
	}

	ax, ay := a.biasedCenter()
	bx, by := b.biasedCenter()
	deltaX := ax - bx
	deltaY := ay - by

	if math.Abs(deltaX) > math.Abs(deltaY) {
		if deltaX > 0 {
			return b.Right() - a.X, 0
		}
		return -(a.Right() - b.X), 0
	}

	if deltaY > 0 {
		return 0, b.Bottom() - a.Y
	}
	return 0, -(a.Bottom() - b.Y)
}

// ResolveHorizontalPenetration compares how far a reaches into b from the left
// and from the right. The smaller overlap decides the side; ties resolve Left.
// The returned dx is the signed distance that would separate the rectangles.
func ResolveHorizontalPenetration(a, b Rect) (dx float64, side CollisionSide) {
	leftOverlap := a.Right() - b.X
	rightOverlap := b.Right() - a.X

	if math.Abs(leftOverlap) <= math.Abs(rightOverlap) {
		return -leftOverlap, CollisionLeft
	}
	return rightOverlap, CollisionRight
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
