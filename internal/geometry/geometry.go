// Package geometry provides the small shape types used by the structs and
// generics tour sections.
package geometry

import "fmt"

// Rect is an axis-aligned rectangle with integer dimensions.
type Rect struct {
	Width  uint32
	Height uint32
}

// Square creates a Rect with equal sides.
func Square(size uint32) Rect {
	return Rect{Width: size, Height: size}
}

// Area returns the rectangle's area.
func (r Rect) Area() uint32 {
	return r.Width * r.Height
}

// CanHold reports whether other fits strictly inside r.
func (r Rect) CanHold(other Rect) bool {
	return r.Width > other.Width && r.Height > other.Height
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%dx%d)", r.Width, r.Height)
}

// Point is a 2D coordinate over any scalar type.
type Point[T any] struct {
	x T
	y T
}

// NewPoint creates a Point at (x, y).
func NewPoint[T any](x, y T) Point[T] {
	return Point[T]{x: x, y: y}
}

// X returns the horizontal coordinate.
func (p Point[T]) X() T { return p.x }

// Y returns the vertical coordinate.
func (p Point[T]) Y() T { return p.y }
