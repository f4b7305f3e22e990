// Package core provides fundamental types for the platformer simulation.
// It contains no external dependencies to keep simulation logic pure and
// testable.
package core

import (
	"fmt"
	"math"
)

// Vector is an immutable 2D value. All operations return a new Vector.
type Vector struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vector{}

// NewVector creates a vector from its components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Plus returns the component-wise sum of v and other.
func (v Vector) Plus(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Times returns v scaled by k.
func (v Vector) Times(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Box is an axis-aligned bounding box with its top-left corner at Pos.
// The Y axis points down: Top < Bottom.
type Box struct {
	Pos  Vector
	Size Vector
}

// NewBox creates a box from a position and a size.
func NewBox(pos, size Vector) Box {
	return Box{Pos: pos, Size: size}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.Pos.X
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Pos.Y
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Pos.X + b.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Pos.Y + b.Size.Y
}

// Intersects returns true if this box overlaps with another.
// Edges that only touch do not count as an overlap.
func (b Box) Intersects(other Box) bool {
	return b.Left() < other.Right() &&
		b.Right() > other.Left() &&
		b.Top() < other.Bottom() &&
		b.Bottom() > other.Top()
}

// Cells returns the half-open tile ranges [x0, x1) and [y0, y1) covered by
// the box.
func (b Box) Cells() (x0, x1, y0, y1 int) {
	x0 = int(math.Floor(b.Left()))
	x1 = int(math.Ceil(b.Right()))
	y0 = int(math.Floor(b.Top()))
	y1 = int(math.Ceil(b.Bottom()))
	return x0, x1, y0, y1
}
