package primitive

import (
	"fmt"
	"image"
	"math"
)

// Point is a position in logical coordinates.
type Point struct {
	X, Y float32
}

// Vector is a displacement.
type Vector struct {
	X, Y float32
}

// Size is a width and height.
type Size struct {
	Width, Height float32
}

// Rectangle is an axis-aligned rectangle with its origin at the top-left.
type Rectangle struct {
	X, Y          float32
	Width, Height float32
}

// NewRectangle creates a rectangle from an origin and a size.
func NewRectangle(origin Point, size Size) Rectangle {
	return Rectangle{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Add returns the point displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Origin returns the top-left corner.
func (r Rectangle) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle dimensions.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Max returns the bottom-right corner.
func (r Rectangle) Max() Point {
	return Point{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Scale multiplies every component by f.
func (r Rectangle) Scale(f float32) Rectangle {
	return Rectangle{X: r.X * f, Y: r.Y * f, Width: r.Width * f, Height: r.Height * f}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Image converts r to integer pixel coordinates, truncating every edge
// toward zero.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(
		int(r.X), int(r.Y),
		int(r.X+r.Width), int(r.Y+r.Height),
	)
}

// IsFinite reports whether every component is a finite number.
func (r Rectangle) IsFinite() bool {
	for _, v := range [...]float32{r.X, r.Y, r.Width, r.Height} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}
