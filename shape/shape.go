package shape

import (
	"fmt"
	"math"
)

// Kind tags a Shape variant.
type Kind int

const (
	// KindCircle is a circle defined by its radius.
	KindCircle Kind = iota
	// KindRectangle is an axis-aligned rectangle defined by width and height.
	KindRectangle
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is one variant of the closed shape set. The zero value is a circle
// with radius 0.
type Shape struct {
	kind   Kind
	radius float64
	width  float64
	height float64
}

// NewCircle returns a circle with the given radius.
func NewCircle(radius float64) Shape {
	return Shape{kind: KindCircle, radius: radius}
}

// NewRectangle returns a rectangle with the given width and height.
func NewRectangle(width, height float64) Shape {
	return Shape{kind: KindRectangle, width: width, height: height}
}

// Kind returns the variant tag.
func (s Shape) Kind() Kind {
	return s.kind
}

// Radius returns the radius of a circle, or 0 for other kinds.
func (s Shape) Radius() float64 {
	return s.radius
}

// Dims returns the width and height of a rectangle, or zeros for other kinds.
func (s Shape) Dims() (width, height float64) {
	return s.width, s.height
}

// Area returns the enclosed area.
func (s Shape) Area() float64 {
	switch s.kind {
	case KindCircle:
		return math.Pi * s.radius * s.radius
	case KindRectangle:
		return s.width * s.height
	}
	return 0
}

// Perimeter returns the boundary length.
func (s Shape) Perimeter() float64 {
	switch s.kind {
	case KindCircle:
		return 2 * math.Pi * s.radius
	case KindRectangle:
		return 2 * (s.width + s.height)
	}
	return 0
}

// Describe returns a human-readable rendering of the variant.
func (s Shape) Describe() string {
	switch s.kind {
	case KindCircle:
		return fmt.Sprintf("Circle(radius=%g)", s.radius)
	case KindRectangle:
		return fmt.Sprintf("Rectangle(%gx%g)", s.width, s.height)
	}
	return "Unknown shape"
}
