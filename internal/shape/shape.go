// Package shape defines the closed set of shape variants and their metrics.
package shape

import "math"

// Pi is the constant used for circle metrics. It is deliberately truncated
// to five decimal places; every circle area and perimeter in existing
// reports depends on this exact value.
const Pi = 3.14159

// Kind identifies a concrete shape variant. Its string value is the name
// printed for the shape in reports.
type Kind string

const (
	KindCircle    Kind = "Circle"
	KindRectangle Kind = "Rectangle"
	KindSquare    Kind = "Square"
	KindTriangle  Kind = "Triangle"
)

// Shape is the capability set shared by every variant. Area and Perimeter
// are pure functions of the variant's immutable attributes; no variant
// validates its inputs, so a geometrically impossible triangle reports a
// NaN area rather than an error.
type Shape interface {
	// Kind returns which variant this shape is.
	Kind() Kind

	// Area returns the enclosed area.
	Area() float64

	// Perimeter returns the boundary length.
	Perimeter() float64
}

// Polygon is the sub-capability of straight-sided variants. Circle does not
// implement it; Rectangle, Square and Triangle do.
type Polygon interface {
	Shape

	// Sides returns the number of sides, fixed at construction.
	Sides() int
}

// AsPolygon reports whether s is a polygon variant, returning the polygon
// view when it is.
func AsPolygon(s Shape) (Polygon, bool) {
	p, ok := s.(Polygon)
	return p, ok
}

// Circle is a shape defined by its radius.
type Circle struct {
	Radius float64
}

// NewCircle returns a circle with the given radius.
func NewCircle(radius float64) Circle {
	return Circle{Radius: radius}
}

func (c Circle) Kind() Kind         { return KindCircle }
func (c Circle) Area() float64      { return Pi * c.Radius * c.Radius }
func (c Circle) Perimeter() float64 { return 2 * Pi * c.Radius }

// Rectangle is a four-sided shape defined by length and width.
type Rectangle struct {
	Length float64
	Width  float64
}

// NewRectangle returns a rectangle with the given length and width.
func NewRectangle(length, width float64) Rectangle {
	return Rectangle{Length: length, Width: width}
}

func (r Rectangle) Kind() Kind         { return KindRectangle }
func (r Rectangle) Area() float64      { return r.Length * r.Width }
func (r Rectangle) Perimeter() float64 { return 2 * (r.Length + r.Width) }
func (r Rectangle) Sides() int         { return 4 }

// Square is a rectangle whose length and width are the same side value.
type Square struct {
	Rectangle
}

// NewSquare returns a square with the given side.
func NewSquare(side float64) Square {
	return Square{Rectangle: NewRectangle(side, side)}
}

func (s Square) Kind() Kind { return KindSquare }

// Triangle is a three-sided shape defined by its side lengths.
type Triangle struct {
	SideA float64
	SideB float64
	SideC float64
}

// NewTriangle returns a triangle with the given side lengths.
func NewTriangle(a, b, c float64) Triangle {
	return Triangle{SideA: a, SideB: b, SideC: c}
}

func (t Triangle) Kind() Kind { return KindTriangle }

// Area computes the triangle's area by Heron's formula in expanded form.
// If the sides violate the triangle inequality the product under the root
// is negative and the result is NaN.
func (t Triangle) Area() float64 {
	a, b, c := t.SideA, t.SideB, t.SideC
	return 0.25 * math.Sqrt((a+b+c)*(-a+b+c)*(a-b+c)*(a+b-c))
}

func (t Triangle) Perimeter() float64 { return t.SideA + t.SideB + t.SideC }
func (t Triangle) Sides() int         { return 3 }
