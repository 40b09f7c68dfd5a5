package xform

import "fmt"

// A Point is a mutable 2D coordinate pair. [Matrix.Apply] rewrites it in
// place.
type Point struct {
	X, Y float64
}

// Pt is shorthand for [Point]{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
