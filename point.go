package hermite

import (
	"fmt"
	"math"
)

// Point is a position in the curve's local 2D space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt moved by o.
func (pt Point) Translate(o Vec2) Point {
	return Point{X: pt.X + o.X, Y: pt.Y + o.Y}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}
