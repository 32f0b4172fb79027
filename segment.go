package hermite

import "math"

// boundaryEpsilon is the distance from 0 or 1 within which a local parameter
// is considered to lie exactly on a segment boundary.
const boundaryEpsilon = 1e-9

var _ ParametricCurve = Segment{}
var _ Arclener = Segment{}

// Segment is a cubic Hermite segment, defined by its two end points and the
// tangents at those points.
type Segment struct {
	P0 Point
	P1 Point
	T0 Vec2
	T1 Vec2
}

// hermiteBasis returns the four cubic Hermite basis functions at t, in the
// order P0, P1, T0, T1.
func hermiteBasis(t float64) [4]float64 {
	t2 := t * t
	t3 := t2 * t
	return [4]float64{
		2*t3 - 3*t2 + 1,
		-2*t3 + 3*t2,
		t3 - 2*t2 + t,
		t3 - t2,
	}
}

// hermiteBasisDeriv returns the derivatives of [hermiteBasis] at t.
func hermiteBasisDeriv(t float64) [4]float64 {
	t2 := t * t
	return [4]float64{
		6*t2 - 6*t,
		-6*t2 + 6*t,
		3*t2 - 4*t + 1,
		3*t2 - 2*t,
	}
}

func (s Segment) combine(h [4]float64) Vec2 {
	return Vec2(s.P0).Mul(h[0]).
		Add(Vec2(s.P1).Mul(h[1])).
		Add(s.T0.Mul(h[2])).
		Add(s.T1.Mul(h[3]))
}

// Eval returns the position at local parameter t.
//
// Parameters within a small epsilon of 0 or 1 return P0 or P1 exactly, so
// that adjacent segments of a spline meet without roundoff.
func (s Segment) Eval(t float64) Point {
	switch {
	case math.Abs(t) < boundaryEpsilon:
		return s.P0
	case math.Abs(t-1) < boundaryEpsilon:
		return s.P1
	}
	return Point(s.combine(hermiteBasis(t)))
}

// Deriv returns the first derivative with respect to the local parameter t.
// It is not normalized.
func (s Segment) Deriv(t float64) Vec2 {
	switch {
	case math.Abs(t) < boundaryEpsilon:
		return s.T0
	case math.Abs(t-1) < boundaryEpsilon:
		return s.T1
	}
	return s.combine(hermiteBasisDeriv(t))
}

func (s Segment) Start() Point { return s.P0 }
func (s Segment) End() Point   { return s.P1 }

// Bezier returns the cubic Bézier that traces exactly the same curve.
func (s Segment) Bezier() CubicBez {
	return CubicBez{
		P0: s.P0,
		P1: s.P0.Translate(s.T0.Div(3)),
		P2: s.P1.Translate(s.T1.Div(3).Negate()),
		P3: s.P1,
	}
}

// Arclen returns the length of the segment.
func (s Segment) Arclen(accuracy float64) float64 {
	return s.Bezier().Arclen(accuracy)
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// segment.
func (s Segment) BoundingBox() Rect {
	return s.Bezier().BoundingBox()
}
