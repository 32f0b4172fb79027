package hermite

import (
	"math"
	"sort"
)

var _ ParametricCurve = CubicBez{}
var _ Arclener = CubicBez{}

// CubicBez is a cubic Bézier segment. Every Hermite [Segment] has an exact
// CubicBez equivalent, see [Segment.Bezier].
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the first derivative of the curve at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	return d01.Mul(3 * mt * mt).
		Add(d12.Mul(6 * mt * t)).
		Add(d23.Mul(3 * t * t))
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Lerp(c.P1, 0.5),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Lerp(c.P3, 0.5),
			c.P3,
		}
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		est += wi * ddNorm2 / dNorm2
	}
	if math.IsNaN(est) {
		// dNorm2 is 0 for degenerate segments, such as those of a spline
		// with curvature 0 and coincident points.
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm Vec2, dm1 Vec2, dm2 Vec2) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += 1.5 * wi * (dpx + dmx)
	}
	return sum
}

// Extrema returns the parameters in (0, 1) at which the curve has an
// extremum in x or y, in increasing order.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}
