// Package hermite provides 2D piecewise cubic Hermite splines that pass
// through a sequence of control points without the caller having to provide
// tangents.
//
// # Splines
//
// A [Spline] stores an ordered list of control points. The tangent at each
// point is derived from its neighbours and scaled by the spline's curvature:
// a curvature of 0 connects the points with straight lines, while the
// default of 0.5 ([DefaultCurvature]) produces a Catmull-Rom spline. Open
// splines have one segment fewer than they have points; closed splines
// connect the last point back to the first.
//
// Points can be appended, inserted, removed and replaced at any time.
// Derived data (tangents and the arc-length table) is recomputed lazily,
// the next time a query needs it.
//
// # Parametrization
//
// [Spline.Eval] and [Spline.Deriv] take a global parameter t ∈ [0, 1] that
// spans the whole spline, with every segment covering an equal share of it.
// Because segments differ in length, equal steps in t don't correspond to
// equal distances along the spline. [Spline.DistanceToParameter] maps a
// distance to a parameter using a table of chord lengths, sampled
// [Spline.SamplesPerSegment] times per segment. [Spline.EvalAtDistance] and
// [Spline.Samples] build on it to move along the spline at constant speed.
//
// # Segments and Béziers
//
// Each segment is a [Segment], which evaluates the cubic Hermite basis
// directly. Every Hermite segment is also a cubic Bézier ([CubicBez]);
// [Spline.PathElements] converts a spline into a Bézier path, which [SVG]
// formats as SVG path data. [Spline.Arclen] uses the Bézier form to measure
// the spline with Legendre-Gauss quadrature, independently of the sampled
// table.
package hermite
