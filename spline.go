package hermite

import (
	"fmt"
	"math"
)

const (
	// DefaultCurvature scales tangents so that the spline is a Catmull-Rom
	// spline.
	DefaultCurvature = 0.5
	// DefaultSamplesPerSegment is the default density of the arc-length
	// table.
	DefaultSamplesPerSegment = 5
)

// Options holds the shape parameters of a [Spline].
type Options struct {
	// Closed connects the last point back to the first.
	Closed bool
	// Curvature scales the automatically derived tangents. 0 produces
	// straight segments, 0.5 a Catmull-Rom spline.
	Curvature float64
	// SamplesPerSegment is the number of chords per segment used to
	// approximate arc length. Values below 1 select
	// [DefaultSamplesPerSegment].
	SamplesPerSegment int
}

// DefaultOptions returns the options used by [New].
func DefaultOptions() Options {
	return Options{
		Curvature:         DefaultCurvature,
		SamplesPerSegment: DefaultSamplesPerSegment,
	}
}

var _ ParametricCurve = (*Spline)(nil)
var _ Arclener = (*Spline)(nil)

// Spline is a piecewise cubic Hermite curve passing through a sequence of
// control points. Tangents are derived from neighbouring points, scaled by
// the curvature.
//
// Tangents and the arc-length table are computed lazily. Mutations only mark
// them stale; the next query that needs them rebuilds them in full. As a
// consequence, even read-only methods modify the Spline, and a Spline must
// not be used from multiple goroutines without external synchronization.
//
// A spline needs at least two points to have a shape. With fewer points,
// queries return defaults instead of failing: positions are the zero Point
// (no points) or the only point, derivatives are the zero vector, lengths
// are 0 and parameters are 0.
//
// Use [New] or [NewWithOptions] to create a Spline.
type Spline struct {
	points   []Point
	tangents []Vec2

	closed            bool
	curvature         float64
	samplesPerSegment int

	tangentsDirty bool
	lengthsDirty  bool

	table      []DistanceSample
	pointDists []float64
}

// New returns an open spline through pts, using [DefaultOptions].
// The points are copied.
func New(pts ...Point) *Spline {
	return NewWithOptions(pts, DefaultOptions())
}

// NewWithOptions returns a spline through pts with the given shape
// parameters. The points are copied; see [Spline.SetPoints] for updating
// them wholesale.
func NewWithOptions(pts []Point, opts Options) *Spline {
	sp := &Spline{
		points:            append([]Point(nil), pts...),
		closed:            opts.Closed,
		curvature:         opts.Curvature,
		samplesPerSegment: opts.SamplesPerSegment,
	}
	if sp.samplesPerSegment < 1 {
		sp.samplesPerSegment = DefaultSamplesPerSegment
	}
	sp.invalidate()
	return sp
}

// Options returns the spline's current shape parameters.
func (sp *Spline) Options() Options {
	return Options{
		Closed:            sp.closed,
		Curvature:         sp.curvature,
		SamplesPerSegment: sp.samplesPerSegment,
	}
}

func (sp *Spline) Closed() bool { return sp.closed }

// SetClosed opens or closes the spline.
func (sp *Spline) SetClosed(closed bool) {
	if sp.closed == closed {
		return
	}
	sp.closed = closed
	sp.invalidate()
}

func (sp *Spline) Curvature() float64 { return sp.curvature }

// SetCurvature sets the tangent scale.
func (sp *Spline) SetCurvature(c float64) {
	if sp.curvature == c {
		return
	}
	sp.curvature = c
	sp.invalidate()
}

func (sp *Spline) SamplesPerSegment() int { return sp.samplesPerSegment }

// SetSamplesPerSegment sets the density of the arc-length table. n must be
// at least 1. Only the arc-length table is invalidated; tangents stay valid.
func (sp *Spline) SetSamplesPerSegment(n int) error {
	if n < 1 {
		return fmt.Errorf("hermite: samples per segment must be at least 1, got %d: %w", n, ErrOutOfRange)
	}
	if sp.samplesPerSegment == n {
		return nil
	}
	sp.samplesPerSegment = n
	sp.lengthsDirty = true
	return nil
}

// invalidate marks all derived data as stale.
func (sp *Spline) invalidate() {
	sp.tangentsDirty = true
	sp.lengthsDirty = true
}

// recalc rebuilds whatever derived data is stale. Tangents come first, as
// the arc-length table is sampled from the curve they define.
func (sp *Spline) recalc() {
	if sp.tangentsDirty {
		sp.computeTangents()
		sp.tangentsDirty = false
	}
	if sp.lengthsDirty {
		sp.computeLengths()
		sp.lengthsDirty = false
	}
}

// SegmentCount returns the number of segments: one per pair of consecutive
// points, plus the closing segment if the spline is closed.
func (sp *Spline) SegmentCount() int {
	n := len(sp.points)
	switch {
	case n < 2:
		return 0
	case sp.closed:
		return n
	default:
		return n - 1
	}
}

// segment returns the segment starting at point i. For the last point of an
// open spline there is no such segment and ok is false. Callers must have
// called recalc and ensured there are at least two points.
func (sp *Spline) segment(i int) (seg Segment, ok bool) {
	n := len(sp.points)
	j := i + 1
	if j >= n {
		if !sp.closed {
			return Segment{}, false
		}
		i, j = i%n, j%n
	}
	return Segment{
		P0: sp.points[i],
		P1: sp.points[j],
		T0: sp.tangents[i],
		T1: sp.tangents[j],
	}, true
}

// Segment returns segment i, for 0 <= i < [Spline.SegmentCount].
func (sp *Spline) Segment(i int) (Segment, error) {
	if err := checkIndex("Segment", i, sp.SegmentCount(), false); err != nil {
		return Segment{}, err
	}
	sp.recalc()
	seg, _ := sp.segment(i)
	return seg, nil
}

// locate maps a global parameter to a segment and a local parameter. t is
// clamped to [0, 1]; t == 1 maps to the end of the last segment. NaN maps
// to the start.
func (sp *Spline) locate(t float64) (int, float64) {
	if math.IsNaN(t) {
		t = 0
	}
	t = min(max(t, 0), 1)
	n := sp.SegmentCount()
	f := t * float64(n)
	i := math.Floor(f)
	if int(i) >= n {
		return n - 1, 1
	}
	return int(i), f - i
}

// degenerate reports whether the spline has too few points to have a shape,
// returning the position to use in that case.
func (sp *Spline) degenerate() (Point, bool) {
	switch len(sp.points) {
	case 0:
		return Point{}, true
	case 1:
		return sp.points[0], true
	default:
		return Point{}, false
	}
}

// Eval returns the position at global parameter t. The parameter spans the
// whole spline, with each segment occupying an equal share of [0, 1]. Values
// outside [0, 1] are clamped, and NaN evaluates to the start.
func (sp *Spline) Eval(t float64) Point {
	if pt, ok := sp.degenerate(); ok {
		return pt
	}
	i, lt := sp.locate(t)
	return sp.EvalSegment(i, lt)
}

// Deriv returns the derivative at global parameter t, with respect to the
// local parameter of the segment containing t. It is not normalized. Values
// of t outside [0, 1] are clamped.
func (sp *Spline) Deriv(t float64) Vec2 {
	if _, ok := sp.degenerate(); ok {
		return Vec2{}
	}
	i, lt := sp.locate(t)
	return sp.DerivSegment(i, lt)
}

// EvalSegment returns the position at local parameter t of the segment
// starting at point i. On an open spline, the segment starting at the last
// point consists of just that point. On a closed spline, the segment
// starting at the last point ends at the first.
//
// t is not clamped; values outside [0, 1] extrapolate the cubic.
// EvalSegment panics if i is not a valid point index.
func (sp *Spline) EvalSegment(i int, t float64) Point {
	if err := checkIndex("EvalSegment", i, len(sp.points), false); err != nil {
		panic(err)
	}
	if pt, ok := sp.degenerate(); ok {
		return pt
	}
	sp.recalc()
	seg, ok := sp.segment(i)
	if !ok {
		return sp.points[i]
	}
	return seg.Eval(t)
}

// DerivSegment returns the derivative at local parameter t of the segment
// starting at point i. On an open spline, the derivative at the last point is
// that point's tangent, which is also the exit derivative of the final
// segment.
//
// DerivSegment panics if i is not a valid point index.
func (sp *Spline) DerivSegment(i int, t float64) Vec2 {
	if err := checkIndex("DerivSegment", i, len(sp.points), false); err != nil {
		panic(err)
	}
	if _, ok := sp.degenerate(); ok {
		return Vec2{}
	}
	sp.recalc()
	seg, ok := sp.segment(i)
	if !ok {
		return sp.tangents[i]
	}
	return seg.Deriv(t)
}

// Start returns the position at t = 0.
func (sp *Spline) Start() Point { return sp.Eval(0) }

// End returns the position at t = 1. For closed splines this is the first
// point.
func (sp *Spline) End() Point { return sp.Eval(1) }

// Tangent returns the derived tangent at point i.
func (sp *Spline) Tangent(i int) (Vec2, error) {
	if err := checkIndex("Tangent", i, len(sp.points), false); err != nil {
		return Vec2{}, err
	}
	if len(sp.points) < 2 {
		return Vec2{}, nil
	}
	sp.recalc()
	return sp.tangents[i], nil
}
