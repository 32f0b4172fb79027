package hermite

import (
	"iter"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DistanceSample is one entry of a spline's arc-length table: the distance
// travelled along the spline from its start up to global parameter T.
type DistanceSample struct {
	Distance float64
	T        float64
}

// eval is Eval without the recalculation gate. The spline must have at least
// two points and up-to-date tangents.
func (sp *Spline) eval(t float64) Point {
	i, lt := sp.locate(t)
	seg, ok := sp.segment(i)
	if !ok {
		return sp.points[i]
	}
	return seg.Eval(lt)
}

// computeLengths builds the arc-length table by walking the spline in
// uniform steps of the global parameter and summing the chords between
// consecutive positions. The distance of every control point is recorded
// in the same pass.
func (sp *Spline) computeLengths() {
	sp.table = sp.table[:0]
	sp.pointDists = slices.Grow(sp.pointDists[:0], len(sp.points))[:len(sp.points)]
	clear(sp.pointDists)

	segs := sp.SegmentCount()
	if segs == 0 {
		return
	}
	perSeg := sp.samplesPerSegment
	if perSeg < 1 {
		perSeg = DefaultSamplesPerSegment
	}
	steps := segs * perSeg

	chords := make([]float64, steps+1)
	prev := sp.eval(0)
	for k := 1; k <= steps; k++ {
		pt := sp.eval(float64(k) / float64(steps))
		chords[k] = Line{prev, pt}.Length()
		prev = pt
	}
	dists := floats.CumSum(make([]float64, len(chords)), chords)

	sp.table = slices.Grow(sp.table, len(dists))
	for k, d := range dists {
		sp.table = append(sp.table, DistanceSample{Distance: d, T: float64(k) / float64(steps)})
	}
	for i := range sp.pointDists {
		sp.pointDists[i] = dists[i*perSeg]
	}
}

// Table returns a copy of the arc-length table. It starts at (0, 0) and
// ends at (Length, 1).
func (sp *Spline) Table() []DistanceSample {
	sp.recalc()
	return slices.Clone(sp.table)
}

// Length returns the approximate length of the spline, as measured by the
// arc-length table. See [Spline.Arclen] for an accurate measurement.
func (sp *Spline) Length() float64 {
	sp.recalc()
	if len(sp.table) == 0 {
		return 0
	}
	return sp.table[len(sp.table)-1].Distance
}

// DistanceAtPoint returns the distance along the spline from its start to
// control point i.
func (sp *Spline) DistanceAtPoint(i int) (float64, error) {
	if err := checkIndex("DistanceAtPoint", i, len(sp.points), false); err != nil {
		return 0, err
	}
	sp.recalc()
	return sp.pointDists[i], nil
}

// DistanceToParameter converts a distance along the spline into a global
// parameter, interpolating linearly between entries of the arc-length
// table.
//
// On closed splines the distance wraps around the spline's length, so that
// a distance equal to the length maps to 0. On open splines distances are
// clamped to [0, Length], mapping to [0, 1].
//
// NaN maps to 0. So do infinite distances on closed splines, which have no
// position to wrap to.
func (sp *Spline) DistanceToParameter(d float64) float64 {
	sp.recalc()
	if len(sp.table) < 2 || math.IsNaN(d) {
		return 0
	}
	length := sp.table[len(sp.table)-1].Distance
	if sp.closed {
		if length == 0 || math.IsInf(d, 0) {
			return 0
		}
		d = math.Mod(d, length)
		if d < 0 {
			d += length
		}
		if d >= length {
			// d was a tiny negative number
			return 0
		}
	}
	if d <= 0 {
		return 0
	}
	if d >= length {
		return 1
	}

	// table[0].Distance == 0 < d <= table[k].Distance, so 1 <= k < len(table).
	k := sort.Search(len(sp.table), func(k int) bool {
		return sp.table[k].Distance >= d
	})
	a, b := sp.table[k-1], sp.table[k]
	return a.T + (d-a.Distance)/(b.Distance-a.Distance)*(b.T-a.T)
}

// ParameterToDistance converts a global parameter into the distance along
// the spline, interpolating linearly between entries of the arc-length
// table. t is clamped to [0, 1]; NaN is treated as 0.
func (sp *Spline) ParameterToDistance(t float64) float64 {
	sp.recalc()
	if len(sp.table) < 2 || math.IsNaN(t) {
		return 0
	}
	t = min(max(t, 0), 1)
	last := len(sp.table) - 1
	f := t * float64(last)
	k := int(math.Floor(f))
	if k >= last {
		return sp.table[last].Distance
	}
	a, b := sp.table[k], sp.table[k+1]
	return a.Distance + (f-float64(k))*(b.Distance-a.Distance)
}

// EvalAtDistance returns the position at distance d along the spline. See
// [Spline.DistanceToParameter] for how out-of-range distances are treated.
func (sp *Spline) EvalAtDistance(d float64) Point {
	return sp.Eval(sp.DistanceToParameter(d))
}

// DerivAtDistance returns the derivative at distance d along the spline.
func (sp *Spline) DerivAtDistance(d float64) Vec2 {
	return sp.Deriv(sp.DistanceToParameter(d))
}

// Arclen returns the length of the spline to within accuracy, by integrating
// each segment. Unlike [Spline.Length] it doesn't depend on the sample
// density.
func (sp *Spline) Arclen(accuracy float64) float64 {
	segs := sp.SegmentCount()
	if segs == 0 {
		return 0
	}
	sp.recalc()
	lens := make([]float64, segs)
	for i := range lens {
		seg, _ := sp.segment(i)
		lens[i] = seg.Arclen(accuracy / float64(segs))
	}
	return floats.Sum(lens)
}

// Samples returns an iterator over n+1 positions spaced evenly by distance,
// from the start to the end of the spline. Each position is paired with its
// distance from the start. Nothing is produced for n < 1 or for splines with
// fewer than two points.
func (sp *Spline) Samples(n int) iter.Seq2[float64, Point] {
	return func(yield func(float64, Point) bool) {
		if n < 1 || sp.SegmentCount() == 0 {
			return
		}
		length := sp.Length()
		for k := 0; k <= n; k++ {
			d := length * float64(k) / float64(n)
			var pt Point
			if k == n {
				// DistanceToParameter wraps the full length of a closed
				// spline to 0, which is the same position.
				pt = sp.End()
			} else {
				pt = sp.EvalAtDistance(d)
			}
			if !yield(d, pt) {
				return
			}
		}
	}
}
