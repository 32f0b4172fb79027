package hermite

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestHermiteBasisPartitionOfUnity(t *testing.T) {
	// The position weights always sum to 1, so translating both end points
	// translates the whole segment.
	for i := range 11 {
		ts := float64(i) / 10
		h := hermiteBasis(ts)
		diff(t, 1.0, h[0]+h[1], cmpopts.EquateApprox(0, 1e-12))
		d := hermiteBasisDeriv(ts)
		diff(t, 0.0, d[0]+d[1], cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestSegmentEndpoints(t *testing.T) {
	seg := Segment{P0: Pt(1, 2), P1: Pt(5, -3), T0: Vec(2, 7), T1: Vec(-1, 4)}
	diff(t, seg.P0, seg.Eval(0))
	diff(t, seg.P1, seg.Eval(1))
	diff(t, seg.P1, seg.Eval(1-1e-12))
	diff(t, seg.T0, seg.Deriv(0))
	diff(t, seg.T1, seg.Deriv(1))
	diff(t, seg.P0, seg.Start())
	diff(t, seg.P1, seg.End())
}

func TestSegmentMidpoint(t *testing.T) {
	seg := Segment{P0: Pt(0, 0), P1: Pt(2, 2), T0: Vec(1, 1), T1: Vec(2, 0)}
	// h = (0.5, 0.5, 0.125, -0.125)
	diff(t, Pt(0.875, 1.125), seg.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))
	// h' = (-1.5, 1.5, -0.25, -0.25)
	diff(t, Vec(2.25, 2.75), seg.Deriv(0.5), cmpopts.EquateApprox(0, 1e-12))
}

func TestSegmentDeriv(t *testing.T) {
	seg := Segment{P0: Pt(-3, 1), P1: Pt(4, 6), T0: Vec(10, -2), T1: Vec(0, 8)}
	const n = 10
	const delta = 1e-6
	for i := range n {
		ts := float64(i)/float64(n) + 0.05
		dApprox := seg.Eval(ts + delta).Sub(seg.Eval(ts)).Mul(1.0 / delta)
		if l := seg.Deriv(ts).Sub(dApprox).Hypot(); l >= 1e-4 {
			t.Errorf("t=%g: got difference of %g between derivative and finite difference", ts, l)
		}
	}
}

func TestSegmentBezier(t *testing.T) {
	seg := Segment{P0: Pt(-3, 1), P1: Pt(4, 6), T0: Vec(10, -2), T1: Vec(0, 8)}
	c := seg.Bezier()
	diff(t, CubicBez{Pt(-3, 1), Pt(-3+10.0/3, 1-2.0/3), Pt(4, 6-8.0/3), Pt(4, 6)}, c,
		cmpopts.EquateApprox(0, 1e-12))
	for i := range 21 {
		ts := float64(i) / 20
		diff(t, seg.Eval(ts), c.Eval(ts), cmpopts.EquateApprox(0, 1e-9))
		diff(t, seg.Deriv(ts), c.Deriv(ts), cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestSegmentArclenStraight(t *testing.T) {
	seg := Segment{P0: Pt(0, 0), P1: Pt(3, 4), T0: Vec(1.5, 2), T1: Vec(1.5, 2)}
	diff(t, 5.0, seg.Arclen(1e-9), cmpopts.EquateApprox(0, 1e-9))
	diff(t, Rect{0, 0, 3, 4}, seg.BoundingBox(), cmpopts.EquateApprox(0, 1e-12))
}
