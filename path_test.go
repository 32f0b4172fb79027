package hermite

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPathElementsOpen(t *testing.T) {
	sp := New(Pt(0, 0), Pt(3, 0))
	want := []PathElement{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(0.5, 0), Pt(2.5, 0), Pt(3, 0)),
	}
	diff(t, want, slices.Collect(sp.PathElements()))
	if got := SVG(sp.PathElements(), SVGOptions{}); got != "M0,0 C0.5,0 2.5,0 3,0" {
		t.Errorf("got SVG %q", got)
	}
}

func TestPathElementsClosed(t *testing.T) {
	sp := NewWithOptions([]Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}, Options{Closed: true})
	got := SVG(sp.PathElements(), SVGOptions{})
	want := "M0,0 C0,0 1,0 1,0 C1,0 0,1 0,1 C0,1 0,0 0,0 Z"
	if got != want {
		t.Errorf("got SVG %q, want %q", got, want)
	}
}

func TestPathElementsDegenerate(t *testing.T) {
	for range New(Pt(1, 1)).PathElements() {
		t.Fatal("spline with a single point shouldn't produce path elements")
	}
	if got := SVG(New().PathElements(), SVGOptions{}); got != "" {
		t.Errorf("got SVG %q for an empty spline", got)
	}
}

func TestPathElementsMatchSpline(t *testing.T) {
	sp := New(Pt(0, 0), Pt(2, 2), Pt(4, 0), Pt(7, 1))
	var cubics []CubicBez
	var cur Point
	for el := range sp.PathElements() {
		switch el.Kind {
		case MoveToKind:
			cur = el.P0
		case CubicToKind:
			cubics = append(cubics, CubicBez{cur, el.P0, el.P1, el.P2})
			cur = el.P2
		}
	}
	if len(cubics) != sp.SegmentCount() {
		t.Fatalf("got %d cubics, want %d", len(cubics), sp.SegmentCount())
	}
	for i, c := range cubics {
		for j := range 11 {
			lt := float64(j) / 10
			diff(t, sp.EvalSegment(i, lt), c.Eval(lt), cmpopts.EquateApprox(0, 1e-9))
		}
	}
}

func TestSVGPrecision(t *testing.T) {
	sp := NewWithOptions([]Point{Pt(0, 0), Pt(1, 0)}, Options{Curvature: 1.0 / 3.0})
	got := SVG(sp.PathElements(), SVGOptions{MaxPrecision: 2})
	if want := "M0,0 C0.11,0 0.89,0 1,0"; got != want {
		t.Errorf("got SVG %q, want %q", got, want)
	}
}

type errWriter struct{ n int }

func (w *errWriter) Write(b []byte) (int, error) {
	w.n++
	return 0, errTest
}

var errTest = errors.New("write failed")

func TestWriteSVGError(t *testing.T) {
	sp := New(Pt(0, 0), Pt(1, 1), Pt(2, 0))
	w := &errWriter{}
	if err := WriteSVG(w, sp.PathElements(), SVGOptions{}); err == nil {
		t.Error("expected write error to be returned")
	}
	if w.n != 1 {
		t.Errorf("got %d writes, want writing to stop after the first error", w.n)
	}
}

func TestSplineBoundingBox(t *testing.T) {
	sp := New(Pt(0, 0), Pt(2, 2), Pt(4, 0))
	diff(t, Rect{0, 0, 4, 2}, sp.BoundingBox(), cmpopts.EquateApprox(0, 1e-9))

	diff(t, Rect{3, 4, 3, 4}, New(Pt(3, 4)).BoundingBox())

	// Catmull-Rom splines overshoot their control points.
	sp = NewWithOptions([]Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}, Options{Closed: true, Curvature: 0.5})
	bbox := sp.BoundingBox()
	if bbox.X0 >= 0 || bbox.X1 <= 4 || bbox.Y0 >= 0 || bbox.Y1 <= 4 {
		t.Errorf("bounding box %v doesn't include the overshoot", bbox)
	}
	for i := range 101 {
		if pt := sp.Eval(float64(i) / 100); pt.X < bbox.X0-1e-9 || pt.X > bbox.X1+1e-9 || pt.Y < bbox.Y0-1e-9 || pt.Y > bbox.Y1+1e-9 {
			t.Errorf("%v lies outside bounding box %v", pt, bbox)
		}
	}
}
