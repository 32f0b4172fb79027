package hermite_test

import (
	"errors"
	"fmt"

	"honnef.co/go/hermite"
)

func ExampleSpline() {
	sp := hermite.New(hermite.Pt(0, 0), hermite.Pt(2, 2), hermite.Pt(4, 0))
	fmt.Println(sp.Eval(0), sp.Eval(0.25), sp.Eval(0.5), sp.Eval(1))
	// Output:
	// (0, 0) (0.875, 1.125) (2, 2) (4, 0)
}

func ExampleSpline_SetClosed() {
	sp := hermite.New(hermite.Pt(0, 0), hermite.Pt(2, 2), hermite.Pt(4, 0))
	sp.SetClosed(true)
	fmt.Println(sp.SegmentCount(), sp.Eval(1))
	// Output:
	// 3 (0, 0)
}

func ExampleSpline_DistanceToParameter() {
	// With a curvature of 0, the spline is a polyline, which makes its
	// length easy to verify.
	pts := []hermite.Point{hermite.Pt(0, 0), hermite.Pt(3, 4), hermite.Pt(3, 10)}
	sp := hermite.NewWithOptions(pts, hermite.Options{Curvature: 0})
	fmt.Printf("length %.3f, 5 units in: t = %.3f\n", sp.Length(), sp.DistanceToParameter(5))
	// Output:
	// length 11.000, 5 units in: t = 0.500
}

func ExampleSpline_AddScrolling() {
	sp := hermite.New(hermite.Pt(0, 0), hermite.Pt(1, 1), hermite.Pt(2, 0))
	sp.AddScrolling(hermite.Pt(3, 1))
	fmt.Println(sp.Points())

	sp.SetClosed(true)
	err := sp.AddScrolling(hermite.Pt(4, 0))
	fmt.Println(err, errors.Is(err, hermite.ErrInvalidOperation))
	// Output:
	// [(1, 1) (2, 0) (3, 1)]
	// hermite: AddScrolling on closed spline: invalid operation true
}

func ExampleSVG() {
	sp := hermite.New(hermite.Pt(0, 0), hermite.Pt(3, 0))
	fmt.Println(hermite.SVG(sp.PathElements(), hermite.SVGOptions{}))
	// Output:
	// M0,0 C0.5,0 2.5,0 3,0
}
