package hermite

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one command of a Bézier path, as produced by
// [Spline.PathElements].
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Segments returns an iterator over the spline's Hermite segments, in order.
// The spline must not be modified during iteration.
func (sp *Spline) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		n := sp.SegmentCount()
		if n == 0 {
			return
		}
		sp.recalc()
		for i := range n {
			seg, _ := sp.segment(i)
			if !yield(seg) {
				return
			}
		}
	}
}

// PathElements returns the spline as a Bézier path: a MoveTo followed by one
// CubicTo per segment, and a ClosePath for closed splines. The conversion is
// exact.
func (sp *Spline) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		first := true
		for seg := range sp.Segments() {
			c := seg.Bezier()
			if first {
				first = false
				if !yield(MoveTo(c.P0)) {
					return
				}
			}
			if !yield(CubicTo(c.P1, c.P2, c.P3)) {
				return
			}
		}
		if !first && sp.closed {
			yield(ClosePath())
		}
	}
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// spline. A spline with fewer than two points has a zero-area bounding box
// at its only point, or at the origin.
func (sp *Spline) BoundingBox() Rect {
	if pt, ok := sp.degenerate(); ok {
		return NewRectFromPoints(pt, pt)
	}
	var bbox Rect
	first := true
	for seg := range sp.Segments() {
		if first {
			bbox = seg.BoundingBox()
			first = false
		} else {
			bbox = bbox.Union(seg.BoundingBox())
		}
	}
	return bbox
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	sep := ""
	for el := range seq {
		if err != nil {
			return err
		}
		switch el.Kind {
		case MoveToKind:
			writef("%sM%s,%s", sep, format(el.P0.X), format(el.P0.Y))
		case CubicToKind:
			writef("%sC%s,%s %s,%s %s,%s", sep,
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			writef("%sZ", sep)
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
		sep = " "
	}
	return err
}
