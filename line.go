package hermite

// Line is a straight segment between two points. The arc-length table is
// made of lines connecting consecutive samples of a spline.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Arclener = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line. The accuracy is ignored, lines are
// measured exactly.
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

// SolveForArclen returns the parameter at which the line has the given
// length. A zero-length line always solves to 0.
func (l Line) SolveForArclen(arclen float64) float64 {
	n := l.Length()
	if n == 0 {
		return 0
	}
	return arclen / n
}
