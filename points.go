package hermite

import (
	"fmt"
	"slices"
)

// Len returns the number of control points.
func (sp *Spline) Len() int { return len(sp.points) }

// At returns control point i.
func (sp *Spline) At(i int) (Point, error) {
	if err := checkIndex("At", i, len(sp.points), false); err != nil {
		return Point{}, err
	}
	return sp.points[i], nil
}

// Points returns a copy of the control points.
func (sp *Spline) Points() []Point {
	return slices.Clone(sp.points)
}

// SetPoints replaces all control points with a copy of pts. Callers that
// keep their own copy of the points use it to bring the spline back in sync
// after editing theirs.
func (sp *Spline) SetPoints(pts []Point) {
	sp.points = append(sp.points[:0], pts...)
	sp.invalidate()
}

// Add appends a control point.
func (sp *Spline) Add(pt Point) {
	sp.points = append(sp.points, pt)
	sp.invalidate()
}

// AddRange appends several control points.
func (sp *Spline) AddRange(pts ...Point) {
	sp.points = append(sp.points, pts...)
	sp.invalidate()
}

// AddScrolling appends pt and drops the oldest point, keeping the number of
// points constant. This suits curves that follow a moving window of
// samples. An empty spline simply gains the point.
//
// Scrolling is only defined for open splines; on a closed spline
// AddScrolling returns an error matching [ErrInvalidOperation] and leaves
// the spline unchanged.
func (sp *Spline) AddScrolling(pt Point) error {
	if sp.closed {
		return fmt.Errorf("hermite: AddScrolling on closed spline: %w", ErrInvalidOperation)
	}
	if len(sp.points) == 0 {
		sp.Add(pt)
		return nil
	}
	copy(sp.points, sp.points[1:])
	sp.points[len(sp.points)-1] = pt
	sp.invalidate()
	return nil
}

// InsertBefore inserts pt so that it becomes point i. i may equal
// [Spline.Len], which appends.
func (sp *Spline) InsertBefore(i int, pt Point) error {
	if err := checkIndex("InsertBefore", i, len(sp.points), true); err != nil {
		return err
	}
	sp.points = slices.Insert(sp.points, i, pt)
	sp.invalidate()
	return nil
}

// RemoveAt removes point i.
func (sp *Spline) RemoveAt(i int) error {
	if err := checkIndex("RemoveAt", i, len(sp.points), false); err != nil {
		return err
	}
	sp.points = slices.Delete(sp.points, i, i+1)
	sp.invalidate()
	return nil
}

// ReplaceFrom overwrites points starting at index i with pts. Points that
// extend past the end are appended.
func (sp *Spline) ReplaceFrom(i int, pts ...Point) error {
	if err := checkIndex("ReplaceFrom", i, len(sp.points), false); err != nil {
		return err
	}
	n := copy(sp.points[i:], pts)
	sp.points = append(sp.points, pts[n:]...)
	sp.invalidate()
	return nil
}

// SetAt overwrites point i.
func (sp *Spline) SetAt(i int, pt Point) error {
	if err := checkIndex("SetAt", i, len(sp.points), false); err != nil {
		return err
	}
	sp.points[i] = pt
	sp.invalidate()
	return nil
}

// Clear removes all points. The shape parameters are kept.
func (sp *Spline) Clear() {
	sp.points = sp.points[:0]
	sp.invalidate()
}
