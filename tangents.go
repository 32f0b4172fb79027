package hermite

// computeTangents derives one tangent per point from its neighbours.
//
// Interior points use the central difference of their neighbours. The end
// points of an open spline use the one-sided difference to their only
// neighbour; those of a closed spline use the wrapped-around neighbour.
// Every tangent is scaled by the curvature. With fewer than two points,
// there is nothing to derive and the tangents are left empty.
func (sp *Spline) computeTangents() {
	n := len(sp.points)
	if n < 2 {
		sp.tangents = sp.tangents[:0]
		return
	}
	if cap(sp.tangents) >= n {
		sp.tangents = sp.tangents[:n]
	} else {
		sp.tangents = make([]Vec2, n)
	}

	pts := sp.points
	last := n - 1
	for i := 1; i < last; i++ {
		sp.tangents[i] = pts[i+1].Sub(pts[i-1]).Mul(sp.curvature)
	}
	if sp.closed {
		sp.tangents[0] = pts[1].Sub(pts[last]).Mul(sp.curvature)
		sp.tangents[last] = pts[0].Sub(pts[last-1]).Mul(sp.curvature)
	} else {
		sp.tangents[0] = pts[1].Sub(pts[0]).Mul(sp.curvature)
		sp.tangents[last] = pts[last].Sub(pts[last-1]).Mul(sp.curvature)
	}
}
