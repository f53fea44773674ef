package fit

import "rastertrace/pkg/geom"

// isAPrioriLine implements spec.md §4.9.1: before attempting a cubic
// fit, an arc whose points never stray more than line_threshold from
// the start-end chord is emitted directly as a line, skipping the fit
// entirely.
func isAPrioriLine(points []geom.Point, threshold float64) bool {
	maxDist, _ := maxChordDeviation(points)
	return maxDist <= threshold
}

// shouldRevertToLine implements spec.md §4.9.2's a posteriori check:
// a cubic is replaced by a line when both control points sit close
// enough to the chord, scaled by the squared chord length.
func shouldRevertToLine(p0, p1, p2, p3 geom.Point, threshold float64) bool {
	chordLen := geom.Distance(p0, p3)
	l2 := chordLen * chordLen
	d1 := perpendicularDistance(p1, p0, p3)
	d2 := perpendicularDistance(p2, p0, p3)
	return d1*l2+d2*l2 < threshold
}
