package fit

import "rastertrace/pkg/geom"

// chordParameterize implements spec.md §4.6's initial parameterization:
// u_i is the cumulative chord length to P_i divided by the total chord
// length, so u_0 = 0 and u_n = 1. A degenerate (zero-length) arc is
// parameterized uniformly instead of dividing by zero.
func chordParameterize(points []geom.Point) []float64 {
	n := len(points)
	u := make([]float64, n)
	if n == 0 {
		return u
	}
	cumulative := make([]float64, n)
	for i := 1; i < n; i++ {
		cumulative[i] = cumulative[i-1] + geom.Distance(points[i-1], points[i])
	}
	total := cumulative[n-1]
	if total == 0 {
		for i := range u {
			if n > 1 {
				u[i] = float64(i) / float64(n-1)
			}
		}
		return u
	}
	for i := range u {
		u[i] = cumulative[i] / total
	}
	return u
}

// perpendicularDistance returns the distance from p to the line
// through a and b. A zero-length chord falls back to point distance.
func perpendicularDistance(p, a, b geom.Point) float64 {
	chord := b.Sub(a)
	length := chord.Magnitude()
	if length == 0 {
		return geom.Distance(p, a)
	}
	// |chord x (p-a)| / |chord|, using the 2D cross product.
	return absf(chord.Cross(p.Sub(a))) / length
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// maxChordDeviation returns the largest perpendicular distance from
// any point in points to the chord from points[0] to points[len-1],
// and the index at which it occurs. Used by the a priori line check
// (§4.9.1) and the subdivision split guess (§4.8).
func maxChordDeviation(points []geom.Point) (maxDist float64, atIndex int) {
	if len(points) < 2 {
		return 0, 0
	}
	a, b := points[0], points[len(points)-1]
	for i, p := range points {
		d := perpendicularDistance(p, a, b)
		if d > maxDist {
			maxDist = d
			atIndex = i
		}
	}
	return maxDist, atIndex
}
