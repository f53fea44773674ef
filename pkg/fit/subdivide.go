package fit

import "rastertrace/pkg/geom"

// chooseSplitPoint implements spec.md §4.8's split selection: the
// initial guess is the index of maximum chord deviation; a window of
// ±(subdivide_surround * subdivide_search) points around that guess,
// truncated to an integer and never less than 1, is then searched for the point with the smallest subdivide_threshold
// weighted curvature, biasing the split toward a naturally flatter
// junction. It never returns an endpoint, since splitting there would
// produce a degenerate sub-arc.
func chooseSplitPoint(points []geom.Point, opts Options) int {
	n := len(points)
	_, guess := maxChordDeviation(points)
	if guess <= 0 {
		guess = 1
	}
	if guess >= n-1 {
		guess = n - 2
	}

	window := int(float64(opts.SubdivideSurround) * opts.SubdivideSearch)
	if window < 1 {
		window = 1
	}

	best := guess
	bestScore := splitScore(points, guess, opts.SubdivideThreshold)
	for k := guess - window; k <= guess+window; k++ {
		if k <= 0 || k >= n-1 || k == guess {
			continue
		}
		score := splitScore(points, k, opts.SubdivideThreshold)
		if score < bestScore {
			bestScore = score
			best = k
		}
	}
	return best
}

// splitScore estimates the local curvature at points[i] (the angle
// deficit from a straight line through its immediate neighbors),
// weighted by subdivide_threshold so a caller can compare it directly
// against the candidate's chord deviation.
func splitScore(points []geom.Point, i int, threshold float64) float64 {
	n := len(points)
	if i <= 0 || i >= n-1 {
		return 0
	}
	prev, cur, next := points[i-1], points[i], points[i+1]
	angle := geom.AngleBetween(prev.Sub(cur), next.Sub(cur))
	// A straight run scores 0 (angle == pi means no turn); a sharp
	// corner scores high. Flatter junctions are preferred splits.
	curvature := 3.141592653589793 - angle
	return curvature * threshold
}

// subdivideTangent estimates the tangent at a new split point from the
// `surround` points on either side of it within the arc being split,
// independent of the tangent estimated on the full outline. The caller
// uses this single tangent for both halves (negated as the left half's
// end tangent), so the halves are not given separate tangents.
func subdivideTangent(points []geom.Point, i int, surround uint) geom.Point {
	return tangentFromPoints(points, false, i, int(surround))
}
