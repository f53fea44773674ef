package fit

import (
	"math"

	"rastertrace/pkg/geom"
	"rastertrace/pkg/trace"
)

// cornerAngles computes alpha(i), spec.md §4.4 step 1, for every point
// of the outline: the minimum, over k = 1..corner_surround, of the
// angle at p_i between the chords to its k'th predecessor and k'th
// successor. Degenerate (too-short) outlines report a flat angle (180°)
// everywhere, so no false corners are produced.
func cornerAngles(o *trace.PixelOutline, surround uint) []float64 {
	n := o.Len()
	alpha := make([]float64, n)
	for i := 0; i < n; i++ {
		alpha[i] = 180
		if n < 3 {
			continue
		}
		pi := toPoint(o.At(i))
		best := math.Inf(1)
		for k := 1; k <= int(surround); k++ {
			if !o.Closed && (i-k < 0 || i+k >= n) {
				continue
			}
			if o.Closed && 2*k >= n {
				// The k'th predecessor and successor would alias or
				// cross each other on a loop this short; such a k
				// carries no information about p_i's own curvature.
				continue
			}
			prev := toPoint(o.At(i - k))
			next := toPoint(o.At(i + k))
			a := geom.AngleBetween(prev.Sub(pi), next.Sub(pi))
			deg := a * 180 / math.Pi
			if deg < best {
				best = deg
			}
		}
		if !math.IsInf(best, 1) {
			alpha[i] = best
		}
	}
	return alpha
}

// MarkCorners implements spec.md §4.4: produces a boolean mark per
// outline point, true at corners. Endpoints of an open outline are
// always corners.
func MarkCorners(o *trace.PixelOutline, opts Options) []bool {
	n := o.Len()
	corners := make([]bool, n)
	if n == 0 {
		return corners
	}
	if !o.Closed {
		corners[0] = true
		corners[n-1] = true
	}
	if n < 3 {
		return corners
	}

	alpha := cornerAngles(o, opts.CornerSurround)
	surround := int(opts.CornerSurround)

	for i := 0; i < n; i++ {
		if corners[i] {
			continue
		}
		if alpha[i] < opts.CornerAlwaysThreshold {
			corners[i] = true
			continue
		}
		if alpha[i] < opts.CornerThreshold {
			if isLocalMinimum(alpha, i, surround, o.Closed) {
				corners[i] = true
			}
		}
	}

	if opts.RemoveAdjCorners {
		removeAdjacentCorners(corners, alpha, o.Closed)
	}
	return corners
}

// isLocalMinimum reports whether alpha[i] is the smallest value within
// `surround` positions either side of i, ties broken toward the
// earlier index (spec.md §9's fixed tie-break).
func isLocalMinimum(alpha []float64, i, surround int, closed bool) bool {
	n := len(alpha)
	for k := 1; k <= surround; k++ {
		for _, j := range [2]int{i - k, i + k} {
			idx := j
			if closed {
				idx = ((j % n) + n) % n
			} else if idx < 0 || idx >= n {
				continue
			}
			if alpha[idx] < alpha[i] {
				return false
			}
			if alpha[idx] == alpha[i] && idx < i {
				return false
			}
		}
	}
	return true
}

// removeAdjacentCorners collapses each maximal run of adjacent corner
// marks down to the single point with the smallest alpha in the run
// (spec.md §4.4 step 4), breaking ties toward the earlier index.
func removeAdjacentCorners(corners []bool, alpha []float64, closed bool) {
	n := len(corners)
	if n == 0 {
		return
	}

	// On a closed outline, start scanning just after a non-corner so a
	// run that wraps past index 0 is met at its first element.
	first := 0
	if closed {
		for first < n && corners[first] {
			first++
		}
		if first == n {
			first = 0
		}
	}

	visited := make([]bool, n)
	for t := 0; t < n; t++ {
		i := (first + t) % n
		if !corners[i] || visited[i] {
			continue
		}

		run := []int{i}
		visited[i] = true
		j := i + 1
		for {
			idx := j
			if closed {
				idx = ((j % n) + n) % n
			}
			if idx >= n || !corners[idx] || visited[idx] || idx == i {
				break
			}
			run = append(run, idx)
			visited[idx] = true
			j++
		}

		if len(run) <= 1 {
			continue
		}
		best := run[0]
		for _, idx := range run[1:] {
			if alpha[idx] < alpha[best] {
				best = idx
			}
		}
		for _, idx := range run {
			corners[idx] = idx == best
		}
	}
}
