package fit

import (
	"math"

	"rastertrace/pkg/geom"
	"rastertrace/pkg/trace"
)

// Smooth implements spec.md §4.5: filter_iteration_count passes of
// centroid smoothing over the arcs between corners, never moving a
// corner or an open outline's endpoints. It returns one floating point
// per outline point — the fitter works from these smoothed
// coordinates rather than the raw integer lattice positions.
func Smooth(o *trace.PixelOutline, corners []bool, opts Options) []geom.Point {
	n := o.Len()
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = toPoint(o.At(i))
	}
	if n < 3 {
		return points
	}

	surroundUsed := make([]int, n)
	for i := range surroundUsed {
		surroundUsed[i] = int(opts.FilterSurround)
	}

	movable := func(i int) bool {
		if corners[i] {
			return false
		}
		if !o.Closed && (i == 0 || i == n-1) {
			return false
		}
		return true
	}

	for iter := uint(0); iter < opts.FilterIterationCount; iter++ {
		next := make([]geom.Point, n)
		copy(next, points)

		for i := 0; i < n; i++ {
			if !movable(i) {
				continue
			}
			centroid := centroidNeighbors(points, o.Closed, i, surroundUsed[i])
			next[i] = points[i].Scale(1 - opts.FilterPercent).Add(centroid.Scale(opts.FilterPercent))
		}

		for i := 0; i < n; i++ {
			if !movable(i) {
				continue
			}
			tDefault := tangentFromPoints(next, o.Closed, i, int(opts.FilterSurround))
			tAlt := tangentFromPoints(next, o.Closed, i, int(opts.FilterAlternativeSurround))
			disagreeDeg := geom.AngleBetween(tDefault, tAlt) * 180 / math.Pi
			if disagreeDeg > opts.FilterEpsilon {
				surroundUsed[i] = int(opts.FilterAlternativeSurround)
			}
		}

		points = next
	}

	return points
}

// centroidNeighbors averages the points within `surround` positions on
// each side of i (excluding i itself), clamped on an open outline and
// wrapped on a closed one.
func centroidNeighbors(points []geom.Point, closed bool, i, surround int) geom.Point {
	n := len(points)
	if surround <= 0 {
		return points[i]
	}

	var sum geom.Point
	count := 0
	for k := 1; k <= surround; k++ {
		for _, j := range [2]int{i - k, i + k} {
			idx := j
			if closed {
				idx = ((j % n) + n) % n
			} else {
				if idx < 0 {
					idx = 0
				}
				if idx >= n {
					idx = n - 1
				}
			}
			sum = sum.Add(points[idx])
			count++
		}
	}
	if count == 0 {
		return points[i]
	}
	return sum.Scale(1 / float64(count))
}

// tangentFromPoints is tangentAt's counterpart for a plain point
// slice, used during smoothing where points have already moved off
// the integer lattice.
func tangentFromPoints(points []geom.Point, closed bool, i, surround int) geom.Point {
	n := len(points)
	if n < 2 {
		return geom.Point{X: 1}
	}
	if !closed && (i == 0 || i == n-1) {
		if i == 0 {
			return points[1].Sub(points[0]).Normalize()
		}
		return points[n-1].Sub(points[n-2]).Normalize()
	}

	avg := func(dir int) geom.Point {
		var sum geom.Point
		taken := 0
		step := 1
		if dir < 0 {
			step = -1
		}
		count := surround
		for k := 1; k <= count; k++ {
			idx := i + step*k
			if closed {
				idx = ((idx % n) + n) % n
			} else {
				if idx < 0 {
					idx = 0
				}
				if idx >= n {
					idx = n - 1
				}
			}
			sum = sum.Add(points[idx])
			taken++
		}
		if taken == 0 {
			return points[i]
		}
		return sum.Scale(1 / float64(taken))
	}

	before := avg(-1)
	after := avg(1)
	return after.Sub(before).Normalize()
}
