package fit

import (
	"image"

	"rastertrace/pkg/geom"
	"rastertrace/pkg/trace"
)

// toPoint converts an integer pixel coordinate to a geom.Point with
// Z=0, the module-wide convention for bitmap-derived points.
func toPoint(p image.Point) geom.Point {
	return geom.Point{X: float64(p.X), Y: float64(p.Y)}
}

// tangentAt implements spec.md §4.3: the unit tangent at index i is
// the normalized vector from the average of the `surround`
// predecessors to the average of the `surround` successors, circular
// on closed outlines and clamped at the ends of open ones. At the very
// endpoints of an open outline, a one-sided vector is used instead.
func tangentAt(o *trace.PixelOutline, i int, surround uint) geom.Point {
	n := o.Len()
	if n < 2 {
		return geom.Point{X: 1}
	}

	if !o.Closed && (i == 0 || i == n-1) {
		if i == 0 {
			return toPoint(o.At(1)).Sub(toPoint(o.At(0))).Normalize()
		}
		return toPoint(o.At(n - 1)).Sub(toPoint(o.At(n - 2))).Normalize()
	}

	before := averageNeighbors(o, i, -int(surround))
	after := averageNeighbors(o, i, int(surround))
	return after.Sub(before).Normalize()
}

// averageNeighbors averages the `count` outline points found by
// stepping `sign(dir)` repeatedly `abs(dir)` times from i, clamped to
// the outline's extent on an open outline and wrapped on a closed one.
func averageNeighbors(o *trace.PixelOutline, i, dir int) geom.Point {
	n := o.Len()
	count := dir
	if count < 0 {
		count = -count
	}
	if count == 0 {
		return toPoint(o.At(i))
	}

	step := 1
	if dir < 0 {
		step = -1
	}

	var sum geom.Point
	taken := 0
	for k := 1; k <= count; k++ {
		idx := i + step*k
		if !o.Closed {
			if idx < 0 {
				idx = 0
			}
			if idx >= n {
				idx = n - 1
			}
		}
		sum = sum.Add(toPoint(o.At(idx)))
		taken++
	}
	return sum.Scale(1 / float64(taken))
}
