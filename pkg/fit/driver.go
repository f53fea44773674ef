package fit

import (
	"image"

	"rastertrace/pkg/geom"
	"rastertrace/pkg/trace"
)

// FittedSplines implements spec.md §4.10: the fit driver. Each pixel
// outline moves independently through the state machine
//
//	TRACED -> CORNERS_MARKED -> ROTATED_TO_CORNER -> FILTERED
//	       -> ARC_PARTITIONED -> EACH_ARC{ LINE_CHECKED | CUBIC_FIT
//	                                      -> (SUBDIVIDED*) -> REVERTED? }
//	       -> SPLINE_LIST_EMITTED
//
// producing one spline list per outline with at least 3 points. An
// outline of fewer than 2 points is dropped; a 2-point outline becomes
// a single line (spec.md §9's fixed resolution of the open question).
func FittedSplines(outlines []*trace.PixelOutline, opts Options) (SplineListArray, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var result SplineListArray
	for _, o := range outlines {
		list, ok := fitOutline(o, opts)
		if ok {
			result = append(result, list)
		}
	}
	return result, nil
}

func fitOutline(o *trace.PixelOutline, opts Options) (SplineList, bool) {
	n := o.Len()
	if n < 2 {
		return SplineList{}, false
	}
	if n == 2 {
		p0 := toPoint(o.At(0))
		p1 := toPoint(o.At(1))
		return SplineList{Splines: []Spline{NewLine(p0, p1)}, Closed: o.Closed}, true
	}

	// CORNERS_MARKED, then ROTATED_TO_CORNER: a closed outline starts
	// at its first detected corner, if any.
	corners := MarkCorners(o, opts)
	rotated := o
	if o.Closed {
		if first, ok := firstCornerIndex(corners); ok && first > 0 {
			rotated = rotateOutline(o, first)
		}
	}
	corners = MarkCorners(rotated, opts)

	// FILTERED.
	smoothed := Smooth(rotated, corners, opts)

	// ARC_PARTITIONED.
	arcRanges := partitionArcs(corners, rotated.Closed)

	list := SplineList{Closed: rotated.Closed}
	for _, ar := range arcRanges {
		points := arcPoints(smoothed, ar, rotated.Closed)
		tStart := arcTangent(rotated, ar.start, opts.TangentSurround)
		tEnd := arcTangent(rotated, ar.end, opts.TangentSurround).Scale(-1)
		arcList := fitArc(points, tStart, tEnd, opts, 0)
		list.Concat(arcList)
	}

	if rotated.Closed && len(list.Splines) > 0 {
		// Invariant (spec.md §8): a closed spline list's first start
		// must equal its last end exactly.
		list.Splines[len(list.Splines)-1].Points[3] = list.Splines[0].Points[0]
	}

	return list, true
}

func arcTangent(o *trace.PixelOutline, index int, surround uint) geom.Point {
	return tangentAt(o, index, surround)
}

func firstCornerIndex(corners []bool) (int, bool) {
	for i, c := range corners {
		if c {
			return i, true
		}
	}
	return 0, false
}

// rotateOutline returns a new outline whose Points begin at index k of
// o, preserving circular order. Only meaningful for closed outlines.
func rotateOutline(o *trace.PixelOutline, k int) *trace.PixelOutline {
	n := o.Len()
	pts := make([]image.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = o.At(i + k)
	}
	return &trace.PixelOutline{Points: pts, Closed: o.Closed, Color: o.Color}
}

type arcRange struct{ start, end int }

// partitionArcs splits the outline's indices into corner-to-corner
// arcs. A closed outline with no corners at all is treated as one
// single arc spanning the whole loop (a "virtual corner" at index 0).
func partitionArcs(corners []bool, closed bool) []arcRange {
	n := len(corners)
	var cornerIdx []int
	for i, c := range corners {
		if c {
			cornerIdx = append(cornerIdx, i)
		}
	}

	if len(cornerIdx) == 0 {
		if closed {
			return []arcRange{{0, n}}
		}
		return []arcRange{{0, n - 1}}
	}

	var arcs []arcRange
	for i := 0; i < len(cornerIdx); i++ {
		start := cornerIdx[i]
		var end int
		if i+1 < len(cornerIdx) {
			end = cornerIdx[i+1]
		} else if closed {
			end = cornerIdx[0] + n
		} else {
			end = n - 1
		}
		arcs = append(arcs, arcRange{start, end})
	}
	return arcs
}

// arcPoints materializes the smoothed points covered by ar, wrapping
// modulo len(smoothed) when the outline is closed (end may exceed
// len(smoothed)-1 to express wraparound).
func arcPoints(smoothed []geom.Point, ar arcRange, closed bool) []geom.Point {
	n := len(smoothed)
	length := ar.end - ar.start + 1
	points := make([]geom.Point, length)
	for i := 0; i < length; i++ {
		idx := ar.start + i
		if closed {
			idx %= n
		} else if idx >= n {
			idx = n - 1
		}
		points[i] = smoothed[idx]
	}
	return points
}

// maxFitDepth bounds the explicit recursion spec.md §9 notes should be
// depth-limited; a real arc would need to halve more than 32 times
// before this fires.
const maxFitDepth = 32

// fitArc implements spec.md §4.6-§4.9 for a single corner-to-corner
// arc (or subdivided sub-arc): the a priori line check, least-squares
// cubic fit, Newton-Raphson reparameterization, recursive subdivision
// on excess error, and a posteriori line reversion.
func fitArc(points []geom.Point, tStart, tEnd geom.Point, opts Options, depth int) SplineList {
	p0 := points[0]
	p3 := points[len(points)-1]

	if len(points) <= 2 {
		return SplineList{Splines: []Spline{NewLine(p0, p3)}}
	}

	if isAPrioriLine(points, opts.LineThreshold) {
		return SplineList{Splines: []Spline{NewLine(p0, p3)}}
	}

	u := chordParameterize(points)
	p1, p2, fitErr, _ := fitCubic(points, u, tStart, tEnd)
	p1, p2, _, fitErr = reparameterizeAndRefit(points, u, tStart, tEnd, p1, p2, fitErr, opts)

	if fitErr > opts.ErrorThreshold && depth < maxFitDepth && len(points) > 3 {
		splitAt := chooseSplitPoint(points, opts)
		left := points[:splitAt+1]
		right := points[splitAt:]

		splitTangentFwd := subdivideTangent(points, splitAt, opts.TangentSurround)

		leftList := fitArc(left, tStart, splitTangentFwd.Scale(-1), opts, depth+1)
		rightList := fitArc(right, splitTangentFwd, tEnd, opts, depth+1)

		leftList.Concat(rightList)
		return leftList
	}

	if shouldRevertToLine(p0, p1, p2, p3, opts.LineReversionThreshold) {
		return SplineList{Splines: []Spline{NewLine(p0, p3)}}
	}

	return SplineList{Splines: []Spline{NewCubic(p0, p1, p2, p3)}}
}
