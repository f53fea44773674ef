package fit

import (
	"image"
	"testing"

	"rastertrace/pkg/trace"
)

// a right-angle corner on a small closed square is always marked.
func TestMarkCornersSquareMarksRightAngles(t *testing.T) {
	o := &trace.PixelOutline{
		Closed: true,
		Points: []image.Point{
			{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1},
		},
	}
	opts := Default()
	corners := MarkCorners(o, opts)
	for _, i := range []int{0, 2, 4, 6} {
		if !corners[i] {
			t.Fatalf("expected right-angle point %d (%v) marked as a corner, got %v", i, o.Points[i], corners)
		}
	}
}

// an open outline always marks both endpoints as corners, regardless
// of local angle.
func TestMarkCornersOpenEndpointsAlwaysMarked(t *testing.T) {
	o := &trace.PixelOutline{
		Closed: false,
		Points: []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
	}
	corners := MarkCorners(o, Default())
	if !corners[0] || !corners[len(corners)-1] {
		t.Fatalf("expected open endpoints marked as corners, got %v", corners)
	}
}

// a straight line has no interior corners.
func TestMarkCornersStraightLineNoInteriorCorners(t *testing.T) {
	o := &trace.PixelOutline{
		Closed: false,
		Points: []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}},
	}
	corners := MarkCorners(o, Default())
	for i := 1; i < len(corners)-1; i++ {
		if corners[i] {
			t.Errorf("unexpected interior corner at %d on a straight line", i)
		}
	}
}

// removeAdjacentCorners collapses a run of adjacent marks to the
// sharpest single point.
func TestRemoveAdjacentCornersCollapsesRun(t *testing.T) {
	corners := []bool{false, true, true, true, false}
	alpha := []float64{180, 90, 10, 95, 180}
	removeAdjacentCorners(corners, alpha, false)
	count := 0
	kept := -1
	for i, c := range corners {
		if c {
			count++
			kept = i
		}
	}
	if count != 1 || kept != 2 {
		t.Fatalf("want single corner kept at index 2, got corners=%v", corners)
	}
}
