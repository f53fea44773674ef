// Package trace implements spec.md §4.1's outline tracer: walking a
// segmented bitmap to extract one ordered, closed (or frame-open) pixel
// coordinate sequence per connected color region.
package trace

import (
	"image"

	"rastertrace/pkg/bitmap"
)

// PixelOutline is an ordered, circular sequence of integer lattice
// coordinates visited while walking the boundary of one connected
// color region.
type PixelOutline struct {
	Points []image.Point
	Closed bool // false for outlines touching the bitmap frame
	Color  bitmap.Pixel
}

// Len returns the number of points in the outline.
func (o *PixelOutline) Len() int { return len(o.Points) }

// At returns the i'th point, modulo the outline length when closed.
// Open outlines clamp to the valid range instead of wrapping, since an
// open curve has no point "after" its last endpoint.
func (o *PixelOutline) At(i int) image.Point {
	n := len(o.Points)
	if n == 0 {
		return image.Point{}
	}
	if o.Closed {
		i %= n
		if i < 0 {
			i += n
		}
		return o.Points[i]
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return o.Points[i]
}

// clockwise compass offsets, index 0 = East, increasing clockwise on a
// screen where Y grows downward (E, SE, S, SW, W, NW, N, NE).
var compass = [8]image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// FindOutlinePixels walks bm row-major from (0,0), tracing one outline
// per maximal 4-connected region of equal-color pixels that does not
// match background. Regions touching the bitmap frame produce open
// outlines; interior regions produce closed ones.
func FindOutlinePixels(bm *bitmap.Bitmap, background *bitmap.Pixel) []*PixelOutline {
	w, h := bm.Width, bm.Height
	marked := make([]bool, w*h)
	var outlines []*PixelOutline

	idx := func(p image.Point) int { return p.Y*w + p.X }
	isBackground := func(p bitmap.Pixel) bool { return background != nil && p == *background }

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			seed := image.Point{X: x, Y: y}
			if marked[idx(seed)] {
				continue
			}
			color := bm.At(x, y)
			if isBackground(color) {
				marked[idx(seed)] = true
				continue
			}

			region, touchesFrame := floodFillRegion(bm, seed, color, marked)
			outline := &PixelOutline{Color: color, Closed: !touchesFrame}
			if len(region) == 1 {
				outline.Points = []image.Point{seed}
			} else {
				outline.Points = traceMooreBoundary(seed, region)
			}
			outlines = append(outlines, outline)
		}
	}
	return outlines
}

// floodFillRegion performs a 4-connected BFS over pixels equal to
// color starting at seed, marking every visited pixel in marked so the
// row-major scan in FindOutlinePixels never re-seeds inside it. It
// reports whether any region pixel touches the bitmap frame.
func floodFillRegion(bm *bitmap.Bitmap, seed image.Point, color bitmap.Pixel, marked []bool) (map[image.Point]bool, bool) {
	w, h := bm.Width, bm.Height
	idx := func(p image.Point) int { return p.Y*w + p.X }

	region := map[image.Point]bool{seed: true}
	marked[idx(seed)] = true
	touchesFrame := seed.X == 0 || seed.Y == 0 || seed.X == w-1 || seed.Y == h-1

	queue := []image.Point{seed}
	offsets := []image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, o := range offsets {
			n := image.Point{X: p.X + o.X, Y: p.Y + o.Y}
			if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
				continue
			}
			if marked[idx(n)] || region[n] {
				continue
			}
			if bm.At(n.X, n.Y) != color {
				continue
			}
			region[n] = true
			marked[idx(n)] = true
			if n.X == 0 || n.Y == 0 || n.X == w-1 || n.Y == h-1 {
				touchesFrame = true
			}
			queue = append(queue, n)
		}
	}
	return region, touchesFrame
}

// traceMooreBoundary walks the boundary of region, a set of same-color
// 4-connected pixels, starting at its topmost-then-leftmost pixel
// (guaranteed by FindOutlinePixels's row-major scan order). At each
// step it rotates counter-clockwise from the turn-right candidate —
// the direction one quarter-turn clockwise of the direction of travel
// (not of the direction it arrived from) — until it finds the next
// foreground pixel. In the screen frame of `compass` (Y growing
// downward) the walk runs counter-clockwise with the region on the
// tracer's left; read with Y growing upward, the same point sequence
// runs clockwise with the region on the tracer's right.
func traceMooreBoundary(start image.Point, region map[image.Point]bool) []image.Point {
	// Arrive as if from the west, so the direction of travel is east
	// and the first turn-right candidate is south; this is the
	// conventional Moore-tracing start direction.
	arrivedFrom := 4 // West
	current := start

	points := []image.Point{start}

	for {
		travelDir := (arrivedFrom + 4) % 8
		turnRight := (travelDir + 2) % 8
		var next image.Point
		var dirUsed int
		found := false
		for k := 0; k < 8; k++ {
			// Rotate counter-clockwise (decreasing index) from the
			// turn-right candidate.
			d := ((turnRight-k)%8 + 8) % 8
			cand := image.Point{X: current.X + compass[d].X, Y: current.Y + compass[d].Y}
			if region[cand] {
				next = cand
				dirUsed = d
				found = true
				break
			}
		}
		if !found {
			// No neighbor at all; current is an isolated protrusion.
			break
		}

		if next == start {
			// Back at the start pixel: the boundary has closed. Don't
			// append it again; the caller treats the point list as an
			// implicitly-closed loop.
			break
		}

		arrivedFrom = (dirUsed + 4) % 8 // direction we'll have arrived from, at `next`
		points = append(points, next)
		current = next

		if len(points) > len(region)*8+8 {
			// Safety valve: region geometry degenerate enough that the
			// walk cannot close; stop rather than loop forever.
			break
		}
	}
	return points
}
