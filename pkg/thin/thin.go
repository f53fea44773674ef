// Package thin implements the fitting pipeline's optional morphological
// preprocessor: skeletonizing a 1-plane bitmap down to single-pixel-wide
// ridges before outline tracing, per spec.md's thin option.
package thin

import "rastertrace/pkg/bitmap"

// Thin performs a Zhang-Suen thinning pass over bm in place. It is
// idempotent: running it again on an already-thinned bitmap makes no
// further changes, as spec.md §6 requires of the Thinner collaborator.
// Pixels are treated as foreground when their grayscale value is below
// 128; Planes other than 1 are still accepted (callers may pass a
// grayscale-looking 3-plane bitmap) but only the gray channel drives
// the algorithm.
func Thin(bm *bitmap.Bitmap) error {
	if bm.Width == 0 || bm.Height == 0 {
		return &bitmap.Error{Kind: bitmap.ErrMalformedBitmap, Msg: "cannot thin an empty bitmap"}
	}

	fg := make([]bool, bm.Width*bm.Height)
	for i, p := range bm.Pix {
		fg[i] = p.Gray() < 128
	}

	for {
		removed1 := thinPass(bm.Width, bm.Height, fg, true)
		removed2 := thinPass(bm.Width, bm.Height, fg, false)
		if !removed1 && !removed2 {
			break
		}
	}

	for i := range bm.Pix {
		if fg[i] {
			bm.Pix[i] = bitmap.Pixel{}
		} else {
			bm.Pix[i] = bitmap.Pixel{R: 255, G: 255, B: 255}
		}
	}
	return nil
}

// thinPass runs one Zhang-Suen sub-iteration (step 1 when first is
// true, step 2 otherwise) and reports whether any pixel was removed.
func thinPass(w, h int, fg []bool, first bool) bool {
	type coord struct{ x, y int }
	var toRemove []coord

	idx := func(x, y int) int { return y*w + x }
	get := func(x, y int) bool {
		if x < 0 || x >= w || y < 0 || y >= h {
			return false
		}
		return fg[idx(x, y)]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !get(x, y) {
				continue
			}
			// 8-neighbors in clockwise order starting north, matching
			// the Zhang-Suen P2..P9 numbering.
			p2 := get(x, y-1)
			p3 := get(x+1, y-1)
			p4 := get(x+1, y)
			p5 := get(x+1, y+1)
			p6 := get(x, y+1)
			p7 := get(x-1, y+1)
			p8 := get(x-1, y)
			p9 := get(x-1, y-1)

			neighbors := []bool{p2, p3, p4, p5, p6, p7, p8, p9}
			b := 0
			for _, n := range neighbors {
				if n {
					b++
				}
			}
			if b < 2 || b > 6 {
				continue
			}

			a := 0
			for i := 0; i < len(neighbors); i++ {
				if !neighbors[i] && neighbors[(i+1)%len(neighbors)] {
					a++
				}
			}
			if a != 1 {
				continue
			}

			if first {
				if (p2 && p4 && p6) || (p4 && p6 && p8) {
					continue
				}
			} else {
				if (p2 && p4 && p8) || (p2 && p6 && p8) {
					continue
				}
			}

			toRemove = append(toRemove, coord{x, y})
		}
	}

	for _, c := range toRemove {
		fg[idx(c.x, c.y)] = false
	}
	return len(toRemove) > 0
}
