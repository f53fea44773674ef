// Package quantize implements the fitting pipeline's optional
// pre-processing collaborator: reducing a 24-bit bitmap to a small
// indexed palette before outline tracing, per spec.md's color_count
// option. The RGB<->HSL conversions are the same arithmetic the
// teacher's colorspace.go exposes (rgbToHSL/hslToRGB), repurposed here
// to bucket pixels by lightness instead of rendering gradients.
package quantize

import (
	"math"
	"sort"

	"rastertrace/pkg/bitmap"
)

// Reduce returns a copy of bm with at most colorCount distinct colors.
// Pixels equal to background, if non-nil, are left untouched so a
// caller's background_color tracing exclusion still matches exactly
// after quantization. colorCount <= 0 disables quantization and
// returns an unmodified copy.
func Reduce(bm *bitmap.Bitmap, colorCount int, background *bitmap.Pixel) *bitmap.Bitmap {
	out := &bitmap.Bitmap{Width: bm.Width, Height: bm.Height, Planes: bm.Planes, Pix: append([]bitmap.Pixel(nil), bm.Pix...)}
	if colorCount <= 0 {
		return out
	}

	type sample struct {
		pixel   bitmap.Pixel
		h, s, l float64
		count   int
	}

	freq := map[bitmap.Pixel]int{}
	for _, p := range bm.Pix {
		if background != nil && p == *background {
			continue
		}
		freq[p]++
	}
	if len(freq) <= colorCount {
		return out
	}

	samples := make([]sample, 0, len(freq))
	for p, n := range freq {
		h, s, l := rgbToHSL(float64(p.R)/255, float64(p.G)/255, float64(p.B)/255)
		samples = append(samples, sample{pixel: p, h: h, s: s, l: l, count: n})
	}

	// Bucket by lightness into colorCount bands (median-cut along the
	// single axis that separates raster regions most reliably for
	// line-art style input), then pick each band's frequency-weighted
	// centroid as its representative color.
	sort.Slice(samples, func(i, j int) bool { return samples[i].l < samples[j].l })

	bandOf := make(map[bitmap.Pixel]bitmap.Pixel, len(samples))

	bandSize := (len(samples) + colorCount - 1) / colorCount
	for start := 0; start < len(samples); start += bandSize {
		end := start + bandSize
		if end > len(samples) {
			end = len(samples)
		}
		band := samples[start:end]

		var totalR, totalG, totalB, totalN float64
		for _, s := range band {
			totalR += float64(s.pixel.R) * float64(s.count)
			totalG += float64(s.pixel.G) * float64(s.count)
			totalB += float64(s.pixel.B) * float64(s.count)
			totalN += float64(s.count)
		}
		rep := bitmap.Pixel{
			R: uint8(math.Round(totalR / totalN)),
			G: uint8(math.Round(totalG / totalN)),
			B: uint8(math.Round(totalB / totalN)),
		}
		for _, s := range band {
			bandOf[s.pixel] = rep
		}
	}

	for i, p := range out.Pix {
		if background != nil && p == *background {
			continue
		}
		out.Pix[i] = bandOf[p]
	}
	return out
}

// rgbToHSL converts an RGB triple in [0,1] to hue/saturation/lightness,
// all in [0,1]. Grounded on cairo.RgbToHSL's arithmetic.
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6
	return
}
