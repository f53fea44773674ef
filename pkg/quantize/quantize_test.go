package quantize_test

import (
	"testing"

	"rastertrace/pkg/bitmap"
	"rastertrace/pkg/quantize"
)

func TestReduceDisabledWhenColorCountZero(t *testing.T) {
	bm, _ := bitmap.New(2, 2, 3)
	bm.Set(0, 0, bitmap.Pixel{R: 10, G: 20, B: 30})
	out := quantize.Reduce(bm, 0, nil)
	if out.At(0, 0) != bm.At(0, 0) {
		t.Fatal("colorCount=0 should leave pixels unchanged")
	}
}

func TestReduceLimitsDistinctColors(t *testing.T) {
	bm, _ := bitmap.New(1, 6, 3)
	shades := []uint8{0, 40, 80, 120, 200, 255}
	for i, v := range shades {
		bm.Set(0, i, bitmap.Pixel{R: v, G: v, B: v})
	}
	out := quantize.Reduce(bm, 2, nil)

	seen := map[bitmap.Pixel]bool{}
	for _, p := range out.Pix {
		seen[p] = true
	}
	if len(seen) > 2 {
		t.Fatalf("expected at most 2 distinct colors, got %d", len(seen))
	}
}

func TestReducePreservesBackground(t *testing.T) {
	bm, _ := bitmap.New(1, 4, 3)
	bg := bitmap.Pixel{R: 0, G: 255, B: 0}
	bm.Set(0, 0, bg)
	bm.Set(0, 1, bitmap.Pixel{R: 10, G: 0, B: 0})
	bm.Set(0, 2, bitmap.Pixel{R: 200, G: 0, B: 0})
	bm.Set(0, 3, bg)

	out := quantize.Reduce(bm, 1, &bg)
	if out.At(0, 0) != bg || out.At(0, 3) != bg {
		t.Fatal("background pixels must be left untouched")
	}
}
