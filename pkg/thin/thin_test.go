package thin_test

import (
	"testing"

	"rastertrace/pkg/bitmap"
	"rastertrace/pkg/thin"
)

func solidBlock(w, h int) *bitmap.Bitmap {
	bm, _ := bitmap.New(w, h, 1)
	for i := range bm.Pix {
		bm.Pix[i] = bitmap.Pixel{}
	}
	return bm
}

func countBlack(bm *bitmap.Bitmap) int {
	n := 0
	for _, p := range bm.Pix {
		if p.Gray() < 128 {
			n++
		}
	}
	return n
}

func TestThinReducesBlockToFewerPixels(t *testing.T) {
	bm := solidBlock(10, 10)
	before := countBlack(bm)
	if err := thin.Thin(bm); err != nil {
		t.Fatal(err)
	}
	after := countBlack(bm)
	if after >= before {
		t.Fatalf("expected thinning to remove pixels: before=%d after=%d", before, after)
	}
}

func TestThinIsIdempotent(t *testing.T) {
	bm := solidBlock(12, 12)
	if err := thin.Thin(bm); err != nil {
		t.Fatal(err)
	}
	once := countBlack(bm)
	if err := thin.Thin(bm); err != nil {
		t.Fatal(err)
	}
	twice := countBlack(bm)
	if once != twice {
		t.Fatalf("second thinning pass should be a no-op: once=%d twice=%d", once, twice)
	}
}

func TestThinRejectsEmptyBitmap(t *testing.T) {
	bm := &bitmap.Bitmap{}
	if err := thin.Thin(bm); err == nil {
		t.Fatal("expected error for empty bitmap")
	}
}
