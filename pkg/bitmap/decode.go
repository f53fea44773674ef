package bitmap

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Load reads a bitmap from r. name is used only to pick a decoder by
// extension for formats the standard library's image.Decode does not
// self-register (BMP, TIFF) and for PNM, which has no registered
// image.Image codec at all.
func Load(r io.Reader, name string) (*Bitmap, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pnm", ".pbm", ".pgm", ".ppm":
		return LoadPNM(r)
	case ".bmp":
		img, err := bmp.Decode(r)
		if err != nil {
			return nil, &Error{Kind: ErrIO, Msg: "decoding BMP: " + err.Error()}
		}
		return fromImage(img), nil
	case ".tif", ".tiff":
		img, err := tiff.Decode(r)
		if err != nil {
			return nil, &Error{Kind: ErrIO, Msg: "decoding TIFF: " + err.Error()}
		}
		return fromImage(img), nil
	default:
		img, _, err := image.Decode(r)
		if err != nil {
			return nil, &Error{Kind: ErrIO, Msg: "decoding image: " + err.Error()}
		}
		return fromImage(img), nil
	}
}

// fromImage converts a decoded image.Image into a Bitmap, detecting
// whether the source was effectively grayscale so Planes can be set to
// 1 rather than always defaulting to 3.
func fromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	bm := &Bitmap{Width: w, Height: h, Planes: 1, Pix: make([]Pixel, w*h)}

	gray := true
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			p := Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
			if p.R != p.G || p.G != p.B {
				gray = false
			}
			bm.Pix[y*w+x] = p
		}
	}
	if !gray {
		bm.Planes = 3
	}
	return bm
}
