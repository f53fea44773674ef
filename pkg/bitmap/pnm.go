package bitmap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// LoadPNM reads a PBM/PGM/PPM file in either the ASCII (P1/P2/P3) or
// binary (P4/P5/P6) encoding, matching the format set
// original_source/input-pnm.h names for pnm_load_image.
func LoadPNM(r io.Reader) (*Bitmap, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, &Error{Kind: ErrIO, Msg: "reading PNM magic: " + err.Error()}
	}

	var planes int
	var maxVal int
	switch magic {
	case "P1", "P4":
		planes, maxVal = 1, 1
	case "P2", "P5":
		planes = 1
	case "P3", "P6":
		planes = 3
	default:
		return nil, &Error{Kind: ErrMalformedBitmap, Msg: "unrecognized PNM magic " + magic}
	}

	width, err := readInt(br)
	if err != nil {
		return nil, &Error{Kind: ErrIO, Msg: "reading width: " + err.Error()}
	}
	height, err := readInt(br)
	if err != nil {
		return nil, &Error{Kind: ErrIO, Msg: "reading height: " + err.Error()}
	}
	if magic != "P1" && magic != "P4" {
		maxVal, err = readInt(br)
		if err != nil {
			return nil, &Error{Kind: ErrIO, Msg: "reading maxval: " + err.Error()}
		}
	}
	if maxVal <= 0 {
		maxVal = 255
	}

	bm, err := New(width, height, planes)
	if err != nil {
		return nil, err
	}

	switch magic {
	case "P1":
		if err := readASCIIBitmap(br, bm); err != nil {
			return nil, err
		}
	case "P2":
		if err := readASCIIGray(br, bm, maxVal); err != nil {
			return nil, err
		}
	case "P3":
		if err := readASCIIColor(br, bm, maxVal); err != nil {
			return nil, err
		}
	case "P4":
		if err := readBinaryBitmap(br, bm); err != nil {
			return nil, err
		}
	case "P5":
		if err := readBinaryGray(br, bm, maxVal); err != nil {
			return nil, err
		}
	case "P6":
		if err := readBinaryColor(br, bm, maxVal); err != nil {
			return nil, err
		}
	}

	return bm, nil
}

func readASCIIBitmap(r *bufio.Reader, bm *Bitmap) error {
	for i := range bm.Pix {
		v, err := readInt(r)
		if err != nil {
			return &Error{Kind: ErrIO, Msg: "reading P1 sample: " + err.Error()}
		}
		// PBM: 1 means black.
		if v != 0 {
			bm.Pix[i] = Pixel{}
		} else {
			bm.Pix[i] = Pixel{R: 255, G: 255, B: 255}
		}
	}
	return nil
}

func readASCIIGray(r *bufio.Reader, bm *Bitmap, maxVal int) error {
	for i := range bm.Pix {
		v, err := readInt(r)
		if err != nil {
			return &Error{Kind: ErrIO, Msg: "reading P2 sample: " + err.Error()}
		}
		g := scaleTo255(v, maxVal)
		bm.Pix[i] = Pixel{R: g, G: g, B: g}
	}
	return nil
}

func readASCIIColor(r *bufio.Reader, bm *Bitmap, maxVal int) error {
	for i := range bm.Pix {
		rv, err := readInt(r)
		if err != nil {
			return &Error{Kind: ErrIO, Msg: "reading P3 red sample: " + err.Error()}
		}
		gv, err := readInt(r)
		if err != nil {
			return &Error{Kind: ErrIO, Msg: "reading P3 green sample: " + err.Error()}
		}
		bv, err := readInt(r)
		if err != nil {
			return &Error{Kind: ErrIO, Msg: "reading P3 blue sample: " + err.Error()}
		}
		bm.Pix[i] = Pixel{R: scaleTo255(rv, maxVal), G: scaleTo255(gv, maxVal), B: scaleTo255(bv, maxVal)}
	}
	return nil
}

func readBinaryBitmap(r *bufio.Reader, bm *Bitmap) error {
	rowBytes := (bm.Width + 7) / 8
	row := make([]byte, rowBytes)
	for y := 0; y < bm.Height; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return &Error{Kind: ErrIO, Msg: "reading P4 row: " + err.Error()}
		}
		for x := 0; x < bm.Width; x++ {
			bit := (row[x/8] >> (7 - uint(x%8))) & 1
			if bit != 0 {
				bm.Set(x, y, Pixel{})
			} else {
				bm.Set(x, y, Pixel{R: 255, G: 255, B: 255})
			}
		}
	}
	return nil
}

func readBinaryGray(r *bufio.Reader, bm *Bitmap, maxVal int) error {
	row := make([]byte, bm.Width)
	for y := 0; y < bm.Height; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return &Error{Kind: ErrIO, Msg: "reading P5 row: " + err.Error()}
		}
		for x := 0; x < bm.Width; x++ {
			g := scaleTo255(int(row[x]), maxVal)
			bm.Set(x, y, Pixel{R: g, G: g, B: g})
		}
	}
	return nil
}

func readBinaryColor(r *bufio.Reader, bm *Bitmap, maxVal int) error {
	row := make([]byte, bm.Width*3)
	for y := 0; y < bm.Height; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return &Error{Kind: ErrIO, Msg: "reading P6 row: " + err.Error()}
		}
		for x := 0; x < bm.Width; x++ {
			bm.Set(x, y, Pixel{
				R: scaleTo255(int(row[x*3]), maxVal),
				G: scaleTo255(int(row[x*3+1]), maxVal),
				B: scaleTo255(int(row[x*3+2]), maxVal),
			})
		}
	}
	return nil
}

func scaleTo255(v, maxVal int) uint8 {
	if maxVal == 255 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	scaled := v * 255 / maxVal
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

// readToken reads one whitespace-delimited token, skipping PNM
// '#' comments which may appear between any two tokens.
func readToken(r *bufio.Reader) (string, error) {
	var b []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if len(b) > 0 {
				return string(b), nil
			}
			return "", err
		}
		if c == '#' {
			for {
				c, err := r.ReadByte()
				if err != nil || c == '\n' {
					break
				}
			}
			continue
		}
		if isSpace(c) {
			if len(b) > 0 {
				return string(b), nil
			}
			continue
		}
		b = append(b, c)
	}
}

func readInt(r *bufio.Reader) (int, error) {
	tok, err := readToken(r)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q", tok)
	}
	return v, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
