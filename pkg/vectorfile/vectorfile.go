// Package vectorfile implements spec.md §4.11's output writers: the
// three vector formats a fitted SplineListArray can be serialized to.
// Each writer walks the same MoveTo/LineTo/CubicCurveTo/Close path
// idiom the teacher's cairo.Context uses to drive a draw2d.GraphicContext,
// adapted here to either emit that idiom against a real
// draw2d.GraphicContext (PDF) or against a small textual path builder
// of our own (EPS, SVG).
package vectorfile

import (
	"fmt"

	"rastertrace/pkg/bitmap"
	"rastertrace/pkg/fit"
)

// Format identifies an output vector format.
type Format int

const (
	FormatEPS Format = iota
	FormatSVG
	FormatPDF
)

func (f Format) String() string {
	switch f {
	case FormatSVG:
		return "svg"
	case FormatPDF:
		return "pdf"
	default:
		return "eps"
	}
}

// FormatFromExtension maps a filename extension (with or without the
// leading dot) to a Format. An unrecognized extension is an
// ErrInvalidOptions error, matching spec.md §7's error classes.
func FormatFromExtension(ext string) (Format, error) {
	switch ext {
	case ".eps", "eps", "":
		return FormatEPS, nil
	case ".svg", "svg":
		return FormatSVG, nil
	case ".pdf", "pdf":
		return FormatPDF, nil
	default:
		return 0, &bitmap.Error{Kind: bitmap.ErrInvalidOptions, Msg: fmt.Sprintf("unrecognized output extension %q", ext)}
	}
}

// pathSink receives the same four path-construction calls the
// teacher's cairo.Context.strokeToPath replay loop issues against a
// draw2d.GraphicContext (MoveTo, LineTo, CubicCurveTo, Close), letting
// one walk of a SplineListArray drive any of the three writers below.
type pathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicCurveTo(x1, y1, x2, y2, x3, y3 float64)
	Close()
}

// walkSplines replays every spline list in splines against sink, one
// MoveTo per list followed by a LineTo or CubicCurveTo per spline, and
// a Close when the list is closed.
func walkSplines(sink pathSink, splines fit.SplineListArray) {
	for _, list := range splines {
		if len(list.Splines) == 0 {
			continue
		}
		start := list.Splines[0].Start()
		sink.MoveTo(start.X, start.Y)
		for _, s := range list.Splines {
			if s.Degree == fit.Cubic {
				c1, c2, end := s.Control1(), s.Control2(), s.End()
				sink.CubicCurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			} else {
				end := s.End()
				sink.LineTo(end.X, end.Y)
			}
		}
		if list.Closed {
			sink.Close()
		}
	}
}

// BoundingBox is the output canvas size in points, used to size the
// EPS %%BoundingBox comment, the SVG viewBox, and the PDF page.
type BoundingBox struct {
	Width, Height float64
}
