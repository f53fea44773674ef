package vectorfile

import (
	"io"

	"github.com/llgcode/draw2d/draw2dpdf"

	"rastertrace/pkg/fit"
)

// pdfSink adapts draw2d's GraphicContext, exactly as the teacher's
// cairo.context replays its recorded path operations onto a
// draw2d.GraphicContext in drawPath (MoveTo/LineTo/CubicCurveTo/Close),
// the difference being that here the GraphicContext is draw2dpdf's
// rather than draw2dimg's.
type pdfSink struct {
	gc *draw2dpdf.GraphicContext
}

func (s *pdfSink) MoveTo(x, y float64) { s.gc.MoveTo(x, y) }
func (s *pdfSink) LineTo(x, y float64) { s.gc.LineTo(x, y) }
func (s *pdfSink) CubicCurveTo(x1, y1, x2, y2, x3, y3 float64) {
	s.gc.CubicCurveTo(x1, y1, x2, y2, x3, y3)
}
func (s *pdfSink) Close() { s.gc.Close() }

// WritePDF implements spec.md §4.11's third output format, reusing the
// teacher's draw2d stack: a single-page PDF, one path per spline list,
// filled with the list's color and stroked, or only stroked when the
// list's color is zero.
func WritePDF(w io.Writer, splines fit.SplineListArray, bbox BoundingBox) error {
	pdf := draw2dpdf.NewPdf("P", "pt", "")
	pdf.AddPage()
	gc := draw2dpdf.NewGraphicContext(pdf)
	gc.SetLineWidth(0.1)

	for _, list := range splines {
		if len(list.Splines) == 0 {
			continue
		}
		sink := &pdfSink{gc: gc}
		walkSplines(sink, fit.SplineListArray{list})
		if list.Color != ([3]uint8{}) {
			gc.SetFillColor(colorOf(list.Color))
			gc.FillStroke()
		} else {
			gc.Stroke()
		}
	}

	return pdf.Output(w)
}

func colorOf(c [3]uint8) pdfColor {
	return pdfColor{R: c[0], G: c[1], B: c[2], A: 255}
}

// pdfColor satisfies color.Color via the standard RGBA method, the
// minimal adapter draw2d's GraphicContext.SetFillColor needs.
type pdfColor struct{ R, G, B, A uint8 }

func (c pdfColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
