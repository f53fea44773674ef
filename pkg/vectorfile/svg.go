package vectorfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"rastertrace/pkg/fit"
)

// svgSink accumulates an SVG path's "d" attribute data, the textual
// analogue of the moveto/lineto/curveto vocabulary used by epsSink.
type svgSink struct {
	b strings.Builder
}

func (s *svgSink) MoveTo(x, y float64) {
	fmt.Fprintf(&s.b, "M%.3f,%.3f ", x, y)
}

func (s *svgSink) LineTo(x, y float64) {
	fmt.Fprintf(&s.b, "L%.3f,%.3f ", x, y)
}

func (s *svgSink) CubicCurveTo(x1, y1, x2, y2, x3, y3 float64) {
	fmt.Fprintf(&s.b, "C%.3f,%.3f %.3f,%.3f %.3f,%.3f ", x1, y1, x2, y2, x3, y3)
}

func (s *svgSink) Close() {
	s.b.WriteString("Z ")
}

// WriteSVG implements spec.md §4.11: each spline list becomes one
// <path> element inside a single SVG document sized to bbox.
func WriteSVG(w io.Writer, splines fit.SplineListArray, bbox BoundingBox) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.3f\" height=\"%.3f\" viewBox=\"0 0 %.3f %.3f\">\n",
		bbox.Width, bbox.Height, bbox.Width, bbox.Height)

	for _, list := range splines {
		if len(list.Splines) == 0 {
			continue
		}
		sink := &svgSink{}
		walkSplines(sink, fit.SplineListArray{list})

		color := list.Color
		fill := "none"
		if color != ([3]uint8{}) {
			fill = fmt.Sprintf("rgb(%d,%d,%d)", color[0], color[1], color[2])
		}
		fmt.Fprintf(bw, "  <path d=\"%s\" fill=\"%s\" stroke=\"black\" stroke-width=\"0.1\" />\n",
			strings.TrimSpace(sink.b.String()), fill)
	}

	fmt.Fprintf(bw, "</svg>\n")
	return bw.Flush()
}
