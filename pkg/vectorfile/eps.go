package vectorfile

import (
	"bufio"
	"fmt"
	"io"

	"rastertrace/pkg/fit"
)

// epsSink accumulates PostScript path operators, mirroring the
// moveto/lineto/curveto/closepath vocabulary the teacher's psSurface
// would hand off to the C library, but written out by hand since there
// is no CGo PostScript backend in this module.
type epsSink struct {
	w   *bufio.Writer
	err error
}

func (s *epsSink) MoveTo(x, y float64) {
	s.printf("%.3f %.3f moveto\n", x, y)
}

func (s *epsSink) LineTo(x, y float64) {
	s.printf("%.3f %.3f lineto\n", x, y)
}

func (s *epsSink) CubicCurveTo(x1, y1, x2, y2, x3, y3 float64) {
	s.printf("%.3f %.3f %.3f %.3f %.3f %.3f curveto\n", x1, y1, x2, y2, x3, y3)
}

func (s *epsSink) Close() {
	s.printf("closepath\n")
}

func (s *epsSink) printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// WriteEPS implements spec.md §4.11: an Encapsulated PostScript
// rendering of splines. Every spline list becomes a subpath of one
// path, which is stroked once at the end; nothing is filled.
func WriteEPS(w io.Writer, splines fit.SplineListArray, bbox BoundingBox) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%%!PS-Adobe-3.0 EPSF-3.0\n")
	fmt.Fprintf(bw, "%%%%BoundingBox: 0 0 %d %d\n", int(bbox.Width+0.999), int(bbox.Height+0.999))
	fmt.Fprintf(bw, "%%%%Creator: rastertrace\n")
	fmt.Fprintf(bw, "%%%%EndComments\n")
	fmt.Fprintf(bw, "0.1 setlinewidth\n")

	sink := &epsSink{w: bw}
	walkSplines(sink, splines)
	if sink.err != nil {
		return sink.err
	}

	fmt.Fprintf(bw, "stroke\n")
	fmt.Fprintf(bw, "showpage\n")
	fmt.Fprintf(bw, "%%%%EOF\n")

	return bw.Flush()
}
