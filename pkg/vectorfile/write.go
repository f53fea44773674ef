package vectorfile

import (
	"io"

	"rastertrace/pkg/fit"
)

// Write dispatches to the writer for format.
func Write(w io.Writer, format Format, splines fit.SplineListArray, bbox BoundingBox) error {
	switch format {
	case FormatSVG:
		return WriteSVG(w, splines, bbox)
	case FormatPDF:
		return WritePDF(w, splines, bbox)
	default:
		return WriteEPS(w, splines, bbox)
	}
}
