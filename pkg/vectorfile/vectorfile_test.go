package vectorfile

import (
	"bytes"
	"strings"
	"testing"

	"rastertrace/pkg/geom"

	"rastertrace/pkg/fit"
)

func sampleSplines() fit.SplineListArray {
	line := fit.NewLine(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	cubic := fit.NewCubic(
		geom.Point{X: 10, Y: 0}, geom.Point{X: 12, Y: 2},
		geom.Point{X: 8, Y: 8}, geom.Point{X: 10, Y: 10},
	)
	return fit.SplineListArray{
		{Splines: []fit.Spline{line, cubic}, Closed: true, Color: [3]uint8{255, 0, 0}},
	}
}

func TestFormatFromExtensionRecognizesKnownFormats(t *testing.T) {
	cases := map[string]Format{".eps": FormatEPS, ".svg": FormatSVG, ".pdf": FormatPDF, "": FormatEPS}
	for ext, want := range cases {
		got, err := FormatFromExtension(ext)
		if err != nil {
			t.Fatalf("FormatFromExtension(%q): %v", ext, err)
		}
		if got != want {
			t.Errorf("FormatFromExtension(%q) = %v, want %v", ext, got, want)
		}
	}
}

func TestFormatFromExtensionRejectsUnknown(t *testing.T) {
	if _, err := FormatFromExtension(".xyz"); err == nil {
		t.Fatal("expected error for unrecognized extension")
	}
}

func TestWriteEPSContainsBoundingBoxAndPathOps(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEPS(&buf, sampleSplines(), BoundingBox{Width: 20, Height: 20}); err != nil {
		t.Fatalf("WriteEPS: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "%%BoundingBox") {
		t.Error("missing bounding box comment")
	}
	if !strings.Contains(out, "moveto") || !strings.Contains(out, "curveto") {
		t.Error("missing expected path operators")
	}
}

func TestWriteSVGProducesValidishDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, sampleSplines(), BoundingBox{Width: 20, Height: 20}); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("missing svg root element")
	}
	if !strings.Contains(out, "<path d=") {
		t.Error("missing path element")
	}
	if !strings.Contains(out, "rgb(255,0,0)") {
		t.Error("missing fill color")
	}
}

func TestWriteDispatchesOnFormat(t *testing.T) {
	var svgBuf, epsBuf bytes.Buffer
	if err := Write(&svgBuf, FormatSVG, sampleSplines(), BoundingBox{Width: 10, Height: 10}); err != nil {
		t.Fatalf("Write svg: %v", err)
	}
	if !strings.Contains(svgBuf.String(), "<svg") {
		t.Error("Write did not dispatch to SVG writer")
	}
	if err := Write(&epsBuf, FormatEPS, sampleSplines(), BoundingBox{Width: 10, Height: 10}); err != nil {
		t.Fatalf("Write eps: %v", err)
	}
	if !strings.Contains(epsBuf.String(), "%!PS") {
		t.Error("Write did not dispatch to EPS writer")
	}
}
