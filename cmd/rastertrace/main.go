// Command rastertrace traces a raster bitmap into a vector drawing.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rastertrace/pkg/bitmap"
	"rastertrace/pkg/fit"
	"rastertrace/pkg/quantize"
	"rastertrace/pkg/thin"
	"rastertrace/pkg/trace"
	"rastertrace/pkg/vectorfile"
)

const usage = `rastertrace - convert a raster bitmap into a vector drawing

Usage:
  rastertrace -input in.pnm -output out.svg [options]

Options:
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "rastertrace: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("rastertrace", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	input := fs.String("input", "", "input bitmap file (pnm, bmp, tiff, png, jpeg, gif)")
	output := fs.String("output", "", "output vector file; extension selects the format (.eps, .svg, .pdf)")
	format := fs.String("format", "", "output format override: eps, svg, pdf (default: from -output's extension)")
	colorCount := fs.Uint("color-count", 0, "quantize to this many colors before tracing (0 disables)")
	doThin := fs.Bool("thin", false, "thin the bitmap to single-pixel-wide lines before tracing")
	errorThreshold := fs.Float64("error-threshold", fit.Default().ErrorThreshold, "maximum pointwise fit error before subdividing an arc")
	cornerThreshold := fs.Float64("corner-threshold", fit.Default().CornerThreshold, "degrees below which a point may be marked a corner")
	lineThreshold := fs.Float64("line-threshold", fit.Default().LineThreshold, "maximum chord deviation before an arc is emitted as a line")
	removeAdjCorners := fs.Bool("remove-adjacent-corners", fit.Default().RemoveAdjCorners, "collapse runs of adjacent corners to their sharpest point")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *input == "" || *output == "" {
		fs.Usage()
		return fmt.Errorf("both -input and -output are required")
	}

	opts := fit.Default()
	opts.ColorCount = *colorCount
	opts.Thin = *doThin
	opts.ErrorThreshold = *errorThreshold
	opts.CornerThreshold = *cornerThreshold
	opts.LineThreshold = *lineThreshold
	opts.RemoveAdjCorners = *removeAdjCorners
	if err := opts.Validate(); err != nil {
		return err
	}

	outFormat, err := resolveFormat(*format, *output)
	if err != nil {
		return err
	}

	splines, bbox, err := traceFile(*input, opts)
	if err != nil {
		return err
	}

	out, err := os.Create(*output)
	if err != nil {
		return &bitmap.Error{Kind: bitmap.ErrIO, Msg: err.Error()}
	}
	defer out.Close()

	if err := vectorfile.Write(out, outFormat, splines, bbox); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "rastertrace: wrote %d spline list(s) to %s\n", len(splines), *output)
	return nil
}

func resolveFormat(explicit, outputPath string) (vectorfile.Format, error) {
	if explicit != "" {
		return vectorfile.FormatFromExtension(strings.ToLower(explicit))
	}
	return vectorfile.FormatFromExtension(strings.ToLower(filepath.Ext(outputPath)))
}

func traceFile(path string, opts fit.Options) (fit.SplineListArray, vectorfile.BoundingBox, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, vectorfile.BoundingBox{}, &bitmap.Error{Kind: bitmap.ErrIO, Msg: err.Error()}
	}
	defer f.Close()

	bm, err := bitmap.Load(f, path)
	if err != nil {
		return nil, vectorfile.BoundingBox{}, err
	}

	if opts.ColorCount > 0 {
		bm = quantize.Reduce(bm, int(opts.ColorCount), opts.BackgroundColor)
	}
	if opts.Thin {
		if err := thin.Thin(bm); err != nil {
			return nil, vectorfile.BoundingBox{}, err
		}
	}

	outlines := trace.FindOutlinePixels(bm, opts.BackgroundColor)
	splines, err := fit.FittedSplines(outlines, opts)
	if err != nil {
		return nil, vectorfile.BoundingBox{}, err
	}

	bbox := vectorfile.BoundingBox{Width: float64(bm.Width), Height: float64(bm.Height)}
	return splines, bbox, nil
}
