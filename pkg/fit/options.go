// Package fit implements the raster-to-spline fitting pipeline:
// tangent estimation, corner detection, smoothing, least-squares cubic
// Bézier fitting with recursive subdivision and Newton-Raphson
// reparameterization, and line reversion (spec.md §4.3-§4.10).
package fit

import (
	"fmt"

	"rastertrace/pkg/bitmap"
)

// Options bundles every tunable of the fitting pipeline. It is passed
// by value to every fit invocation and never mutated by the core,
// matching spec.md §9's "options-as-configuration-object" note.
type Options struct {
	BackgroundColor *bitmap.Pixel

	ColorCount uint

	CornerAlwaysThreshold float64 // degrees
	CornerSurround        uint
	CornerThreshold       float64 // degrees

	ErrorThreshold float64

	FilterAlternativeSurround uint
	FilterEpsilon             float64 // degrees
	FilterIterationCount      uint
	FilterPercent             float64
	FilterSurround            uint

	LineReversionThreshold float64
	LineThreshold          float64

	ReparameterizeImprovement float64
	ReparameterizeThreshold   float64

	SubdivideSearch    float64
	SubdivideSurround  uint
	SubdivideThreshold float64

	TangentSurround uint

	RemoveAdjCorners bool
	Thin             bool
}

// Default returns the fitting options table from spec.md §3 with every
// field at its documented default.
func Default() Options {
	return Options{
		ColorCount:                0,
		CornerAlwaysThreshold:     60,
		CornerSurround:            4,
		CornerThreshold:           100,
		ErrorThreshold:            2.0,
		FilterAlternativeSurround: 1,
		FilterEpsilon:             10.0,
		FilterIterationCount:      4,
		FilterPercent:             0.33,
		FilterSurround:            2,
		LineReversionThreshold:    0.01,
		LineThreshold:             1.0,
		ReparameterizeImprovement: 0.10,
		ReparameterizeThreshold:   30,
		SubdivideSearch:           0.10,
		SubdivideSurround:         4,
		SubdivideThreshold:        0.03,
		TangentSurround:           3,
		RemoveAdjCorners:          false,
		Thin:                      false,
	}
}

// Validate rejects the invalid-options error class spec.md §7 names:
// out-of-range percentages and negative thresholds.
func (o Options) Validate() error {
	type fraction struct {
		name string
		v    float64
	}
	for _, f := range []fraction{
		{"FilterPercent", o.FilterPercent},
		{"ReparameterizeImprovement", o.ReparameterizeImprovement},
		{"SubdivideSearch", o.SubdivideSearch},
	} {
		if f.v < 0 || f.v > 1 {
			return &bitmap.Error{Kind: bitmap.ErrInvalidOptions, Msg: fmt.Sprintf("%s must be in [0,1], got %v", f.name, f.v)}
		}
	}

	type nonNegative struct {
		name string
		v    float64
	}
	for _, n := range []nonNegative{
		{"CornerAlwaysThreshold", o.CornerAlwaysThreshold},
		{"CornerThreshold", o.CornerThreshold},
		{"ErrorThreshold", o.ErrorThreshold},
		{"FilterEpsilon", o.FilterEpsilon},
		{"LineReversionThreshold", o.LineReversionThreshold},
		{"LineThreshold", o.LineThreshold},
		{"ReparameterizeThreshold", o.ReparameterizeThreshold},
		{"SubdivideThreshold", o.SubdivideThreshold},
	} {
		if n.v < 0 {
			return &bitmap.Error{Kind: bitmap.ErrInvalidOptions, Msg: fmt.Sprintf("%s must be non-negative, got %v", n.name, n.v)}
		}
	}

	if o.CornerAlwaysThreshold > o.CornerThreshold {
		return &bitmap.Error{Kind: bitmap.ErrInvalidOptions, Msg: "CornerAlwaysThreshold must not exceed CornerThreshold"}
	}

	return nil
}
