package fit

import (
	"testing"

	"rastertrace/pkg/geom"
)

// reparameterization is skipped entirely once the fit error already
// exceeds reparameterize_threshold.
func TestReparameterizeSkippedAboveThreshold(t *testing.T) {
	points := []geom.Point{{X: 0}, {X: 1, Y: 5}, {X: 2}}
	u := []float64{0, 0.5, 1}
	opts := Default()
	p1 := geom.Point{X: 1}
	p2 := geom.Point{X: 1}
	_, _, u2, finalErr := reparameterizeAndRefit(points, u, geom.Point{X: 1}, geom.Point{X: -1}, p1, p2, opts.ReparameterizeThreshold+1, opts)
	if finalErr != opts.ReparameterizeThreshold+1 {
		t.Errorf("expected untouched error, got %v", finalErr)
	}
	for i := range u2 {
		if u2[i] != u[i] {
			t.Errorf("expected untouched u, got %v", u2)
		}
	}
}

// a Newton-Raphson step on a point already exactly on the curve should
// not move the parameter.
func TestNewtonRaphsonStepStaysPutOnCurve(t *testing.T) {
	p0 := geom.Point{}
	p1 := geom.Point{X: 1}
	p2 := geom.Point{X: 2}
	p3 := geom.Point{X: 3}
	t0 := 0.5
	onCurve := geom.CubicEval(p0, p1, p2, p3, t0)
	got := newtonRaphsonStep(onCurve, p0, p1, p2, p3, t0)
	if got < 0.49 || got > 0.51 {
		t.Errorf("newtonRaphsonStep = %v, want ~0.5", got)
	}
}

// the step always clamps into [0,1].
func TestNewtonRaphsonStepClamps(t *testing.T) {
	p0 := geom.Point{}
	p1 := geom.Point{X: 1}
	p2 := geom.Point{X: 2}
	p3 := geom.Point{X: 3}
	far := geom.Point{X: -100, Y: 100}
	got := newtonRaphsonStep(far, p0, p1, p2, p3, 0.01)
	if got < 0 || got > 1 {
		t.Errorf("newtonRaphsonStep out of range: %v", got)
	}
}
