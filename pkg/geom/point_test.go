package geom_test

import (
	"math"
	"testing"

	"rastertrace/pkg/geom"
)

func TestPointAddSub(t *testing.T) {
	p := geom.Point{X: 1, Y: 2, Z: 3}
	q := geom.Point{X: 4, Y: -1, Z: 0}
	sum := p.Add(q)
	if sum != (geom.Point{X: 5, Y: 1, Z: 3}) {
		t.Fatalf("Add: got %+v", sum)
	}
	diff := p.Sub(q)
	if diff != (geom.Point{X: -3, Y: 3, Z: 3}) {
		t.Fatalf("Sub: got %+v", diff)
	}
}

func TestPointNormalize(t *testing.T) {
	p := geom.Point{X: 3, Y: 4}
	n := p.Normalize()
	if math.Abs(n.Magnitude()-1) > 1e-9 {
		t.Fatalf("expected unit length, got %v", n.Magnitude())
	}

	zero := geom.Point{}
	if zero.Normalize() != zero {
		t.Fatalf("normalizing the zero vector should not divide by zero")
	}
}

func TestAngleBetween(t *testing.T) {
	a := geom.Point{X: 1, Y: 0}
	b := geom.Point{X: 0, Y: 1}
	if got := geom.AngleBetween(a, b); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Fatalf("expected pi/2, got %v", got)
	}

	c := geom.Point{X: -1, Y: 0}
	if got := geom.AngleBetween(a, c); math.Abs(got-math.Pi) > 1e-9 {
		t.Fatalf("expected pi, got %v", got)
	}

	if got := geom.AngleBetween(geom.Point{}, a); got != math.Pi {
		t.Fatalf("degenerate vector should report pi, got %v", got)
	}
}

func TestCubicEvalEndpoints(t *testing.T) {
	p0 := geom.Point{X: 0, Y: 0}
	p1 := geom.Point{X: 1, Y: 1}
	p2 := geom.Point{X: 2, Y: 1}
	p3 := geom.Point{X: 3, Y: 0}

	if got := geom.CubicEval(p0, p1, p2, p3, 0); got != p0 {
		t.Fatalf("B(0) should equal p0, got %+v", got)
	}
	if got := geom.CubicEval(p0, p1, p2, p3, 1); got != p3 {
		t.Fatalf("B(1) should equal p3, got %+v", got)
	}
}

func TestCubicDerivativeMatchesFiniteDifference(t *testing.T) {
	p0 := geom.Point{X: 0, Y: 0}
	p1 := geom.Point{X: 1, Y: 2}
	p2 := geom.Point{X: 2, Y: -1}
	p3 := geom.Point{X: 3, Y: 0}

	const h = 1e-6
	t0 := 0.4
	approx := geom.CubicEval(p0, p1, p2, p3, t0+h).Sub(geom.CubicEval(p0, p1, p2, p3, t0-h)).Scale(1 / (2 * h))
	exact := geom.CubicDerivative(p0, p1, p2, p3, t0)

	if math.Abs(approx.X-exact.X) > 1e-3 || math.Abs(approx.Y-exact.Y) > 1e-3 {
		t.Fatalf("derivative mismatch: approx=%+v exact=%+v", approx, exact)
	}
}

func TestFinite(t *testing.T) {
	if !(geom.Point{X: 1, Y: 2}).Finite() {
		t.Fatal("expected finite point to report finite")
	}
	if (geom.Point{X: math.NaN()}).Finite() {
		t.Fatal("NaN coordinate should not be finite")
	}
	if (geom.Point{X: math.Inf(1)}).Finite() {
		t.Fatal("Inf coordinate should not be finite")
	}
}
