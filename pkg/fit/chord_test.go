package fit

import (
	"math"
	"testing"

	"rastertrace/pkg/geom"
)

func TestChordParameterizeEndsAtZeroAndOne(t *testing.T) {
	points := []geom.Point{{X: 0}, {X: 1}, {X: 3}, {X: 6}}
	u := chordParameterize(points)
	if u[0] != 0 {
		t.Errorf("u[0] = %v, want 0", u[0])
	}
	if math.Abs(u[len(u)-1]-1) > 1e-9 {
		t.Errorf("u[last] = %v, want 1", u[len(u)-1])
	}
	for i := 1; i < len(u); i++ {
		if u[i] < u[i-1] {
			t.Errorf("u not monotonic at %d: %v then %v", i, u[i-1], u[i])
		}
	}
}

func TestChordParameterizeDegenerateIsUniform(t *testing.T) {
	points := []geom.Point{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}}
	u := chordParameterize(points)
	want := []float64{0, 0.5, 1}
	for i := range u {
		if math.Abs(u[i]-want[i]) > 1e-9 {
			t.Errorf("u[%d] = %v, want %v", i, u[i], want[i])
		}
	}
}

func TestPerpendicularDistanceOnChord(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	p := geom.Point{X: 5, Y: 3}
	d := perpendicularDistance(p, a, b)
	if math.Abs(d-3) > 1e-9 {
		t.Errorf("perpendicularDistance = %v, want 3", d)
	}
}

func TestMaxChordDeviationFindsPeak(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 5}, {X: 3, Y: 1}, {X: 4, Y: 0}}
	maxDist, at := maxChordDeviation(points)
	if at != 2 {
		t.Errorf("peak at %d, want 2", at)
	}
	if maxDist <= 0 {
		t.Errorf("maxDist = %v, want > 0", maxDist)
	}
}
