package geom

// CubicEval evaluates the cubic Bézier curve with control points
// p0, p1, p2, p3 at parameter t using de Casteljau's algorithm
// (Schneider, "Graphics Gems", p.37 — the V[j][i] recurrence).
func CubicEval(p0, p1, p2, p3 Point, t float64) Point {
	v := [4]Point{p0, p1, p2, p3}
	oneMinusT := 1 - t
	for j := 1; j <= 3; j++ {
		for i := 0; i <= 3-j; i++ {
			v[i] = v[i].Scale(oneMinusT).Add(v[i+1].Scale(t))
		}
	}
	return v[0]
}

// CubicDerivative returns the first derivative B'(t) of the cubic
// Bézier curve at parameter t.
func CubicDerivative(p0, p1, p2, p3 Point, t float64) Point {
	oneMinusT := 1 - t
	d0 := p1.Sub(p0).Scale(3 * oneMinusT * oneMinusT)
	d1 := p2.Sub(p1).Scale(6 * oneMinusT * t)
	d2 := p3.Sub(p2).Scale(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// CubicSecondDerivative returns B''(t) of the cubic Bézier curve at
// parameter t.
func CubicSecondDerivative(p0, p1, p2, p3 Point, t float64) Point {
	oneMinusT := 1 - t
	d0 := p2.Sub(p1.Scale(2)).Add(p0).Scale(6 * oneMinusT)
	d1 := p3.Sub(p2.Scale(2)).Add(p1).Scale(6 * t)
	return d0.Add(d1)
}
