package fit

import "rastertrace/pkg/geom"

// fitCubic implements spec.md §4.6: given arc points, their
// parameters u, and unit tangents at the endpoints, solve for the two
// interior control points that minimize the least-squares fit error,
// and report the resulting maximum pointwise error.
//
// tStart points away from P0 along the direction of travel; tEnd
// points away from Pn back into the arc (i.e. already reversed
// relative to the direction of travel at the end) — both control
// points are then P0+alpha1*tStart and Pn+alpha2*tEnd.
//
// The minimization reduces to a 2x2 linear system in the magnitudes
// alpha1 = |C1-P0| and alpha2 = |C2-Pn|, solved by Cramer's rule. A
// singular system, or a non-positive solved magnitude, falls back to
// placing each control point a third of the chord length from its
// endpoint along the tangent (Schneider, "Graphics Gems").
func fitCubic(points []geom.Point, u []float64, tStart, tEnd geom.Point) (p1, p2 geom.Point, maxError float64, atIndex int) {
	p0 := points[0]
	p3 := points[len(points)-1]

	var c00, c01, c11, x0, x1 float64
	for i, pt := range u {
		b0 := bernstein0(pt)
		b1 := bernstein1(pt)
		b2 := bernstein2(pt)
		b3 := bernstein3(pt)

		a1 := tStart.Scale(b1)
		a2 := tEnd.Scale(b2)

		c00 += a1.Dot(a1)
		c01 += a1.Dot(a2)
		c11 += a2.Dot(a2)

		shortfall := points[i].Sub(p0.Scale(b0 + b1)).Sub(p3.Scale(b2 + b3))
		x0 += a1.Dot(shortfall)
		x1 += a2.Dot(shortfall)
	}

	det := c00*c11 - c01*c01
	chord := geom.Distance(p0, p3)

	var alpha1, alpha2 float64
	useFallback := false
	if absf(det) < 1e-12 {
		useFallback = true
	} else {
		alpha1 = (x0*c11 - x1*c01) / det
		alpha2 = (c00*x1 - c01*x0) / det
		if alpha1 <= 0 || alpha2 <= 0 {
			useFallback = true
		}
	}

	if useFallback {
		third := chord / 3
		alpha1, alpha2 = third, third
	}

	p1 = p0.Add(tStart.Scale(alpha1))
	p2 = p3.Add(tEnd.Scale(alpha2))

	maxError, atIndex = cubicFitError(points, u, p0, p1, p2, p3)
	return p1, p2, maxError, atIndex
}

// cubicFitError returns max_i ||B(u_i) - P_i|| and the index at which
// it occurs.
func cubicFitError(points []geom.Point, u []float64, p0, p1, p2, p3 geom.Point) (maxError float64, atIndex int) {
	for i, t := range u {
		d := geom.Distance(geom.CubicEval(p0, p1, p2, p3, t), points[i])
		if d > maxError {
			maxError = d
			atIndex = i
		}
	}
	return maxError, atIndex
}

func bernstein0(t float64) float64 { u := 1 - t; return u * u * u }
func bernstein1(t float64) float64 { u := 1 - t; return 3 * u * u * t }
func bernstein2(t float64) float64 { u := 1 - t; return 3 * u * t * t }
func bernstein3(t float64) float64 { return t * t * t }
