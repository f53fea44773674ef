package fit

import "rastertrace/pkg/geom"

// reparameterize implements spec.md §4.7. It is only attempted when
// the initial fit error is at or below reparameterize_threshold. Each
// u_i is adjusted by one Newton-Raphson step that minimizes
// ||B(t)-P_i||, the curve is refit with the new parameters, and the
// process repeats until the relative error improvement drops below
// reparameterize_improvement or four iterations have run.
func reparameterizeAndRefit(points []geom.Point, u []float64, tStart, tEnd geom.Point, initialP1, initialP2 geom.Point, initialError float64, opts Options) (p1, p2 geom.Point, u2 []float64, finalError float64) {
	p1, p2 = initialP1, initialP2
	finalError = initialError
	u2 = u

	if initialError > opts.ReparameterizeThreshold {
		return p1, p2, u2, finalError
	}

	p0 := points[0]
	p3 := points[len(points)-1]

	for iter := 0; iter < 4; iter++ {
		newU := make([]float64, len(u2))
		for i, t := range u2 {
			newU[i] = newtonRaphsonStep(points[i], p0, p1, p2, p3, t)
		}

		newP1, newP2, newError, _ := fitCubic(points, newU, tStart, tEnd)
		if finalError == 0 {
			break
		}
		improvement := (finalError - newError) / finalError
		p1, p2, u2, finalError = newP1, newP2, newU, newError

		if improvement < opts.ReparameterizeImprovement {
			break
		}
	}

	return p1, p2, u2, finalError
}

// newtonRaphsonStep refines parameter t toward the value that
// minimizes ||B(t)-P||, per spec.md §4.7's update rule:
//
//	t' = t - (B(t)-P).B'(t) / (|B'(t)|^2 + (B(t)-P).B''(t))
func newtonRaphsonStep(p, p0, p1, p2, p3 geom.Point, t float64) float64 {
	bt := geom.CubicEval(p0, p1, p2, p3, t)
	d1 := geom.CubicDerivative(p0, p1, p2, p3, t)
	d2 := geom.CubicSecondDerivative(p0, p1, p2, p3, t)

	diff := bt.Sub(p)
	numerator := diff.Dot(d1)
	denominator := d1.Dot(d1) + diff.Dot(d2)
	if denominator == 0 {
		return t
	}

	newT := t - numerator/denominator
	if newT < 0 {
		newT = 0
	}
	if newT > 1 {
		newT = 1
	}
	return newT
}
