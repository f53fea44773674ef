// Package geom implements the real-coordinate vector arithmetic the
// fitting pipeline is built on: point algebra and cubic Bézier
// evaluation via de Casteljau's algorithm.
package geom

import "math"

// Point is a real coordinate in ℝ³. Z is an auxiliary third dimension,
// normally 0, carried so tangent and curvature math stays uniform
// whether or not a caller ever populates it.
type Point struct {
	X, Y, Z float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

// Magnitude returns the Euclidean length of p treated as a vector.
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Normalize returns p scaled to unit length. A zero vector is returned
// unchanged rather than dividing by zero.
func (p Point) Normalize() Point {
	m := p.Magnitude()
	if m == 0 {
		return p
	}
	return p.Scale(1 / m)
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the Z component of the 2D cross product of p and q,
// ignoring the Z coordinate of both operands. The fitter uses it for
// point-to-chord perpendicular distances, which operate on (X,Y) pairs.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// AngleBetween returns the unsigned angle, in radians in [0, π],
// between vectors p and q. Degenerate (zero-length) vectors report an
// angle of π, the same convention the corner detector relies on: a
// point with no usable neighbor chord is never mistaken for a sharp
// corner.
func AngleBetween(p, q Point) float64 {
	pm, qm := p.Magnitude(), q.Magnitude()
	if pm == 0 || qm == 0 {
		return math.Pi
	}
	cos := p.Dot(q) / (pm * qm)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return p.Sub(q).Magnitude()
}

// Finite reports whether every coordinate of p is finite, the
// invariant spec.md §7 requires of every emitted control point.
func (p Point) Finite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
