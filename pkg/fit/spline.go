package fit

import "rastertrace/pkg/geom"

// Degree tags a Spline's variant. The teacher's cairo.Status /
// cairo.Operator enums are plain ints with a String() method; Degree
// follows the same idiom rather than reaching for an interface per
// variant, per spec.md §9's "tagged variant for splines" note.
type Degree int

const (
	Line Degree = iota
	Cubic
)

func (d Degree) String() string {
	if d == Cubic {
		return "cubic"
	}
	return "line"
}

// Spline is one segment of a fitted outline: either a two-point line
// or a four-point cubic Bézier. Points[0] is always the start and
// Points[3] always the end; a line only uses Points[0]
// and Points[3], leaving the middle two zero, trading a little space
// for a single fixed-size representation (spec.md §9).
type Spline struct {
	Degree Degree
	Points [4]geom.Point
}

// NewLine builds a line spline from start to end.
func NewLine(start, end geom.Point) Spline {
	return Spline{Degree: Line, Points: [4]geom.Point{start, geom.Point{}, geom.Point{}, end}}
}

// NewCubic builds a cubic spline with the given four control points.
func NewCubic(p0, p1, p2, p3 geom.Point) Spline {
	return Spline{Degree: Cubic, Points: [4]geom.Point{p0, p1, p2, p3}}
}

// Start returns the spline's first point.
func (s Spline) Start() geom.Point { return s.Points[0] }

// End returns the spline's last point.
func (s Spline) End() geom.Point { return s.Points[3] }

// Control1 and Control2 return a cubic's interior control points; they
// are meaningless for a line spline.
func (s Spline) Control1() geom.Point { return s.Points[1] }
func (s Spline) Control2() geom.Point { return s.Points[2] }

// Eval evaluates the spline at parameter t in [0,1].
func (s Spline) Eval(t float64) geom.Point {
	if s.Degree == Line {
		return s.Points[0].Lerp(s.Points[3], t)
	}
	return geom.CubicEval(s.Points[0], s.Points[1], s.Points[2], s.Points[3], t)
}

// Finite reports whether every point this spline actually uses is
// finite, the invariant spec.md §7/§8 requires of emitted splines.
func (s Spline) Finite() bool {
	if !s.Points[0].Finite() || !s.Points[3].Finite() {
		return false
	}
	if s.Degree == Cubic {
		return s.Points[1].Finite() && s.Points[2].Finite()
	}
	return true
}

// SplineList is an ordered sequence of splines representing one
// fitted outline, closed if the originating pixel outline was closed.
type SplineList struct {
	Splines []Spline
	Closed  bool
	Color   [3]uint8
}

// Append adds s to the end of the list.
func (l *SplineList) Append(s Spline) {
	l.Splines = append(l.Splines, s)
}

// Concat tacks the elements of other onto the end of l, leaving other
// unchanged — the Go analogue of the teacher lineage's
// concat_spline_lists.
func (l *SplineList) Concat(other SplineList) {
	l.Splines = append(l.Splines, other.Splines...)
}

// SplineListArray is the final pipeline product: one SplineList per
// traced region.
type SplineListArray []SplineList
