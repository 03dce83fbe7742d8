package glyphmerge

import "fmt"

// CurveKind distinguishes the two shapes a Curve can take.
type CurveKind int

const (
	// CurveLine is a straight LineSegment between two endpoints.
	CurveLine CurveKind = iota
	// CurveCubic is a CubicBezier with four control points.
	CurveCubic
)

// Curve is a tagged variant: a LineSegment (A, B) or a CubicBezier
// (A, B, C, D). Curves are value types; there is no virtual dispatch,
// only a switch on Kind.
type Curve struct {
	Kind CurveKind
	A, B, C, D Point
}

// Line builds a LineSegment curve from A to B.
func Line(a, b Point) Curve {
	return Curve{Kind: CurveLine, A: a, B: b}
}

// Cubic builds a CubicBezier curve with control points A, B, C, D.
func Cubic(a, b, c, d Point) Curve {
	return Curve{Kind: CurveCubic, A: a, B: b, C: c, D: d}
}

// InitialPoint returns the curve's starting endpoint.
func (c Curve) InitialPoint() Point {
	return c.A
}

// FinalPoint returns the curve's ending endpoint.
func (c Curve) FinalPoint() Point {
	switch c.Kind {
	case CurveLine:
		return c.B
	default:
		return c.D
	}
}

// WithInitialPoint returns a copy of c with its starting endpoint
// replaced by p, leaving every other control point untouched. This is
// the value-type equivalent of the mutator in spec.md §3 used to
// enforce contiguity after floating-point drift.
func (c Curve) WithInitialPoint(p Point) Curve {
	c.A = p
	return c
}

// WithFinalPoint returns a copy of c with its terminal endpoint
// replaced by p (spec.md §4.4.1's seam-correction step in toPolyList).
func (c Curve) WithFinalPoint(p Point) Curve {
	switch c.Kind {
	case CurveLine:
		c.B = p
	default:
		c.D = p
	}
	return c
}

// Equal reports whether c and rhs describe the same curve shape under
// the given point tolerance.
func (c Curve) Equal(rhs Curve, tolerance float64) bool {
	if c.Kind != rhs.Kind {
		return false
	}
	if !c.A.Equal(rhs.A, tolerance) || !c.B.Equal(rhs.B, tolerance) {
		return false
	}
	if c.Kind == CurveCubic {
		return c.C.Equal(rhs.C, tolerance) && c.D.Equal(rhs.D, tolerance)
	}
	return true
}

func (c Curve) String() string {
	switch c.Kind {
	case CurveLine:
		return fmt.Sprintf("LineSegment[%s, %s]", c.A, c.B)
	default:
		return fmt.Sprintf("CubicBezier[%s, %s, %s, %s]", c.A, c.B, c.C, c.D)
	}
}
