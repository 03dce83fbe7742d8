package glyphmerge

import (
	"math"
	"math/big"
)

// XMonotoneCurve is a curve segment that is monotone in x, expressed
// lazily as a parameter range [T0, T1] over an undivided SupportCurve.
// The sub-curve is only materialised (via Materialize, using exact
// de Casteljau subdivision) when it is actually needed — for boundary
// tracing, for SignedArea, or for reconstruction back into a Curve.
// Grounded on original_source/libcsmerge/src/Geometry.cpp's
// XMonotoneTransversal/cubicBezierFromXMonoSection pairing of "original
// curve + range" rather than eagerly subdividing every piece.
type XMonotoneCurve struct {
	Base   SupportCurve
	T0, T1 *big.Rat
}

// Materialize returns the SupportCurve restricted to [T0, T1].
func (x XMonotoneCurve) Materialize() SupportCurve {
	return subRange(x.Base, x.T0, x.T1)
}

// Curve lowers the materialised sub-curve to a float64 Curve.
func (x XMonotoneCurve) Curve() Curve {
	return x.Materialize().Curve()
}

func (x XMonotoneCurve) InitialPoint() Point { return x.Curve().InitialPoint() }
func (x XMonotoneCurve) FinalPoint() Point   { return x.Curve().FinalPoint() }

// Reversed returns the same curve traversed the other direction, as a
// materialised curve over the full [0, 1] range.
func (x XMonotoneCurve) Reversed() XMonotoneCurve {
	sub := x.Materialize()
	n := len(sub.Points)
	rev := make([]RPoint, n)
	for i, p := range sub.Points {
		rev[n-1-i] = p
	}
	return XMonotoneCurve{Base: SupportCurve{Points: rev}, T0: big.NewRat(0, 1), T1: big.NewRat(1, 1)}
}

// MakeXMonotone splits a SupportCurve into one or more x-monotone
// pieces. Lines are always monotone (including the degenerate vertical
// case) and yield a single piece. A cubic is split at the real roots of
// its x-derivative inside (0, 1): up to two such roots, producing up to
// three pieces (spec.md's x-monotone requirement feeding into the
// boolean engine, SPEC_FULL.md §1/§11).
//
// The split parameters themselves are located with ordinary
// floating-point root-finding rather than an exact algebraic kernel (no
// such kernel is available in the retrieved Go ecosystem, unlike the
// original's CGAL-backed implementation — see DESIGN.md); once located,
// the actual subdivision at that parameter is performed with exact
// rational arithmetic, so curve geometry downstream of the split is
// still exact.
func MakeXMonotone(s SupportCurve) []XMonotoneCurve {
	zero := big.NewRat(0, 1)
	one := big.NewRat(1, 1)

	if s.degree() == 1 {
		return []XMonotoneCurve{{Base: s, T0: zero, T1: one}}
	}

	roots := cubicDerivRootsX(s)
	bounds := make([]*big.Rat, 0, len(roots)+2)
	bounds = append(bounds, zero)
	for _, t := range roots {
		bounds = append(bounds, ratFromFloat(t))
	}
	bounds = append(bounds, one)

	pieces := make([]XMonotoneCurve, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		if bounds[i].Cmp(bounds[i+1]) >= 0 {
			continue
		}
		pieces = append(pieces, XMonotoneCurve{Base: s, T0: bounds[i], T1: bounds[i+1]})
	}
	if len(pieces) == 0 {
		pieces = append(pieces, XMonotoneCurve{Base: s, T0: zero, T1: one})
	}
	return pieces
}

// cubicDerivRootsX returns the real roots in (0,1) of the x-component
// of s's derivative, i.e. the parameters where the curve's tangent is
// vertical. The derivative of a cubic Bezier is a quadratic Bezier with
// control values 3(x1-x0), 3(x2-x1), 3(x3-x2); expanding that into
// standard quadratic form a*t^2+b*t+c gives the roots below.
func cubicDerivRootsX(s SupportCurve) []float64 {
	x0, _ := s.Points[0].X.Float64()
	x1, _ := s.Points[1].X.Float64()
	x2, _ := s.Points[2].X.Float64()
	x3, _ := s.Points[3].X.Float64()

	q0 := 3 * (x1 - x0)
	q1 := 3 * (x2 - x1)
	q2 := 3 * (x3 - x2)

	a := q0 - 2*q1 + q2
	b := 2 * (q1 - q0)
	c := q0

	const eps = 1e-12
	var roots []float64
	if a == 0 {
		if b != 0 {
			t := -c / b
			if t > eps && t < 1-eps {
				roots = append(roots, t)
			}
		}
		return roots
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	for _, t := range []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)} {
		if t > eps && t < 1-eps {
			roots = append(roots, t)
		}
	}
	if len(roots) == 2 && roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	return roots
}

// SignedArea computes twice the shoelace area of a closed boundary's
// control polygon (its curve endpoints in order): positive for a
// counter-clockwise boundary, negative for clockwise. Used to classify
// a boundary as an outer contour or a hole (spec.md §4.4.1). Grounded
// on the orientation test in
// original_source/libcsmerge/src/Geometry.cpp's toPolyList, which
// likewise tests the sign of the accumulated cross product rather than
// computing the true curved area.
func SignedArea(boundary []XMonotoneCurve) float64 {
	if len(boundary) == 0 {
		return 0
	}
	var area float64
	for _, seg := range boundary {
		a := seg.InitialPoint()
		b := seg.FinalPoint()
		area += a.X*b.Y - b.X*a.Y
	}
	return area
}
