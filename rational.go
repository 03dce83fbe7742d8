package glyphmerge

import "math/big"

// SupportCurve is the exact-rational counterpart of Curve: a line
// (len(Points)==2) or a cubic (len(Points)==4), expressed over RPoint
// control points. x-monotone splitting and the boolean engine work
// exclusively in this representation so that subdivision and
// intersection never accumulate floating-point error (SPEC_FULL.md
// §11, grounding: original_source/libcsmerge/src/Geometry.cpp's use of
// CGAL's exact kernel for the same purpose).
type SupportCurve struct {
	Points []RPoint
}

// LineSupport builds a degree-1 SupportCurve.
func LineSupport(a, b RPoint) SupportCurve {
	return SupportCurve{Points: []RPoint{a, b}}
}

// CubicSupport builds a degree-3 SupportCurve.
func CubicSupport(a, b, c, d RPoint) SupportCurve {
	return SupportCurve{Points: []RPoint{a, b, c, d}}
}

func (s SupportCurve) degree() int { return len(s.Points) - 1 }

// FromCurve lifts a float64 Curve into its exact-rational SupportCurve.
func FromCurve(c Curve) SupportCurve {
	switch c.Kind {
	case CurveLine:
		return LineSupport(NewRPoint(c.A), NewRPoint(c.B))
	default:
		return CubicSupport(NewRPoint(c.A), NewRPoint(c.B), NewRPoint(c.C), NewRPoint(c.D))
	}
}

// Curve lowers a SupportCurve back to a float64 Curve.
func (s SupportCurve) Curve() Curve {
	if s.degree() == 1 {
		return Line(s.Points[0].Point(), s.Points[1].Point())
	}
	return Cubic(s.Points[0].Point(), s.Points[1].Point(), s.Points[2].Point(), s.Points[3].Point())
}

// deCasteljau returns every row of the de Casteljau triangle at
// parameter t: rows[0] is points itself and each following row holds
// one point fewer, down to the single on-curve point in the last row.
// The left half's control points are the rows' first entries and the
// right half's are their last entries (in reverse row order); this is
// used to implement subdivision for both x-monotone splitting
// (monotone.go) and boundary-curve reconstruction.
func deCasteljau(points []RPoint, t *big.Rat) [][]RPoint {
	rows := make([][]RPoint, len(points))
	rows[0] = points
	cur := points
	for len(cur) > 1 {
		next := make([]RPoint, len(cur)-1)
		for i := range next {
			next[i] = lerpRat(cur[i], cur[i+1], t)
		}
		rows[len(points)-len(next)] = next
		cur = next
	}
	return rows
}

// subRight returns the SupportCurve obtained by discarding the portion
// of s before parameter t (i.e. the curve over [t, 1]).
func subRight(s SupportCurve, t *big.Rat) SupportCurve {
	if s.degree() == 1 {
		return LineSupport(lerpRat(s.Points[0], s.Points[1], t), s.Points[1])
	}
	rows := deCasteljau(s.Points, t)
	n := len(s.Points)
	right := make([]RPoint, n)
	for i := 0; i < n; i++ {
		row := rows[n-1-i]
		right[i] = row[len(row)-1]
	}
	return CubicSupport(right[0], right[1], right[2], right[3])
}

// subLeft returns the SupportCurve obtained by discarding the portion
// of s after parameter t (i.e. the curve over [0, t]).
func subLeft(s SupportCurve, t *big.Rat) SupportCurve {
	if s.degree() == 1 {
		return LineSupport(s.Points[0], lerpRat(s.Points[0], s.Points[1], t))
	}
	rows := deCasteljau(s.Points, t)
	n := len(s.Points)
	left := make([]RPoint, n)
	for i := 0; i < n; i++ {
		left[i] = rows[i][0]
	}
	return CubicSupport(left[0], left[1], left[2], left[3])
}

// subRange returns the SupportCurve restricted to parameter range
// [t0, t1] (0 <= t0 <= t1 <= 1), via two de Casteljau subdivisions.
// Grounded on cubicBezierFromXMonoSection in
// original_source/libcsmerge/src/Geometry.cpp: a direct request for the
// whole range is returned unchanged, a line is linearly interpolated,
// and a cubic is subdivided at t1 first (discard the right tail) then
// at the rescaled t0 (discard the left head).
func subRange(s SupportCurve, t0, t1 *big.Rat) SupportCurve {
	zero := big.NewRat(0, 1)
	one := big.NewRat(1, 1)
	if t0.Cmp(zero) == 0 && t1.Cmp(one) == 0 {
		return s
	}
	if s.degree() == 1 {
		return LineSupport(lerpRat(s.Points[0], s.Points[1], t0), lerpRat(s.Points[0], s.Points[1], t1))
	}

	left := subLeft(s, t1)
	if t0.Cmp(zero) == 0 {
		return left
	}
	// Rescale t0 into [0,1] relative to the already-trimmed [0,t1] range:
	// t0' = t0 / t1.
	t0Prime := new(big.Rat).Quo(t0, t1)
	return subRight(left, t0Prime)
}
