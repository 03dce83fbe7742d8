package glyphmerge

// Path is a contiguous chain of curves: for every adjacent pair
// (Cᵢ, Cᵢ₊₁), Cᵢ.FinalPoint() == Cᵢ₊₁.InitialPoint() under tolerance.
// A Path is built incrementally via Append/Close and then treated as an
// immutable input to the polygon bridge.
type Path struct {
	curves []Curve
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// Len reports the number of curves in the path.
func (p *Path) Len() int { return len(p.curves) }

// Empty reports whether the path has no curves.
func (p *Path) Empty() bool { return len(p.curves) == 0 }

// Curve returns the curve at idx.
func (p *Path) Curve(idx int) Curve { return p.curves[idx] }

// Curves returns the path's curves in order. The returned slice must
// not be mutated by the caller.
func (p *Path) Curves() []Curve { return p.curves }

// InitialPoint returns the first curve's initial point, or the origin
// for an empty path.
func (p *Path) InitialPoint() Point {
	if len(p.curves) == 0 {
		return Point{}
	}
	return p.curves[0].InitialPoint()
}

// FinalPoint returns the last curve's final point, or the origin for
// an empty path.
func (p *Path) FinalPoint() Point {
	if len(p.curves) == 0 {
		return Point{}
	}
	return p.curves[len(p.curves)-1].FinalPoint()
}

// Append adds curve to the path. If the path is non-empty, curve's
// initial point must match the path's final point under cfg's
// tolerance, or a *NoncontiguousCurvesError is returned; on success the
// new curve's initial point is snapped to the path's exact final point,
// eliminating float drift at the seam (spec.md §3).
func (p *Path) Append(curve Curve, cfg *Config) error {
	tol := cfg.orDefault().FloatPrecision
	if len(p.curves) > 0 {
		end := p.FinalPoint()
		if !curve.InitialPoint().Equal(end, tol) {
			return newNoncontiguousCurvesError(end, curve.InitialPoint())
		}
		curve = curve.WithInitialPoint(end)
	}
	p.curves = append(p.curves, curve)
	return nil
}

// IsClosed reports whether the path's final point coincides with its
// initial point under tolerance.
func (p *Path) IsClosed(cfg *Config) bool {
	if len(p.curves) == 0 {
		return true
	}
	return p.FinalPoint().Equal(p.InitialPoint(), cfg.orDefault().FloatPrecision)
}

// Close is idempotent: if the path is already closed, nothing is
// added; otherwise a LineSegment from the final point to the initial
// point is appended.
func (p *Path) Close(cfg *Config) {
	if len(p.curves) == 0 {
		return
	}
	if p.IsClosed(cfg) {
		return
	}
	p.curves = append(p.curves, Line(p.FinalPoint(), p.InitialPoint()))
}

// Copy performs a deep clone of the path's curves (value types, so this
// is just a slice copy, but kept as a named operation matching the
// teacher/original's explicit deep-copy constructor for Path).
func (p *Path) Copy() *Path {
	cp := &Path{curves: make([]Curve, len(p.curves))}
	copy(cp.curves, p.curves)
	return cp
}

// PathList is an ordered sequence of paths. By convention the first
// path of each connected region is its outer boundary (counter-clockwise
// orientation), and subsequent paths until the next outer boundary are
// its holes (clockwise orientation).
type PathList []*Path
