package glyphmerge

// ToPolyList converts a PathList into a PolyList, splitting every curve
// into x-monotone pieces and classifying each closed path as an outer
// contour (counter-clockwise) or a hole (clockwise) of the most
// recently seen outer contour (spec.md §4.4.1).
//
// Empty paths are skipped. A non-empty, unclosed path is a
// *NotClosedError. A clockwise path with no preceding outer contour is
// an isolated hole: it is logged via cfg.Warnf and discarded rather
// than raised as an error, matching the original's tolerance for
// malformed-but-recoverable input (spec.md §4.4.1, grounded on
// original_source/libcsmerge/src/Geometry.cpp's toPolyList).
func ToPolyList(paths PathList, cfg *Config) (PolyList, error) {
	var polys PolyList
	currentIdx := -1

	for _, p := range paths {
		if p.Empty() {
			continue
		}
		if !p.IsClosed(cfg) {
			return nil, newNotClosedError()
		}

		curves := p.Curves()
		first := p.InitialPoint()
		var boundary Boundary
		for i, curve := range curves {
			if i == len(curves)-1 {
				// Eliminate accumulated float error at the seam: the last
				// curve's terminal point becomes the path's own first
				// control point exactly (spec.md §4.4.1).
				curve = curve.WithFinalPoint(first)
			}
			pieces := MakeXMonotone(FromCurve(curve))
			boundary = append(boundary, pieces...)
		}

		if boundary.CounterClockwise() {
			polys = append(polys, Polygon{Outer: boundary})
			currentIdx = len(polys) - 1
			continue
		}

		if currentIdx == -1 {
			cfg.orDefault().warnf("glyphmerge: discarding isolated hole with no preceding outer contour")
			continue
		}
		polys[currentIdx].Holes = append(polys[currentIdx].Holes, boundary)
	}

	return polys, nil
}

// ToPathList converts a PolyList back into a PathList: each polygon
// contributes one path for its outer contour followed by one path per
// hole (spec.md §4.4.2). Every x-monotone curve is reconstructed from
// its lazily-stored [T0, T1] range via exact de Casteljau subdivision
// (SupportCurve.Curve/Materialize).
//
// A curve whose reconstructed initial point doesn't quite match the
// running path's final point (float64 rounding on the way out of exact
// rational arithmetic, not a real discontinuity) is recovered locally
// by snapping rather than surfaced as a *NoncontiguousCurvesError,
// matching spec.md §7's policy for this specific, internally-generated
// case.
func ToPathList(polys PolyList, cfg *Config) PathList {
	var out PathList
	for _, poly := range polys {
		out = append(out, boundaryToPath(poly.Outer, cfg))
		for _, hole := range poly.Holes {
			out = append(out, boundaryToPath(hole, cfg))
		}
	}
	return out
}

func boundaryToPath(b Boundary, cfg *Config) *Path {
	path := NewPath()
	for _, seg := range b {
		curve := seg.Curve()
		if err := path.Append(curve, cfg); err != nil {
			cfg.orDefault().warnf("glyphmerge: snapping noncontiguous reconstructed curve: %v", err)
			path.curves = append(path.curves, curve.WithInitialPoint(path.FinalPoint()))
		}
	}
	path.Close(cfg)
	return path
}
