package glyphmerge

// Boundary is a closed sequence of x-monotone curves, traced
// counter-clockwise for an outer contour or clockwise for a hole
// (spec.md §4.4.1).
type Boundary []XMonotoneCurve

// CounterClockwise reports whether a boundary is traced counter-clockwise.
func (b Boundary) CounterClockwise() bool {
	return SignedArea([]XMonotoneCurve(b)) > 0
}

// Polygon is a single connected region: one outer contour plus zero or
// more holes, mirroring spec.md §4.4.1's outer/hole grouping.
type Polygon struct {
	Outer Boundary
	Holes []Boundary
}

// PolyList is an ordered collection of disjoint-or-nested polygons, the
// input and output type of the boolean union engine (spec.md §4.4,
// §4.5).
type PolyList []Polygon
