package glyphmerge

import "testing"

func polysFromSquare(t *testing.T, x0, y0, x1, y1 float64) PolyList {
	t.Helper()
	polys, err := ToPolyList(PathList{squarePath(t, x0, y0, x1, y1)}, nil)
	if err != nil {
		t.Fatalf("ToPolyList: %v", err)
	}
	return polys
}

// Scenario D: two overlapping 20x20 squares union into one eight-vertex
// L-shaped boundary.
func TestUnionSimpleOverlap(t *testing.T) {
	a := polysFromSquare(t, -10, -10, 10, 10)
	b := polysFromSquare(t, -5, -5, 15, 15)

	result, err := Union(a, b, nil)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(result))
	}
	if len(result[0].Holes) != 0 {
		t.Fatalf("expected no holes, got %d", len(result[0].Holes))
	}
	if got := len(result[0].Outer); got != 8 {
		t.Fatalf("expected 8 boundary segments, got %d", got)
	}
	if !result[0].Outer.CounterClockwise() {
		t.Error("union outer boundary should be counter-clockwise")
	}

	path := boundaryToPath(result[0].Outer, nil)
	want := []Point{{-5, 15}, {-5, 10}, {-10, 10}, {-10, -10}, {10, -10}, {10, -5}, {15, -5}, {15, 15}}
	if !sameVertexSet(vertices(path), want, 1e-6) {
		t.Errorf("unexpected union boundary vertices: %v", vertices(path))
	}
}

// Scenario E: unioning two squares-with-holes leaves one residual hole
// in the overlap region, strictly smaller than either input hole.
func TestUnionWithHoles(t *testing.T) {
	outerA := squarePath(t, 0, 0, 20, 20)
	holeA := squareHolePath(t, 5, 5, 15, 15)
	polysA, err := ToPolyList(PathList{outerA, holeA}, nil)
	if err != nil {
		t.Fatalf("ToPolyList A: %v", err)
	}

	outerB := squarePath(t, 5, 5, 25, 25)
	holeB := squareHolePath(t, 10, 10, 20, 20)
	polysB, err := ToPolyList(PathList{outerB, holeB}, nil)
	if err != nil {
		t.Fatalf("ToPolyList B: %v", err)
	}

	result, err := Union(polysA, polysB, nil)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(result))
	}
	if len(result[0].Holes) != 1 {
		t.Fatalf("expected 1 residual hole, got %d", len(result[0].Holes))
	}
	if result[0].Holes[0].CounterClockwise() {
		t.Error("residual hole should be clockwise")
	}

	holeArea := -SignedArea(result[0].Holes[0]) / 2
	inputHoleArea := 10.0 * 10.0
	if holeArea >= inputHoleArea {
		t.Errorf("residual hole area %v should be smaller than either input hole's area %v", holeArea, inputHoleArea)
	}
}

// Invariant 5: union is idempotent.
func TestUnionIdempotent(t *testing.T) {
	a := polysFromSquare(t, -10, -10, 10, 10)

	result, err := Union(a, a, nil)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(result))
	}
	path := boundaryToPath(result[0].Outer, nil)
	want := []Point{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}}
	if !sameVertexSet(vertices(path), want, 1e-6) {
		t.Errorf("union(A,A) changed the square's vertices: %v", vertices(path))
	}
}

// Invariant 4: union is commutative up to canonicalisation.
func TestUnionCommutative(t *testing.T) {
	a := polysFromSquare(t, -10, -10, 10, 10)
	b := polysFromSquare(t, -5, -5, 15, 15)

	ab, err := Union(a, b, nil)
	if err != nil {
		t.Fatalf("Union(a,b): %v", err)
	}
	ba, err := Union(b, a, nil)
	if err != nil {
		t.Fatalf("Union(b,a): %v", err)
	}
	if len(ab) != len(ba) {
		t.Fatalf("polygon counts differ: %d vs %d", len(ab), len(ba))
	}
	vAB := vertices(boundaryToPath(ab[0].Outer, nil))
	vBA := vertices(boundaryToPath(ba[0].Outer, nil))
	if !sameVertexSet(vAB, vBA, 1e-6) {
		t.Errorf("union(a,b) and union(b,a) produced different boundaries:\n%v\n%v", vAB, vBA)
	}
}
