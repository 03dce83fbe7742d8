package glyphmerge

import "testing"

// Invariant 6: every outer boundary is CCW, every hole is CW.
func TestToPolyListOrientation(t *testing.T) {
	outer := squarePath(t, 0, 0, 20, 20)
	hole := squareHolePath(t, 5, 5, 15, 15)
	paths := PathList{outer, hole}

	polys, err := ToPolyList(paths, nil)
	if err != nil {
		t.Fatalf("ToPolyList: %v", err)
	}
	if len(polys) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(polys))
	}
	if !polys[0].Outer.CounterClockwise() {
		t.Error("outer boundary should be counter-clockwise")
	}
	if len(polys[0].Holes) != 1 {
		t.Fatalf("expected 1 hole, got %d", len(polys[0].Holes))
	}
	if polys[0].Holes[0].CounterClockwise() {
		t.Error("hole boundary should be clockwise")
	}
}

func TestToPolyListRejectsUnclosedPath(t *testing.T) {
	p := NewPath()
	_ = p.Append(Line(Point{0, 0}, Point{10, 0}), nil)
	_, err := ToPolyList(PathList{p}, nil)
	if _, ok := err.(*NotClosedError); !ok {
		t.Fatalf("expected *NotClosedError, got %T: %v", err, err)
	}
}

func TestToPolyListDiscardsIsolatedHole(t *testing.T) {
	hole := squareHolePath(t, 0, 0, 10, 10)
	var warned bool
	cfg := &Config{Warnf: func(string, ...any) { warned = true }}
	polys, err := ToPolyList(PathList{hole}, cfg)
	if err != nil {
		t.Fatalf("ToPolyList: %v", err)
	}
	if len(polys) != 0 {
		t.Fatalf("expected isolated hole to be discarded, got %d polygons", len(polys))
	}
	if !warned {
		t.Error("expected a warning for the discarded isolated hole")
	}
}

// Invariant 7: round trip for integer-coordinate line-only paths.
func TestToPathListRoundTripsLinePaths(t *testing.T) {
	outer := squarePath(t, -10, -10, 10, 10)
	polys, err := ToPolyList(PathList{outer}, nil)
	if err != nil {
		t.Fatalf("ToPolyList: %v", err)
	}
	back := ToPathList(polys, nil)
	if len(back) != 1 {
		t.Fatalf("expected 1 path, got %d", len(back))
	}
	got, want := vertices(back[0]), vertices(outer)
	if len(got) != len(want) {
		t.Fatalf("vertex count: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i], 1e-6) {
			t.Errorf("vertex %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// Scenario F: a rectangular loop with one edge replaced by the sample
// cubic splits into 6 x-monotone sub-curves (3 line sides + 3 monotone
// sections of the cubic), and toPathList preserves the cubic's
// original endpoints.
func TestToPolyListScenarioFCubicSplit(t *testing.T) {
	cubic := Cubic(Point{10, -10}, Point{7, -4}, Point{13, 3}, Point{10, 10})
	p := NewPath()
	if err := p.Append(cubic, nil); err != nil {
		t.Fatalf("append cubic: %v", err)
	}
	if err := p.Append(Line(Point{10, 10}, Point{-10, 10}), nil); err != nil {
		t.Fatalf("append top: %v", err)
	}
	if err := p.Append(Line(Point{-10, 10}, Point{-10, -10}), nil); err != nil {
		t.Fatalf("append left: %v", err)
	}
	if err := p.Append(Line(Point{-10, -10}, Point{10, -10}), nil); err != nil {
		t.Fatalf("append bottom: %v", err)
	}

	polys, err := ToPolyList(PathList{p}, nil)
	if err != nil {
		t.Fatalf("ToPolyList: %v", err)
	}
	if len(polys) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(polys))
	}
	if got := len(polys[0].Outer); got != 6 {
		t.Fatalf("expected 6 x-monotone sub-curves, got %d", got)
	}

	back := ToPathList(polys, nil)
	if got := back[0].InitialPoint(); !got.Equal(Point{10, -10}, 1e-6) {
		t.Errorf("reconstructed path initial point: got %v", got)
	}
	if got := back[0].Curve(2).FinalPoint(); !got.Equal(Point{10, 10}, 1e-6) {
		t.Errorf("reconstructed cubic final point: got %v", got)
	}
}
