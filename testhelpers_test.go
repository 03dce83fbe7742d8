package glyphmerge

import "testing"

// squarePath builds a closed, axis-aligned square path from (x0,y0) to
// (x1,y1) traced counter-clockwise (outer-boundary convention).
func squarePath(t *testing.T, x0, y0, x1, y1 float64) *Path {
	t.Helper()
	p := NewPath()
	pts := []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	for i := 0; i < len(pts); i++ {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if err := p.Append(Line(a, b), nil); err != nil {
			t.Fatalf("squarePath: %v", err)
		}
	}
	return p
}

// squareHolePath is the same rectangle traced clockwise (hole
// convention).
func squareHolePath(t *testing.T, x0, y0, x1, y1 float64) *Path {
	t.Helper()
	p := NewPath()
	pts := []Point{{x0, y0}, {x0, y1}, {x1, y1}, {x1, y0}}
	for i := 0; i < len(pts); i++ {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if err := p.Append(Line(a, b), nil); err != nil {
			t.Fatalf("squareHolePath: %v", err)
		}
	}
	return p
}

func vertices(p *Path) []Point {
	var out []Point
	for _, c := range p.Curves() {
		out = append(out, c.InitialPoint())
	}
	return out
}

// sameVertexSet reports whether got and want contain the same points
// under tolerance, irrespective of starting offset or direction — the
// boolean engine's loop tracer has no reason to start a loop at any
// particular vertex.
func sameVertexSet(got, want []Point, tol float64) bool {
	if len(got) != len(want) {
		return false
	}
	used := make([]bool, len(want))
	for _, g := range got {
		found := false
		for i, w := range want {
			if !used[i] && g.Equal(w, tol) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
