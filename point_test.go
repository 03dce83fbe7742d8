package glyphmerge

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := Point{1, 2}
	b := Point{3, -1}
	if got := a.Add(b); got != (Point{4, 1}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Point{-2, 3}) {
		t.Errorf("Sub: got %v", got)
	}
}

func TestPointEqualTolerance(t *testing.T) {
	a := Point{0, 0}
	b := Point{0.0005, -0.0005}
	if !a.Equal(b, 0.001) {
		t.Errorf("expected %v and %v to be equal within tolerance", a, b)
	}
	c := Point{0.01, 0}
	if a.Equal(c, 0.001) {
		t.Errorf("expected %v and %v to differ beyond tolerance", a, c)
	}
}

func TestRPointRoundTrip(t *testing.T) {
	p := Point{12, -7}
	r := NewRPoint(p)
	if got := r.Point(); got != p {
		t.Errorf("RPoint round trip: got %v, want %v", got, p)
	}
}
