package glyphmerge

import "testing"

func mustParseText(t *testing.T, s string) Charstring {
	t.Helper()
	cs, err := ParseText(s)
	if err != nil {
		t.Fatalf("ParseText(%q): %v", s, err)
	}
	return cs
}

func TestParseEmptyCharstring(t *testing.T) {
	paths, err := Parse(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected empty PathList, got %d paths", len(paths))
	}
}

// Scenario A.
func TestParseAxisAlignedSquare(t *testing.T) {
	cs := mustParseText(t, "-10 -10 rmoveto 20 vlineto 20 hlineto -20 vlineto -20 hlineto endchar")
	paths, err := Parse(cs, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected one path, got %d", len(paths))
	}
	p := paths[0]
	if p.Len() != 4 {
		t.Fatalf("expected 4 segments, got %d", p.Len())
	}
	want := []Point{{-10, -10}, {-10, 10}, {10, 10}, {10, -10}}
	for i, w := range want {
		if got := p.Curve(i).InitialPoint(); got != w {
			t.Errorf("segment %d initial point: got %v, want %v", i, got, w)
		}
	}
	if !p.IsClosed(nil) {
		t.Error("expected closed path")
	}
}

// Scenario B: endchar synthesises the final closing edge.
func TestParseCloseOnMissingEdge(t *testing.T) {
	csA := mustParseText(t, "-10 -10 rmoveto 20 vlineto 20 hlineto -20 vlineto -20 hlineto endchar")
	csB := mustParseText(t, "-10 -10 rmoveto 20 vlineto 20 hlineto -20 vlineto endchar")

	pathsA, err := Parse(csA, nil)
	if err != nil {
		t.Fatalf("Parse A: %v", err)
	}
	pathsB, err := Parse(csB, nil)
	if err != nil {
		t.Fatalf("Parse B: %v", err)
	}

	if pathsA[0].Len() != pathsB[0].Len() {
		t.Fatalf("expected equal segment counts, got %d vs %d", pathsA[0].Len(), pathsB[0].Len())
	}
	for i := 0; i < pathsA[0].Len(); i++ {
		if !pathsA[0].Curve(i).Equal(pathsB[0].Curve(i), 1e-9) {
			t.Errorf("segment %d differs: %v vs %v", i, pathsA[0].Curve(i), pathsB[0].Curve(i))
		}
	}
}

// Scenario C: parse then generate reproduces the canonical encoding.
func TestGenerateRoundTrip(t *testing.T) {
	cs := mustParseText(t, "-10 -10 rmoveto 20 vlineto 20 hlineto -20 vlineto -20 hlineto endchar")
	paths, err := Parse(cs, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := Generate(paths, nil)
	want := mustParseText(t, "-10 -10 rmoveto 0 20 rlineto 20 0 rlineto 0 -20 rlineto -20 0 rlineto endchar")
	if len(got) != len(want) {
		t.Fatalf("token count: got %d, want %d\ngot:  %s\nwant: %s", len(got), len(want), got.Text(), want.Text())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseUnrecognisedToken(t *testing.T) {
	cs := Charstring{Operand(1), Operand(2), Op("bogusto")}
	_, err := Parse(cs, nil)
	if _, ok := err.(*UnrecognisedTokenError); !ok {
		t.Fatalf("expected *UnrecognisedTokenError, got %T: %v", err, err)
	}
}

func TestParseNotImplementedOperators(t *testing.T) {
	for _, name := range []string{"flex", "hflex", "hflex1", "flex1"} {
		cs := Charstring{Op(name)}
		_, err := Parse(cs, nil)
		if _, ok := err.(*NotImplementedError); !ok {
			t.Errorf("%s: expected *NotImplementedError, got %T: %v", name, err, err)
		}
	}
}

func TestParseWrongNumberOfArguments(t *testing.T) {
	cases := []Charstring{
		{Operand(1), Op("rmoveto")},             // rmoveto wants 2
		{Operand(1), Operand(2), Operand(3), Op("rlineto")}, // rlineto wants 2n
		{Operand(1), Operand(2), Operand(3), Op("rrcurveto")},
	}
	for i, cs := range cases {
		_, err := Parse(cs, nil)
		if _, ok := err.(*WrongNumberOfArgumentsError); !ok {
			t.Errorf("case %d: expected *WrongNumberOfArgumentsError, got %T: %v", i, err, err)
		}
	}
}

func TestParseResidualStackIsError(t *testing.T) {
	cs := Charstring{Operand(1), Operand(2), Op("rmoveto"), Operand(99)}
	_, err := Parse(cs, nil)
	if err == nil {
		t.Fatal("expected an error for a residual operand stack")
	}
}

func TestParseRcurvelineAndRlinecurve(t *testing.T) {
	// rcurveline: one curve (6 args) then one line (2 args) = 8 args.
	cs := mustParseText(t, "0 0 rmoveto 10 0 10 10 0 10 5 0 rcurveline endchar")
	paths, err := Parse(cs, nil)
	if err != nil {
		t.Fatalf("rcurveline: %v", err)
	}
	if paths[0].Len() != 3 { // curve, line, implicit close
		t.Fatalf("expected 3 segments (curve + line + close), got %d", paths[0].Len())
	}

	cs2 := mustParseText(t, "0 0 rmoveto 5 0 0 10 10 0 10 10 rlinecurve endchar")
	paths2, err := Parse(cs2, nil)
	if err != nil {
		t.Fatalf("rlinecurve: %v", err)
	}
	if paths2[0].Len() != 3 { // line, curve, implicit close
		t.Fatalf("expected 3 segments (line + curve + close), got %d", paths2[0].Len())
	}
}

func TestParseHvVhCurveto(t *testing.T) {
	// hvcurveto with nargs%8==4: one curve, horizontal-then-vertical tangent.
	cs := mustParseText(t, "0 0 rmoveto 10 10 10 10 hvcurveto endchar")
	paths, err := Parse(cs, nil)
	if err != nil {
		t.Fatalf("hvcurveto: %v", err)
	}
	curve := paths[0].Curve(0)
	if curve.Kind != CurveCubic {
		t.Fatalf("expected a cubic curve, got %v", curve)
	}
	// First control segment must be horizontal (B.y == A.y).
	if curve.B.Y != curve.A.Y {
		t.Errorf("expected horizontal first tangent: A=%v B=%v", curve.A, curve.B)
	}
	// Last control segment must be vertical (D.x == C.x).
	if curve.D.X != curve.C.X {
		t.Errorf("expected vertical final tangent: C=%v D=%v", curve.C, curve.D)
	}

	// vhcurveto with nargs%8==4: the mirror image, vertical-then-horizontal.
	cs2 := mustParseText(t, "0 0 rmoveto 10 10 10 10 vhcurveto endchar")
	paths2, err := Parse(cs2, nil)
	if err != nil {
		t.Fatalf("vhcurveto: %v", err)
	}
	curve2 := paths2[0].Curve(0)
	if curve2.Kind != CurveCubic {
		t.Fatalf("expected a cubic curve, got %v", curve2)
	}
	if curve2.B.X != curve2.A.X {
		t.Errorf("expected vertical first tangent: A=%v B=%v", curve2.A, curve2.B)
	}
	if curve2.D.Y != curve2.C.Y {
		t.Errorf("expected horizontal final tangent: C=%v D=%v", curve2.C, curve2.D)
	}
}
