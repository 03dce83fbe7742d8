package glyphmerge

// interpState holds the cursor + operand stack + in-progress path list
// that drive the Type 2 Charstring interpreter (spec.md §4.1).
type interpState struct {
	cfg    *Config
	cursor Point
	paths  PathList
	cur    *Path
}

func (s *interpState) ensurePath() {
	if s.cur == nil {
		s.cur = NewPath()
		s.paths = append(s.paths, s.cur)
	}
}

// startNewPathOnMove implements the "close-on-move" rule: any *moveto
// while the current path is non-empty closes that path and begins a
// new one (spec.md §4.1).
func (s *interpState) startNewPathOnMove() {
	s.ensurePath()
	if !s.cur.Empty() {
		s.cur.Close(s.cfg)
		s.cur = NewPath()
		s.paths = append(s.paths, s.cur)
	}
}

func (s *interpState) moveBy(dx, dy float64) {
	s.startNewPathOnMove()
	s.cursor = s.cursor.Add(Point{dx, dy})
}

func (s *interpState) lineBy(dx, dy float64, idx int, stack []int32) error {
	s.ensurePath()
	a := s.cursor
	b := a.Add(Point{dx, dy})
	if err := s.cur.Append(Line(a, b), s.cfg); err != nil {
		return wrapGeomAsParse(err, idx, toksFromInts(stack))
	}
	s.cursor = s.cur.FinalPoint()
	return nil
}

func (s *interpState) curveBy(dbx, dby, dcx, dcy, ddx, ddy float64, idx int, stack []int32) error {
	s.ensurePath()
	a := s.cursor
	b := a.Add(Point{dbx, dby})
	c := b.Add(Point{dcx, dcy})
	d := c.Add(Point{ddx, ddy})
	if err := s.cur.Append(Cubic(a, b, c, d), s.cfg); err != nil {
		return wrapGeomAsParse(err, idx, toksFromInts(stack))
	}
	s.cursor = s.cur.FinalPoint()
	return nil
}

func toksFromInts(stack []int32) []CsToken {
	toks := make([]CsToken, len(stack))
	for i, v := range stack {
		toks[i] = Operand(v)
	}
	return toks
}

// wrapGeomAsParse surfaces a geometry-layer contiguity failure (which
// can only happen here due to an internal bug, since cursor-chained
// curves are contiguous by construction) as a generic parse error
// carrying the usual token-index/stack context (spec.md §7).
func wrapGeomAsParse(err error, idx int, stack []CsToken) error {
	return newGenericParseError(err.Error(), idx, stack)
}

func f(v int32) float64 { return float64(v) }

// Parse decodes a Charstring into a PathList by replaying its cursor +
// operand-stack state machine (spec.md §4.1). Subroutine calls,
// hinting operators, and the flex family are not supported (spec.md §1
// Non-goals); flex/hflex/hflex1/flex1 specifically surface as
// *NotImplementedError.
func Parse(cs Charstring, cfg *Config) (PathList, error) {
	s := &interpState{cfg: cfg}
	var stack []int32

	for i, tok := range cs {
		if !tok.IsOperator {
			stack = append(stack, tok.Operand)
			continue
		}

		args := stack
		stack = nil
		nargs := len(args)

		var err error
		switch tok.Operator {
		case "rmoveto":
			if nargs != 2 {
				return nil, newWrongNumberOfArgumentsError("rmoveto", nargs, i, toksFromInts(args))
			}
			s.moveBy(f(args[0]), f(args[1]))

		case "hmoveto":
			if nargs != 1 {
				return nil, newWrongNumberOfArgumentsError("hmoveto", nargs, i, toksFromInts(args))
			}
			s.moveBy(f(args[0]), 0)

		case "vmoveto":
			if nargs != 1 {
				return nil, newWrongNumberOfArgumentsError("vmoveto", nargs, i, toksFromInts(args))
			}
			s.moveBy(0, f(args[0]))

		case "rlineto":
			if nargs%2 != 0 {
				return nil, newWrongNumberOfArgumentsError("rlineto", nargs, i, toksFromInts(args))
			}
			for k := 0; k < nargs; k += 2 {
				if err = s.lineBy(f(args[k]), f(args[k+1]), i, args); err != nil {
					return nil, err
				}
			}

		case "hlineto", "vlineto":
			horizontal := tok.Operator == "hlineto"
			for k := 0; k < nargs; k++ {
				if horizontal {
					err = s.lineBy(f(args[k]), 0, i, args)
				} else {
					err = s.lineBy(0, f(args[k]), i, args)
				}
				if err != nil {
					return nil, err
				}
				horizontal = !horizontal
			}

		case "rrcurveto":
			if nargs%6 != 0 {
				return nil, newWrongNumberOfArgumentsError("rrcurveto", nargs, i, toksFromInts(args))
			}
			for k := 0; k < nargs; k += 6 {
				if err = s.curveBy(f(args[k]), f(args[k+1]), f(args[k+2]), f(args[k+3]), f(args[k+4]), f(args[k+5]), i, args); err != nil {
					return nil, err
				}
			}

		case "hhcurveto":
			if nargs%4 != 0 && nargs%4 != 1 {
				return nil, newWrongNumberOfArgumentsError("hhcurveto", nargs, i, toksFromInts(args))
			}
			k := 0
			var dy1 float64
			if nargs%4 == 1 {
				dy1 = f(args[0])
				k = 1
			}
			for ; k < nargs; k += 4 {
				if err = s.curveBy(f(args[k]), dy1, f(args[k+1]), f(args[k+2]), f(args[k+3]), 0, i, args); err != nil {
					return nil, err
				}
				dy1 = 0
			}

		case "vvcurveto":
			if nargs%4 != 0 && nargs%4 != 1 {
				return nil, newWrongNumberOfArgumentsError("vvcurveto", nargs, i, toksFromInts(args))
			}
			k := 0
			var dx1 float64
			if nargs%4 == 1 {
				dx1 = f(args[0])
				k = 1
			}
			for ; k < nargs; k += 4 {
				if err = s.curveBy(dx1, f(args[k]), f(args[k+1]), f(args[k+2]), 0, f(args[k+3]), i, args); err != nil {
					return nil, err
				}
				dx1 = 0
			}

		case "hvcurveto":
			if err = s.hvOrVh(args, true, i); err != nil {
				return nil, err
			}

		case "vhcurveto":
			if err = s.hvOrVh(args, false, i); err != nil {
				return nil, err
			}

		case "rcurveline":
			// CFF/Type 2: n cubic curves (6n args) followed by one final
			// line (2 args): 6n+2 total, n >= 0.
			if nargs < 2 || (nargs-2)%6 != 0 {
				return nil, newWrongNumberOfArgumentsError("rcurveline", nargs, i, toksFromInts(args))
			}
			n := (nargs - 2) / 6
			for c := 0; c < n; c++ {
				k := c * 6
				if err = s.curveBy(f(args[k]), f(args[k+1]), f(args[k+2]), f(args[k+3]), f(args[k+4]), f(args[k+5]), i, args); err != nil {
					return nil, err
				}
			}
			if err = s.lineBy(f(args[nargs-2]), f(args[nargs-1]), i, args); err != nil {
				return nil, err
			}

		case "rlinecurve":
			// CFF/Type 2: n lines (2n args) followed by one final cubic
			// curve (6 args): 2n+6 total, n >= 0.
			if nargs < 6 || (nargs-6)%2 != 0 {
				return nil, newWrongNumberOfArgumentsError("rlinecurve", nargs, i, toksFromInts(args))
			}
			n := (nargs - 6) / 2
			for c := 0; c < n; c++ {
				k := c * 2
				if err = s.lineBy(f(args[k]), f(args[k+1]), i, args); err != nil {
					return nil, err
				}
			}
			if err = s.curveBy(f(args[nargs-6]), f(args[nargs-5]), f(args[nargs-4]), f(args[nargs-3]), f(args[nargs-2]), f(args[nargs-1]), i, args); err != nil {
				return nil, err
			}

		case "flex", "hflex", "hflex1", "flex1":
			return nil, newNotImplementedError(tok.Operator, i, toksFromInts(args))

		case "endchar":
			if nargs != 0 {
				return nil, newWrongNumberOfArgumentsError("endchar", nargs, i, toksFromInts(args))
			}
			s.ensurePath()
			s.cur.Close(s.cfg)

		default:
			return nil, newUnrecognisedTokenError(tok, i, toksFromInts(args))
		}
	}

	// Implicit endchar: close any still-open path even without a
	// trailing endchar token (spec.md §4.1).
	if s.cur != nil {
		s.cur.Close(s.cfg)
	}

	if len(stack) != 0 {
		return nil, newGenericParseError("redundant arguments on stack", len(cs), toksFromInts(stack))
	}

	return s.paths, nil
}

// hvOrVh implements hvcurveto (horizontalFirst=true) and vhcurveto
// (horizontalFirst=false), which are mirror images of each other
// (spec.md §4.1). The branch is selected purely by nargs mod 8, per
// the corrected condition documented in DESIGN.md (the original source
// accepted the degenerate nargs==1 case through an operator-precedence
// slip; this rewrite requires nargs>=8 for the "many curves" branch).
func (s *interpState) hvOrVh(args []int32, horizontalFirst bool, tokIdx int) error {
	nargs := len(args)
	name := "vhcurveto"
	if horizontalFirst {
		name = "hvcurveto"
	}

	switch {
	case nargs%8 == 4 || nargs%8 == 5:
		// One "short" curve using the leading 4 args, an optional 5th
		// arg closing the final tangent, then (nargs-4)/8 further
		// curve-pairs alternating starting tangent.
		extra := float64(0)
		hasExtra := nargs == 5
		if hasExtra {
			extra = f(args[4])
		}
		horizontal := horizontalFirst
		if err := s.curvePair4(args[0], args[1], args[2], args[3], extra, horizontal, tokIdx, args); err != nil {
			return err
		}
		n := (nargs - 4) / 8
		for cv := 0; cv < n; cv++ {
			i := 4 + cv*8
			last := cv == n-1 && nargs%8 == 5
			var tailExtra float64
			if last {
				tailExtra = f(args[i+8])
			}
			horizontal = !horizontalFirst
			if err := s.curvePair8(args[i:i+8], tailExtra, last, horizontal, tokIdx, args); err != nil {
				return err
			}
		}
		return nil

	case nargs >= 8 && (nargs%8 == 0 || nargs%8 == 1):
		n := nargs / 8
		horizontal := horizontalFirst
		for cv := 0; cv < n; cv++ {
			i := cv * 8
			last := cv == n-1 && nargs%8 == 1
			var tailExtra float64
			if last {
				tailExtra = f(args[i+8])
			}
			if err := s.curvePair8(args[i:i+8], tailExtra, last, horizontal, tokIdx, args); err != nil {
				return err
			}
		}
		return nil

	default:
		return newWrongNumberOfArgumentsError(name, nargs, tokIdx, toksFromInts(args))
	}
}

// curvePair4 draws a single curve whose leading control segment runs
// along `horizontal`'s axis and whose trailing segment runs along the
// other axis, with an optional extra offset closing the final tangent.
func (s *interpState) curvePair4(a0, a1, a2, a3 int32, extra float64, horizontal bool, tokIdx int, stack []int32) error {
	if horizontal {
		return s.curveBy(f(a0), 0, f(a1), f(a2), extra, f(a3), tokIdx, stack)
	}
	return s.curveBy(0, f(a0), f(a1), f(a2), f(a3), extra, tokIdx, stack)
}

// curvePair8 draws the two curves encoded by one 8-argument group of
// hvcurveto/vhcurveto, alternating tangent direction.
func (s *interpState) curvePair8(a []int32, tailExtra float64, last, startHorizontal bool, tokIdx int, stack []int32) error {
	if startHorizontal {
		if err := s.curveBy(f(a[0]), 0, f(a[1]), f(a[2]), 0, f(a[3]), tokIdx, stack); err != nil {
			return err
		}
		if last {
			return s.curveBy(0, f(a[4]), f(a[5]), f(a[6]), f(a[7]), tailExtra, tokIdx, stack)
		}
		return s.curveBy(0, f(a[4]), f(a[5]), f(a[6]), f(a[7]), 0, tokIdx, stack)
	}
	if err := s.curveBy(0, f(a[0]), f(a[1]), f(a[2]), f(a[3]), 0, tokIdx, stack); err != nil {
		return err
	}
	if last {
		return s.curveBy(f(a[4]), 0, f(a[5]), f(a[6]), tailExtra, f(a[7]), tokIdx, stack)
	}
	return s.curveBy(f(a[4]), 0, f(a[5]), f(a[6]), 0, f(a[7]), tokIdx, stack)
}
