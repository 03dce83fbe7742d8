package glyphmerge

import "math"

// Generate serialises a PathList back into a Charstring using only
// rmoveto/rlineto/rrcurveto/endchar (spec.md §4.2). It is the
// deliberately simple inverse of Parse: no attempt is made to pick the
// shortest encoding (no hlineto/vlineto/hhcurveto/etc. folding), which
// keeps the round trip easy to reason about at the cost of a larger
// Charstring than a real font-production encoder would emit.
//
// Coordinates are truncated toward zero to the nearest integer, matching
// generateCharstring's behaviour in the original implementation.
func Generate(paths PathList, cfg *Config) Charstring {
	var cs Charstring
	cursor := Point{}
	haveCursor := false

	for _, p := range paths {
		if p.Empty() {
			continue
		}
		for i, curve := range p.Curves() {
			start := curve.InitialPoint()
			if i == 0 && (!haveCursor || !start.Equal(cursor, cfg.orDefault().FloatPrecision)) {
				dx, dy := start.X-cursor.X, start.Y-cursor.Y
				cs = append(cs, Operand(trunc(dx)), Operand(trunc(dy)), Op("rmoveto"))
				cursor = start
				haveCursor = true
			}

			switch curve.Kind {
			case CurveLine:
				dx, dy := curve.B.X-cursor.X, curve.B.Y-cursor.Y
				cs = append(cs, Operand(trunc(dx)), Operand(trunc(dy)), Op("rlineto"))
				cursor = curve.B
			case CurveCubic:
				d1x, d1y := curve.B.X-cursor.X, curve.B.Y-cursor.Y
				d2x, d2y := curve.C.X-curve.B.X, curve.C.Y-curve.B.Y
				d3x, d3y := curve.D.X-curve.C.X, curve.D.Y-curve.C.Y
				cs = append(cs,
					Operand(trunc(d1x)), Operand(trunc(d1y)),
					Operand(trunc(d2x)), Operand(trunc(d2y)),
					Operand(trunc(d3x)), Operand(trunc(d3y)),
					Op("rrcurveto"))
				cursor = curve.D
			}
		}
	}

	cs = append(cs, Op("endchar"))
	return cs
}

func trunc(v float64) int32 {
	return int32(math.Trunc(v))
}
