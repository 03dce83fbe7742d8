package glyphmerge

// Merge is the top-level operation (spec.md §4.6): decode both glyph
// outlines, convert each to a polygon set, compute the union, and
// re-encode the result as a Charstring.
//
// A *ParseError from decoding either input, or a *NotClosedError /
// *KernelError from the geometry stages, is returned unwrapped so
// callers can use errors.As against the concrete type (spec.md §7).
func Merge(cs1, cs2 Charstring, cfg *Config) (Charstring, error) {
	paths1, err := Parse(cs1, cfg)
	if err != nil {
		return nil, err
	}
	paths2, err := Parse(cs2, cfg)
	if err != nil {
		return nil, err
	}

	polys1, err := ToPolyList(paths1, cfg)
	if err != nil {
		return nil, err
	}
	polys2, err := ToPolyList(paths2, cfg)
	if err != nil {
		return nil, err
	}

	union, err := Union(polys1, polys2, cfg)
	if err != nil {
		return nil, err
	}

	merged := ToPathList(union, cfg)
	return Generate(merged, cfg), nil
}
