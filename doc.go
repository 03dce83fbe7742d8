// Package glyphmerge merges two Type 2 Charstring glyph outlines into a
// single Charstring whose rendered shape is the geometric union of the
// two inputs.
//
// The pipeline is: parse each Charstring into a PathList, convert both
// path lists into polygons-with-holes over x-monotone curve boundaries,
// union the polygon sets, convert the result back into a PathList, and
// generate a minimal Charstring from it. See Merge for the end-to-end
// entry point.
package glyphmerge
