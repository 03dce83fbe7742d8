// Command glyphmerge-demo merges two glyph outlines given as textual
// Charstrings and rasterizes the result to an image, mirroring the
// teacher's cmd/textcurve_raster tool (font rendering itself is out of
// scope; see SPEC_FULL.md §1).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/glyphmerge"
	"github.com/unixpickle/model3d/model2d"
)

func main() {
	path1 := flag.String("a", "", "path to the first glyph's textual Charstring")
	path2 := flag.String("b", "", "path to the second glyph's textual Charstring")
	outPath := flag.String("out", "", "output image path (.png or .jpg)")
	scale := flag.Float64("scale", 4.0, "pixels per glyph unit")
	segs := flag.Int("segs", 16, "line segments per curve when rasterizing")
	flag.Parse()

	if *path1 == "" || *path2 == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cs1, err := readCharstring(*path1)
	if err != nil {
		log.Fatalf("read %s: %v", *path1, err)
	}
	cs2, err := readCharstring(*path2)
	if err != nil {
		log.Fatalf("read %s: %v", *path2, err)
	}

	cfg := &glyphmerge.Config{
		FloatPrecision:    glyphmerge.DefaultConfig.FloatPrecision,
		MinLsegLength:     glyphmerge.DefaultConfig.MinLsegLength,
		MaxLsegsPerBezier: *segs,
	}
	cfg.UseStdLogger()

	merged, err := glyphmerge.Merge(cs1, cs2, cfg)
	if err != nil {
		log.Fatalf("merge: %v", err)
	}

	paths, err := glyphmerge.Parse(merged, cfg)
	if err != nil {
		log.Fatalf("parse merged outline: %v", err)
	}

	solid := pathsToSolid(paths, *segs)
	if solid == nil {
		log.Fatalf("merged outline produced no geometry")
	}

	if err := model2d.Rasterize(*outPath, solid, *scale); err != nil {
		log.Fatalf("rasterize: %v", err)
	}

	fmt.Printf("wrote %s\n", *outPath)
}

func readCharstring(path string) (glyphmerge.Charstring, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return glyphmerge.ParseText(string(data))
}

// pathsToSolid flattens every curve (for display purposes only — this
// has nothing to do with the boolean engine's own, already-linear,
// output) into straight segments and builds a model2d.Solid from them.
func pathsToSolid(paths glyphmerge.PathList, segs int) model2d.Solid {
	mesh := model2d.NewMesh()
	for _, p := range paths {
		var contour []model2d.Coord
		for _, curve := range p.Curves() {
			contour = append(contour, toCoord(curve.InitialPoint()))
			if curve.Kind == glyphmerge.CurveCubic {
				contour = append(contour, flattenCubic(curve, segs)...)
			}
		}
		if len(contour) < 2 {
			continue
		}
		for i := 1; i < len(contour); i++ {
			mesh.Add(&model2d.Segment{contour[i-1], contour[i]})
		}
		if contour[0] != contour[len(contour)-1] {
			mesh.Add(&model2d.Segment{contour[len(contour)-1], contour[0]})
		}
	}
	if mesh.NumSegments() == 0 {
		return nil
	}
	return mesh.Solid()
}

func flattenCubic(curve glyphmerge.Curve, segs int) []model2d.Coord {
	if segs < 1 {
		segs = 1
	}
	out := make([]model2d.Coord, 0, segs)
	for i := 1; i <= segs; i++ {
		t := float64(i) / float64(segs)
		out = append(out, toCoord(cubicPoint(curve, t)))
	}
	return out
}

func cubicPoint(curve glyphmerge.Curve, t float64) glyphmerge.Point {
	u := 1 - t
	a, b, c, d := curve.A, curve.B, curve.C, curve.D
	x := u*u*u*a.X + 3*u*u*t*b.X + 3*u*t*t*c.X + t*t*t*d.X
	y := u*u*u*a.Y + 3*u*u*t*b.Y + 3*u*t*t*c.Y + t*t*t*d.Y
	return glyphmerge.Point{X: x, Y: y}
}

func toCoord(p glyphmerge.Point) model2d.Coord {
	return model2d.Coord{X: p.X, Y: p.Y}
}
