package glyphmerge

import (
	"fmt"
	"math"
	"math/big"
)

// Point is a 2-D coordinate with double-precision components.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Equal reports whether p and q are equal under the given tolerance
// (component-wise absolute difference).
func (p Point) Equal(q Point, tolerance float64) bool {
	return math.Abs(p.X-q.X) <= tolerance && math.Abs(p.Y-q.Y) <= tolerance
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// RPoint is an exact-rational point, used by the polygon bridge and the
// boolean engine so that curve splitting and intersection tests never
// accumulate floating-point error.
type RPoint struct {
	X, Y *big.Rat
}

// NewRPoint builds an RPoint from a Point, via big.Rat.SetFloat64. Input
// coordinates in this package always originate as integers (Charstring
// operands), so this conversion is exact in practice.
func NewRPoint(p Point) RPoint {
	x := new(big.Rat)
	y := new(big.Rat)
	x.SetFloat64(p.X)
	y.SetFloat64(p.Y)
	return RPoint{X: x, Y: y}
}

// Point converts back to a float64 Point.
func (r RPoint) Point() Point {
	x, _ := r.X.Float64()
	y, _ := r.Y.Float64()
	return Point{X: x, Y: y}
}

// Equal reports exact rational equality.
func (r RPoint) Equal(s RPoint) bool {
	return r.X.Cmp(s.X) == 0 && r.Y.Cmp(s.Y) == 0
}

func ratFromFloat(f float64) *big.Rat {
	r := new(big.Rat)
	r.SetFloat64(f)
	return r
}

// lerpRat linearly interpolates between a and b at parameter t (an exact
// rational), used by de Casteljau subdivision.
func lerpRat(a, b RPoint, t *big.Rat) RPoint {
	dx := new(big.Rat).Sub(b.X, a.X)
	dy := new(big.Rat).Sub(b.Y, a.Y)
	return RPoint{
		X: new(big.Rat).Add(a.X, new(big.Rat).Mul(dx, t)),
		Y: new(big.Rat).Add(a.Y, new(big.Rat).Mul(dy, t)),
	}
}
