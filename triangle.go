package trifract

import (
	"fmt"
	"math"
)

// Line is a drawable segment given by its raw end point coordinates.
type Line struct {
	X0, Y0, X1, Y1 float64
}

// Triangle is defined by three vertices in no particular winding order.
// Degenerate triangles (collinear or coincident vertices) are valid.
type Triangle struct {
	A, B, C Point
}

// NewTriangle creates a new triangle from the given vertices.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Root returns the initial triangle spanning a w x h canvas:
// apex at the top center and the base along the bottom edge.
func Root(w, h int) Triangle {
	return NewTriangle(
		Point{X: float64(w) / 2, Y: 0},
		Point{X: 0, Y: float64(h)},
		Point{X: float64(w), Y: float64(h)},
	)
}

// Subdivide splits the triangle into three children. Each edge midpoint is
// moved by a random offset drawn from [-k, k] and scaled by its distance to
// the next midpoint in cyclic order (AB→BC, BC→CA, CA→AB).
// Every call consumes exactly six values from rnd.
func (t Triangle) Subdivide(k float64, rnd Rand) [3]Triangle {
	children, _ := t.subdivide(k, rnd)
	return children
}

// subdivide returns the children together with the largest distance
// a perturbed midpoint was moved away from its unperturbed position.
func (t Triangle) subdivide(k float64, rnd Rand) ([3]Triangle, float64) {
	mab := t.A.Mid(t.B)
	mbc := t.B.Mid(t.C)
	mca := t.C.Mid(t.A)

	ab := perturb(mab, mbc, k, rnd)
	bc := perturb(mbc, mca, k, rnd)
	ca := perturb(mca, mab, k, rnd)

	shift := Max(
		math.Hypot(ab.X-mab.X, ab.Y-mab.Y),
		math.Hypot(bc.X-mbc.X, bc.Y-mbc.Y),
		math.Hypot(ca.X-mca.X, ca.Y-mca.Y),
	)

	return [3]Triangle{
		{A: t.A, B: ab, C: ca},
		{A: t.B, B: bc, C: ab},
		{A: t.C, B: ca, C: bc},
	}, shift
}

// perturb moves m along both axes, the span of the move being
// set by the per-axis distance between m and next.
func perturb(m, next Point, k float64, rnd Rand) Point {
	dx := rnd.Uniform(-k, k) * m.DistX(next)
	dy := rnd.Uniform(-k, k) * m.DistY(next)
	return Point{X: m.X + dx, Y: m.Y + dy}
}

// Edges returns the sides AB, BC and CA in that order.
func (t Triangle) Edges() [3]Line {
	return [3]Line{
		{X0: t.A.X, Y0: t.A.Y, X1: t.B.X, Y1: t.B.Y},
		{X0: t.B.X, Y0: t.B.Y, X1: t.C.X, Y1: t.C.Y},
		{X0: t.C.X, Y0: t.C.Y, X1: t.A.X, Y1: t.A.Y},
	}
}

// MaxExtent returns the largest x and the largest y coordinate of the vertices.
func (t Triangle) MaxExtent() (float64, float64) {
	return Max(t.A.X, t.B.X, t.C.X), Max(t.A.Y, t.B.Y, t.C.Y)
}

func (t Triangle) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.A, t.B, t.C)
}
