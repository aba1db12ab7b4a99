package trifract

import (
	"math"
	"strings"
)

// Generation is the set of triangles after a number of subdivision passes.
type Generation []Triangle

// Subdivide replaces every triangle with its three children. The children of
// each triangle are stored contiguously. The receiver is left untouched.
func (g Generation) Subdivide(k float64, rnd Rand) Generation {
	next, _ := g.subdivide(k, rnd)
	return next
}

func (g Generation) subdivide(k float64, rnd Rand) (Generation, float64) {
	var shift float64

	next := make(Generation, 0, len(g)*3)
	for _, t := range g {
		children, s := t.subdivide(k, rnd)
		next = append(next, children[:]...)
		if s > shift {
			shift = s
		}
	}
	return next, shift
}

// Extent returns the largest coordinates found in the generation.
// The result is never negative on either axis.
func (g Generation) Extent() Point {
	var ext Point
	for _, t := range g {
		x, y := t.MaxExtent()
		ext.X = Max(ext.X, x)
		ext.Y = Max(ext.Y, y)
	}
	return ext
}

// CanvasSize returns the smallest integer canvas size strictly
// greater than every vertex coordinate of the generation.
func (g Generation) CanvasSize() (int, int) {
	ext := g.Extent()
	return int(math.Floor(ext.X)) + 1, int(math.Floor(ext.Y)) + 1
}

// Evolve runs the given number of subdivision passes on gen and returns the
// final generation. Zero passes return gen as is. When onPass is not nil it
// is called after every pass with a summary of that pass.
func Evolve(gen Generation, passes int, k float64, rnd Rand, onPass func(PassEvent)) Generation {
	for i := 0; i < passes; i++ {
		next, shift := gen.subdivide(k, rnd)
		if onPass != nil {
			onPass(PassEvent{
				Pass:      i,
				Before:    len(gen),
				After:     len(next),
				Extent:    next.Extent(),
				MaxShift:  shift,
				Triangles: next,
			})
		}
		gen = next
	}
	return gen
}

// String renders the generation as a bracketed triangle list.
func (g Generation) String() string {
	parts := make([]string, len(g))
	for i, t := range g {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
