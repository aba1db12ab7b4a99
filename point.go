package trifract

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate. Points are values and are never modified once created.
type Point struct {
	X, Y float64
}

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistX returns the absolute horizontal distance between p and q.
func (p Point) DistX(q Point) float64 {
	return math.Abs(p.Sub(q).X)
}

// DistY returns the absolute vertical distance between p and q.
func (p Point) DistY(q Point) float64 {
	return math.Abs(p.Sub(q).Y)
}

// Mid returns the midpoint of the segment pq.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
