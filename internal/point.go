package internal

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Points are ordered lexicographically: by X, and by Y when the X values are
// equal. This simulates a plane that has been sheared by an infinitesimal
// amount, so no two distinct points ever share a vertical line. Vertical arcs
// and vertices stacked on the same X then need no special cases anywhere in
// the decomposition. Every "left of" and "right of" in this package refers to
// this order.
//
// Comparisons are exact. Unlike the triangulation code this grew out of, there
// is no tolerance: the structure depends on every predicate agreeing with
// every other one, and a tolerance breaks transitivity.
type Point struct {
	X float64
	Y float64
}

// Less reports whether p comes before other in the lexicographic order.
func (p Point) Less(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// Compare returns -1, 0 or 1 as p is left of, equal to, or right of other.
func (p Point) Compare(other Point) int {
	switch {
	case p == other:
		return 0
	case p.Less(other):
		return -1
	}
	return 1
}

func (p Point) vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Orientation of c relative to the directed line through a and b. Positive when
// c lies to the left of the line (above it, for a line running left to right),
// negative to the right, zero when the three points are collinear.
func Orientation(a, b, c Point) int {
	cross := b.vec().Sub(a.vec()).Cross(c.vec().Sub(a.vec()))
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	}
	return 0
}

// Is p strictly between a and b in the lexicographic order? a must come before b.
func strictlyBetween(a, p, b Point) bool {
	return a.Less(p) && p.Less(b)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
