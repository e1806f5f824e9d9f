package internal

import "iter"

type Polygon struct {
	Points []Point
}

// Consecutive pairs of points, closing the loop
func (poly Polygon) Edges() iter.Seq2[Point, Point] {
	return func(yield func(Point, Point) bool) {
		for i, p := range poly.Points {
			if !yield(p, poly.Points[CircularIndex(i+1, len(poly.Points))]) {
				return
			}
		}
	}
}

// Even-odd point-in-polygon. This is what the decomposition's ContainsPoint is
// checked against in tests. If you are checking many points against the same
// large polygon, the decomposition is much faster.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of edges crossed by a ray going right from p
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for a, b := range poly.Edges() {
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Twice the signed area. Positive for counterclockwise polygons.
func (poly Polygon) doubleArea() float64 {
	var sum float64
	for a, b := range poly.Edges() {
		sum += a.vec().Cross(b.vec())
	}
	return sum
}

func (poly Polygon) IsCCW() bool {
	return poly.doubleArea() > 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}
