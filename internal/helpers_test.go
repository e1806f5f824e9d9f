package internal

// Helpers shared by the decomposition tests. No tests in here.

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func requireValid(t *testing.T, d *Decomposition) {
	t.Helper()
	require.NoError(t, d.Validate())
}

func insertArc(t *testing.T, d *Decomposition, a, b Point) *Halfedge {
	t.Helper()
	he, update := d.InsertSegment(a, b)
	require.NotEmpty(t, update.Created)
	requireValid(t, d)
	return he
}

// Run f and return the DecompositionError it panics with, if any.
func catch(f func()) (err error) {
	defer func() {
		err = HandleDecompositionPanicRecover(recover())
	}()
	f()
	return nil
}

func buildPolygons(t *testing.T, polygons []Polygon, seed int64) *Decomposition {
	t.Helper()
	d := NewDecomposition()
	require.NoError(t, catch(func() {
		d.AddPolygons(polygons, NewRand(seed, false))
	}))
	requireValid(t, d)
	return d
}

func evenOdd(polygons []Polygon, p Point) bool {
	crossings := 0
	for _, polygon := range polygons {
		crossings += polygon.CrossingCount(p)
	}
	return crossings%2 == 1
}

// Grid of points over the polygons' bounding box and a margin around it. The
// odd step and offset keep the samples off the (mostly integer) vertices.
func samplePoints(polygons []Polygon) []Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, polygon := range polygons {
		for _, p := range polygon.Points {
			minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
			maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
		}
	}
	const steps = 57
	stepX := (maxX - minX + 2) / steps
	stepY := (maxY - minY + 2) / steps
	var points []Point
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			points = append(points, Point{
				X: minX - 1 + stepX*(float64(i)+0.37),
				Y: minY - 1 + stepY*(float64(j)+0.457),
			})
		}
	}
	return points
}

// A trapezoid is fully described by its walls and arcs, so the multiset of
// these strings identifies a decomposition regardless of item identity.
func signatures(d *Decomposition) map[string]int {
	arcName := func(he *Halfedge) string {
		if he == nil {
			return "Ø"
		}
		return he.arc.String()
	}
	result := map[string]int{}
	for t := range d.Trapezoids() {
		result[fmt.Sprintf("%s|%s|%s|%s", describeVertex(t.left), describeVertex(t.right), arcName(t.bottom), arcName(t.top))]++
	}
	return result
}

func requireSameSignatures(t *testing.T, expected, actual map[string]int) {
	t.Helper()
	require.Equal(t, expected, actual, "signatures differ:\n%s", strings.Join(pretty.Diff(expected, actual), "\n"))
}

// Random segments that can't touch: one per cell of an n×n grid, each kept
// away from the cell's edges.
func randomSegments(rnd *rand.Rand, n int) [][2]Point {
	const cell = 10.0
	randomPoint := func(i, j int) Point {
		return Point{
			X: float64(i)*cell + 1 + rnd.Float64()*(cell-2),
			Y: float64(j)*cell + 1 + rnd.Float64()*(cell-2),
		}
	}
	var segments [][2]Point
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			segments = append(segments, [2]Point{randomPoint(i, j), randomPoint(i, j)})
		}
	}
	return segments
}
