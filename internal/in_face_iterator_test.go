package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A box without sides: a floor from (0,0) to (10,0) and a roof from (0,10) to
// (10,10).
func corridor(t *testing.T) *Decomposition {
	d := NewDecomposition()
	insertArc(t, d, Point{0, 0}, Point{10, 0})
	insertArc(t, d, Point{0, 10}, Point{10, 10})
	return d
}

func TestWalkInEmptyDecomposition(t *testing.T) {
	d := NewDecomposition()
	walk := d.Walk(Point{0, 0}, Point{5, 5})
	assert.Len(t, slices.Collect(walk.All()), 1)
	assert.Nil(t, walk.Blocker())
}

func TestWalkAlongCorridor(t *testing.T) {
	d := corridor(t)
	walk := d.Walk(Point{1, 5}, Point{9, 5})
	trapezoids := slices.Collect(walk.All())
	require.Len(t, trapezoids, 1)
	assert.Nil(t, walk.Blocker())
	assert.Equal(t, Point{0, 10}, trapezoids[0].Left().Point)
	assert.Equal(t, Point{10, 0}, trapezoids[0].Right().Point)

	// Walking the other way finds the same thing
	backwards := slices.Collect(d.Walk(Point{9, 5}, Point{1, 5}).All())
	assert.Equal(t, trapezoids, backwards)
}

func TestWalkPassesWalls(t *testing.T) {
	d := corridor(t)
	// Short arcs hanging from the roof and standing on the floor leave walls
	// across the corridor without blocking it
	insertArc(t, d, Point{3, 8}, Point{4, 9})
	insertArc(t, d, Point{6, 2}, Point{7, 1})

	walk := d.Walk(Point{1, 5}, Point{9, 5})
	trapezoids := slices.Collect(walk.All())
	assert.Nil(t, walk.Blocker())
	require.Len(t, trapezoids, 5)
	for _, trapezoid := range trapezoids {
		midX := (trapezoid.Left().Point.X + trapezoid.Right().Point.X) / 2
		assert.True(t, trapezoid.Contains(Point{midX, 5}), "%v does not cross the path", trapezoid)
	}
	// Consecutive trapezoids share a wall
	for i := 1; i < len(trapezoids); i++ {
		assert.Same(t, trapezoids[i-1].Right(), trapezoids[i].Left())
	}
}

func TestWalkBlockedByArc(t *testing.T) {
	d := corridor(t)
	wall := insertArc(t, d, Point{5, 2}, Point{5, 8})

	walk := d.Walk(Point{1, 5}, Point{9, 5})
	trapezoids := slices.Collect(walk.All())
	assert.Len(t, trapezoids, 1)
	edge, ok := walk.Blocker().(*EdgeItem)
	require.True(t, ok)
	assert.Same(t, wall, edge.Halfedge())

	// Restarting gives the same walk
	walk.Reset()
	assert.Same(t, trapezoids[0], walk.Next())
	assert.Nil(t, walk.Next())
	assert.Same(t, edge, walk.Blocker())
}

func TestWalkBlockedByVertex(t *testing.T) {
	d := corridor(t)
	insertArc(t, d, Point{5, 5}, Point{7, 8})

	walk := d.Walk(Point{1, 5}, Point{9, 5})
	trapezoids := slices.Collect(walk.All())
	assert.Len(t, trapezoids, 1)
	vertex, ok := walk.Blocker().(*VertexItem)
	require.True(t, ok)
	assert.Equal(t, Point{5, 5}, vertex.Point())
}

func TestWalkEndsAtDestination(t *testing.T) {
	d := corridor(t)
	insertArc(t, d, Point{6, 2}, Point{7, 1})
	// The destination is before the wall of (6, 2)
	walk := d.Walk(Point{1, 5}, Point{5, 5})
	assert.Len(t, slices.Collect(walk.All()), 1)
	assert.Nil(t, walk.Blocker())
}

func TestStacks(t *testing.T) {
	d := NewDecomposition()
	var arcs []*Arc
	for _, y := range []float64{0, 2, 4} {
		arcs = append(arcs, insertArc(t, d, Point{0, y}, Point{4, y}).Arc())
	}

	above := slices.Collect(d.Above(Point{2, -1}).All())
	require.Len(t, above, 3)
	for i, trapezoid := range above {
		assert.Same(t, arcs[i], trapezoid.Bottom().Arc())
	}
	assert.Nil(t, above[2].Top())

	below := slices.Collect(d.Below(Point{2, 5}).All())
	require.Len(t, below, 3)
	for i, trapezoid := range below {
		assert.Same(t, arcs[2-i], trapezoid.Top().Arc())
	}

	// Starting on an arc skips the arc itself
	fromEdge := slices.Collect(d.Above(Point{2, 2}).All())
	require.Len(t, fromEdge, 2)
	assert.Same(t, arcs[1], fromEdge[0].Bottom().Arc())

	// Nothing is above the top
	assert.Empty(t, slices.Collect(d.Above(Point{2, 7}).All()))

	// From a vertex, the ray runs along its wall up to the arc above it
	vertex, ok := d.Locate(Point{4, 2}).(*VertexItem)
	require.True(t, ok)
	assert.Same(t, arcs[2], vertex.Top().Arc())
	fromVertex := slices.Collect(d.Above(Point{4, 2}).All())
	require.Len(t, fromVertex, 1)
	assert.Same(t, arcs[2], fromVertex[0].Bottom().Arc())
}
