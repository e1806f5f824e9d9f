package trapmap

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestMap(t *testing.T) {
	m := New(Config{DrawScale: 10})
	halfedges, err := m.InsertPolygons([]Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	})
	require.NoError(t, err)
	assert.Len(t, halfedges, 4)
	assert.True(t, m.ContainsPoint(Point{X: 0, Y: 0}))
	assert.False(t, m.ContainsPoint(Point{X: 2, Y: 0}))
	assert.Len(t, m.Vertices(), 4)

	// Crossing an edge is refused, and leaves the map alone
	before := m.Stats()
	_, _, err = m.Insert(Point{X: 0, Y: 0}, Point{X: 3, Y: 0})
	assert.Error(t, err)
	assert.Equal(t, before, m.Stats())
	assert.Len(t, m.Vertices(), 4)

	assert.Equal(t, OnEdge, m.Classify(Point{X: 1, Y: 0}))
	assert.Equal(t, OnVertex, m.Classify(Point{X: 1, Y: 1}))
	assert.Equal(t, Inside, m.Classify(Point{X: 0.5, Y: 0.5}))
	assert.Equal(t, "outside", m.Classify(Point{X: 5, Y: 5}).String())

	// Walking out of the square stops at its edge
	walk, err := m.Walk(Point{X: 0, Y: 0}, Point{X: 3, Y: 0})
	require.NoError(t, err)
	for range walk.All() {
	}
	_, ok := walk.Blocker().(*EdgeItem)
	assert.True(t, ok)

	for _, he := range halfedges {
		_, err := m.Remove(he)
		require.NoError(t, err)
	}
	require.NoError(t, m.Validate())
	assert.Empty(t, m.Vertices())
	assert.Equal(t, 1, m.Stats().Trapezoids)
	assert.False(t, m.ContainsPoint(Point{X: 0, Y: 0}))

	// A removed arc can't be removed again
	_, err = m.Remove(halfedges[0])
	assert.Error(t, err)

	require.NoError(t, m.Draw(filepath.Join(t.TempDir(), "empty.png"), 0))
}

func TestConfigLogLevel(t *testing.T) {
	t.Setenv("TRAPMAP_LOG_LEVEL", "debug")
	t.Setenv("TRAPMAP_SEED", "42")
	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(42), config.Seed)
	assert.Equal(t, 40.0, config.DrawScale)
	assert.Equal(t, "DEBUG", config.SlogLevel().String())

	t.Setenv("TRAPMAP_SEED", "not a number")
	_, err = LoadConfig()
	assert.Error(t, err)
}
