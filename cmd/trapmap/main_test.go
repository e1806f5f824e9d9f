package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/trapmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPolygons(t *testing.T) {
	input := `
0 0
4 0
4 4

1 1
1.5 2
2 1


`
	polygons, err := readPolygons(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, [][]trapmap.Point{
		{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}},
		{{X: 1, Y: 1}, {X: 1.5, Y: 2}, {X: 2, Y: 1}},
	}, polygons)

	_, err = readPolygons(strings.NewReader("1 2 3\n"))
	assert.Error(t, err)
}

func TestParseCoordinates(t *testing.T) {
	p, err := parseCoordinates("1.5, -2", ",")
	require.NoError(t, err)
	assert.Equal(t, trapmap.Point{X: 1.5, Y: -2}, p)

	_, err = parseCoordinates("x,2", ",")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid x")
	_, err = parseCoordinates("1", ",")
	assert.Error(t, err)
}

func TestReadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
arcs:
  - [10, 0, 12, 1]
polygons:
  - [[0, 0], [4, 0], [4, 4], [0, 4]]
`), 0o644))
	s, err := readScene(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{10, 0, 12, 1}}, s.Arcs)
	require.Len(t, s.Polygons, 1)
	assert.Len(t, s.Polygons[0], 4)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("arcs:\n  - [1, 2, 3]\n"), 0o644))
	_, err = readScene(bad)
	assert.Error(t, err)

	m := trapmap.New(trapmap.Config{})
	_, err = m.InsertPolygons([]trapmap.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}})
	require.NoError(t, err)
	assert.Equal(t, "(2, 2): trapezoid (inside)", describe(m, trapmap.Point{X: 2, Y: 2}))
	assert.Equal(t, "(4, 4): on vertex", describe(m, trapmap.Point{X: 4, Y: 4}))
	assert.Equal(t, "(9, 9): trapezoid (outside)", describe(m, trapmap.Point{X: 9, Y: 9}))
}

func TestSeedFlagOverridesEnvironment(t *testing.T) {
	config := trapmap.Config{Seed: 7}
	_, err := app.Parse([]string{"stats"})
	require.NoError(t, err)
	applyFlags(&config)
	assert.Equal(t, int64(7), config.Seed)

	_, err = app.Parse([]string{"--seed", "0", "stats"})
	require.NoError(t, err)
	applyFlags(&config)
	assert.Equal(t, int64(0), config.Seed)
}
