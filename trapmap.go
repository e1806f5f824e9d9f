// Point location in planar subdivisions for Go.
//
// A Map holds a set of non-crossing line segments (arcs) and answers "what
// contains this point?" in expected logarithmic time: a face (as one of its
// trapezoids), an arc, or a vertex. Arcs can be inserted and removed at any
// time. Internally this is a trapezoidal decomposition searched through its
// history DAG.
//
// If the arcs are the edges of polygons whose solids wind counterclockwise and
// whose holes wind clockwise, the map can also tell whether a point is inside
// them.
package trapmap

import (
	"log/slog"
	"math/rand"

	"github.com/osuushi/trapmap/internal"
)

type Point = internal.Point
type Polygon = internal.Polygon
type Halfedge = internal.Halfedge
type Vertex = internal.Vertex
type MapItem = internal.MapItem
type ItemKind = internal.ItemKind
type Trapezoid = internal.Trapezoid
type EdgeItem = internal.EdgeItem
type VertexItem = internal.VertexItem
type Update = internal.Update
type Stats = internal.Stats
type InFaceIterator = internal.InFaceIterator
type FaceIterator = internal.FaceIterator
type StackIterator = internal.StackIterator

type Map struct {
	decomposition *internal.Decomposition
	rnd           *rand.Rand
	config        Config
}

func New(config Config) *Map {
	decomposition := internal.NewDecomposition()
	decomposition.SetLogger(slog.Default().With("component", "trapmap"))
	return &Map{
		decomposition: decomposition,
		rnd:           internal.NewRand(config.Seed, config.Nondeterministic),
		config:        config,
	}
}

func (m *Map) SetLogger(log *slog.Logger) {
	m.decomposition.SetLogger(log)
}

// Insert the arc from a to b. It must not cross or overlap any arc in the map,
// and must not pass through any vertex. The returned half-edge runs from a to b,
// and is the handle for removing the arc later.
func (m *Map) Insert(a, b Point) (he *Halfedge, update *Update, err error) {
	defer func() {
		recoveredErr := internal.HandleDecompositionPanicRecover(recover())
		if recoveredErr != nil {
			he, update, err = nil, nil, recoveredErr
		}
	}()
	he, update = m.decomposition.InsertSegment(a, b)
	return he, update, nil
}

// Remove an arc previously inserted.
func (m *Map) Remove(he *Halfedge) (update *Update, err error) {
	defer func() {
		recoveredErr := internal.HandleDecompositionPanicRecover(recover())
		if recoveredErr != nil {
			update, err = nil, recoveredErr
		}
	}()
	return m.decomposition.Remove(he), nil
}

// Insert the edges of the polygons in random order. Points are given
// counterclockwise for solids and clockwise for holes. The order of the
// polygons is irrelevant.
//
// On error, the edges inserted before the failure stay in the map.
func (m *Map) InsertPolygons(polygonPoints ...[]Point) (halfedges []*Halfedge, err error) {
	defer func() {
		recoveredErr := internal.HandleDecompositionPanicRecover(recover())
		if recoveredErr != nil {
			halfedges, err = nil, recoveredErr
		}
	}()
	polygons := make([]Polygon, len(polygonPoints))
	for i, points := range polygonPoints {
		polygons[i] = Polygon{Points: points}
	}
	return m.decomposition.AddPolygons(polygons, m.rnd), nil
}

// Find the trapezoid, edge or vertex containing p. Use a type switch on the
// result.
func (m *Map) Locate(p Point) MapItem {
	return m.decomposition.Locate(p)
}

// Where a point falls relative to the polygons in the map
type Location int

const (
	Outside Location = iota
	Inside
	OnEdge
	OnVertex
)

func (l Location) String() string {
	switch l {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case OnEdge:
		return "on edge"
	case OnVertex:
		return "on vertex"
	}
	return "unknown"
}

// Like Locate, but only says what kind of place p is.
func (m *Map) Classify(p Point) Location {
	switch item := m.Locate(p).(type) {
	case *EdgeItem:
		return OnEdge
	case *VertexItem:
		return OnVertex
	case *Trapezoid:
		if item.IsInside() {
			return Inside
		}
	}
	return Outside
}

// Is p strictly inside the polygons inserted so far?
func (m *Map) ContainsPoint(p Point) bool {
	return m.decomposition.ContainsPoint(p)
}

// The trapezoids of one face that the segment from a to b crosses, stopping
// where the segment leaves the face. a must not lie on an arc.
func (m *Map) Walk(a, b Point) (walk *InFaceIterator, err error) {
	defer func() {
		recoveredErr := internal.HandleDecompositionPanicRecover(recover())
		if recoveredErr != nil {
			walk, err = nil, recoveredErr
		}
	}()
	return m.decomposition.Walk(a, b), nil
}

// All trapezoids of the face containing t
func (m *Map) Face(t *Trapezoid) *FaceIterator {
	return m.decomposition.Face(t)
}

// Trapezoids straight above p, nearest first
func (m *Map) Above(p Point) *StackIterator {
	return m.decomposition.Above(p)
}

// Trapezoids straight below p, nearest first
func (m *Map) Below(p Point) *StackIterator {
	return m.decomposition.Below(p)
}

// Vertices in lexicographic order
func (m *Map) Vertices() []*Vertex {
	var vertices []*Vertex
	for v := range m.decomposition.Arrangement().Vertices() {
		vertices = append(vertices, v)
	}
	return vertices
}

func (m *Map) Stats() Stats {
	return m.decomposition.Stats()
}

func (m *Map) Validate() error {
	return m.decomposition.Validate()
}

// Render the map to a PNG file. A scale of 0 uses the configured scale.
func (m *Map) Draw(path string, scale float64) error {
	if scale == 0 {
		scale = m.config.DrawScale
	}
	return m.decomposition.SavePNG(path, scale)
}
