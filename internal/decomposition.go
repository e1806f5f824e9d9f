package internal

import (
	"iter"
	"log/slog"
	"math/rand"
	"time"
)

// A trapezoidal decomposition of the plane induced by a set of non-crossing
// arcs, together with the history DAG that searches it.
//
// Every vertex shoots a wall up and down until it hits an arc (or goes off to
// infinity), which cuts each face of the arrangement into trapezoids. The
// decomposition is built incrementally. Inserting the arcs in random order
// keeps the expected DAG depth, and so the expected query time, logarithmic.
type Decomposition struct {
	root        *DagNode
	arrangement *Arrangement
	log         *slog.Logger
}

// The items an insertion or removal created and retired
type Update struct {
	Created []MapItem
	Retired []MapItem
}

func NewDecomposition() *Decomposition {
	return &Decomposition{
		root:        newLeaf(&Trapezoid{}),
		arrangement: NewArrangement(),
		log:         slog.Default(),
	}
}

func (d *Decomposition) SetLogger(log *slog.Logger) {
	d.log = log
}

func (d *Decomposition) Root() *DagNode {
	return d.root
}

func (d *Decomposition) Arrangement() *Arrangement {
	return d.arrangement
}

// Find the active trapezoid, edge or vertex containing p.
func (d *Decomposition) Locate(p Point) MapItem {
	return d.root.FindPoint(p)
}

// Create an arc from a to b in the arrangement and insert it. If the
// insertion fails, the arrangement is left as it was.
func (d *Decomposition) InsertSegment(a, b Point) (he *Halfedge, update *Update) {
	he = d.arrangement.NewArc(a, b)
	inserted := false
	defer func() {
		if !inserted {
			d.arrangement.discard(he.arc)
		}
	}()
	update = d.Insert(he)
	inserted = true
	return he, update
}

// Insert a batch of half-edges in random order. Failures stop the batch, but
// the half-edges inserted before the failure stay.
func (d *Decomposition) InsertAll(halfedges []*Halfedge, rnd *rand.Rand) {
	order := append([]*Halfedge{}, halfedges...)
	rnd.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	for _, he := range order {
		d.Insert(he)
	}
}

// Insert the edges of every polygon, all shuffled together. Solids must wind
// counterclockwise and holes clockwise for ContainsPoint to make sense.
//
// If an edge fails, the edges not yet inserted are dropped from the
// arrangement along with any endpoints only they used.
func (d *Decomposition) AddPolygons(polygons []Polygon, rnd *rand.Rand) []*Halfedge {
	var halfedges []*Halfedge
	defer func() {
		for _, he := range halfedges {
			if he.arc.item == nil {
				d.arrangement.discard(he.arc)
			}
		}
	}()
	for _, polygon := range polygons {
		for a, b := range polygon.Edges() {
			halfedges = append(halfedges, d.arrangement.NewArc(a, b))
		}
	}
	d.InsertAll(halfedges, rnd)
	return halfedges
}

// Is p strictly inside the polygons? Points on an arc or a vertex are not.
func (d *Decomposition) ContainsPoint(p Point) bool {
	t, ok := d.Locate(p).(*Trapezoid)
	return ok && t.IsInside()
}

// All active trapezoids
func (d *Decomposition) Trapezoids() iter.Seq[*Trapezoid] {
	return d.root.Trapezoids()
}

// Trapezoids of the face containing t
func (d *Decomposition) Face(t *Trapezoid) *FaceIterator {
	return NewFaceIterator(t)
}

// Walk from one point toward another within the face the first point is in.
// from must not lie on an arc.
func (d *Decomposition) Walk(from, to Point) *InFaceIterator {
	if to.Less(from) {
		from, to = to, from
	}
	return NewInFaceIterator(d.root.findSegmentStart(from, to, nil, aboveChild), from, to)
}

// Trapezoids met by a vertical ray going up from p, nearest first
func (d *Decomposition) Above(p Point) *StackIterator {
	return d.stack(p, Up)
}

// Trapezoids met by a vertical ray going down from p, nearest first
func (d *Decomposition) Below(p Point) *StackIterator {
	return d.stack(p, Down)
}

func (d *Decomposition) stack(p Point, direction YDirection) *StackIterator {
	var boundary *Halfedge
	switch item := d.Locate(p).(type) {
	case *Trapezoid:
		// The trapezoid containing p isn't strictly above or below it, so start
		// on the other side of its boundary.
		if direction == Up {
			boundary = item.top
		} else {
			boundary = item.bottom
		}
	case *EdgeItem:
		boundary = item.halfedge
	case *VertexItem:
		// A vertex's wall runs along the ray up to the arcs that bound it.
		if direction == Up {
			boundary = item.top
		} else {
			boundary = item.bottom
		}
	}
	if boundary == nil {
		return newStackIterator(nil, p.X, direction)
	}
	return newStackIterator(acrossArc(boundary.arc, p.X, direction), p.X, direction)
}

// Make a random source the way AddPolygons callers usually want it: seeded for
// reproducible runs, or from the clock when nondeterministic.
func NewRand(seed int64, nondeterministic bool) *rand.Rand {
	if nondeterministic {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
