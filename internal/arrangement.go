package internal

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
)

// The arrangement is the planar graph the decomposition is built over. It is
// deliberately minimal: vertices, arcs (straight segments between two
// vertices), and the two directed half-edges of each arc. Faces are implicit;
// the decomposition recovers them by following trapezoid neighbors.

type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	if d == LeftToRight {
		return "→"
	}
	return "←"
}

type Vertex struct {
	Point Point
	// Half-edges leaving this vertex
	incident []*Halfedge
	// The vertex item in the decomposition, or nil if the vertex hasn't been
	// inserted yet.
	item *VertexItem
}

func (v *Vertex) Item() *VertexItem {
	return v.item
}

func (v *Vertex) Degree() int {
	return len(v.incident)
}

func (v *Vertex) Incident() []*Halfedge {
	return v.incident
}

func (v *Vertex) String() string {
	return v.Point.String()
}

// An arc always stores its endpoints in lexicographic order. The direction a
// caller inserted it in is carried by which of its two half-edges they hold.
type Arc struct {
	Left, Right *Vertex
	halves      [2]Halfedge
	item        *EdgeItem
}

func (a *Arc) Halfedge(d Direction) *Halfedge {
	return &a.halves[d]
}

func (a *Arc) Item() *EdgeItem {
	return a.item
}

func (a *Arc) IsVertical() bool {
	return a.Left.Point.X == a.Right.Point.X
}

// Side of the point relative to the arc's supporting line: 1 above, -1 below, 0
// on the line.
func (a *Arc) Side(p Point) int {
	return Orientation(a.Left.Point, a.Right.Point, p)
}

// Solve for the arc's y value at x. For vertical arcs, this is the y of the
// left endpoint, which is where the sheared arc meets the vertical line.
func (a *Arc) YAt(x float64) float64 {
	l, r := a.Left.Point, a.Right.Point
	if l.X == r.X {
		return l.Y
	}
	switch x {
	case l.X:
		return l.Y
	case r.X:
		return r.Y
	}
	return l.Y + (x-l.X)*(r.Y-l.Y)/(r.X-l.X)
}

func (a *Arc) HasEndpoint(v *Vertex) bool {
	return a.Left == v || a.Right == v
}

// Does the segment from→to meet the arc anywhere other than at a shared
// endpoint? This covers proper crossings, an endpoint of either lying in the
// interior of the other, and collinear overlap. from must come before to.
func (a *Arc) meets(from, to Point) bool {
	l, r := a.Left.Point, a.Right.Point
	o1 := Orientation(l, r, from)
	o2 := Orientation(l, r, to)
	o3 := Orientation(from, to, l)
	o4 := Orientation(from, to, r)
	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}
	return (o1 == 0 && strictlyBetween(l, from, r)) ||
		(o2 == 0 && strictlyBetween(l, to, r)) ||
		(o3 == 0 && strictlyBetween(from, l, to)) ||
		(o4 == 0 && strictlyBetween(from, r, to))
}

func (a *Arc) String() string {
	return fmt.Sprintf("%v–%v", a.Left.Point, a.Right.Point)
}

type Halfedge struct {
	arc       *Arc
	direction Direction
}

func (h *Halfedge) Arc() *Arc {
	return h.arc
}

func (h *Halfedge) Direction() Direction {
	return h.direction
}

func (h *Halfedge) Twin() *Halfedge {
	return &h.arc.halves[1-h.direction]
}

func (h *Halfedge) Source() *Vertex {
	if h.direction == LeftToRight {
		return h.arc.Left
	}
	return h.arc.Right
}

func (h *Halfedge) Target() *Vertex {
	if h.direction == LeftToRight {
		return h.arc.Right
	}
	return h.arc.Left
}

func (h *Halfedge) String() string {
	return fmt.Sprintf("%v→%v", h.Source().Point, h.Target().Point)
}

// Arrangement keeps its vertices in a B-tree ordered lexicographically, so two
// arcs given the same coordinates share one vertex, and vertices can be listed
// left to right.
type Arrangement struct {
	vertices *btree.BTreeG[*Vertex]
	arcs     map[*Arc]struct{}
}

func NewArrangement() *Arrangement {
	return &Arrangement{
		vertices: btree.NewBTreeG(func(a, b *Vertex) bool {
			return a.Point.Less(b.Point)
		}),
		arcs: make(map[*Arc]struct{}),
	}
}

// Look up the vertex at p, if there is one.
func (arr *Arrangement) Vertex(p Point) (*Vertex, bool) {
	return arr.vertices.Get(&Vertex{Point: p})
}

// Find the vertex at p, registering a new, unattached one if needed.
func (arr *Arrangement) vertexAt(p Point) *Vertex {
	if v, ok := arr.Vertex(p); ok {
		return v
	}
	v := &Vertex{Point: p}
	arr.vertices.Set(v)
	return v
}

// Create an arc between a and b and return its half-edge directed from a to b.
// The arc's endpoints are registered, but the arc isn't attached to them until
// it has been inserted into the decomposition.
func (arr *Arrangement) NewArc(a, b Point) *Halfedge {
	if a == b {
		fatalf("zero length arc at %v", a)
	}
	arc := &Arc{}
	arc.halves[LeftToRight] = Halfedge{arc: arc, direction: LeftToRight}
	arc.halves[RightToLeft] = Halfedge{arc: arc, direction: RightToLeft}
	direction := LeftToRight
	if b.Less(a) {
		a, b = b, a
		direction = RightToLeft
	}
	arc.Left = arr.vertexAt(a)
	arc.Right = arr.vertexAt(b)
	return arc.Halfedge(direction)
}

func (arr *Arrangement) attach(arc *Arc) {
	arr.arcs[arc] = struct{}{}
	arc.Left.incident = append(arc.Left.incident, arc.Halfedge(LeftToRight))
	arc.Right.incident = append(arc.Right.incident, arc.Halfedge(RightToLeft))
}

// Detach the arc from its endpoints. Endpoints left without arcs are
// unregistered and returned.
func (arr *Arrangement) detach(arc *Arc) (isolated []*Vertex) {
	delete(arr.arcs, arc)
	for _, v := range []*Vertex{arc.Left, arc.Right} {
		kept := v.incident[:0]
		for _, he := range v.incident {
			if he.arc != arc {
				kept = append(kept, he)
			}
		}
		v.incident = kept
		if len(v.incident) == 0 {
			arr.vertices.Delete(v)
			isolated = append(isolated, v)
		}
	}
	return isolated
}

// Drop the endpoints of an arc that never made it into the decomposition,
// unless something else is using them.
func (arr *Arrangement) discard(arc *Arc) {
	for _, v := range []*Vertex{arc.Left, arc.Right} {
		if len(v.incident) == 0 && v.item == nil {
			if registered, ok := arr.Vertex(v.Point); ok && registered == v {
				arr.vertices.Delete(v)
			}
		}
	}
}

// Vertices in lexicographic order
func (arr *Arrangement) Vertices() iter.Seq[*Vertex] {
	return func(yield func(*Vertex) bool) {
		arr.vertices.Scan(func(v *Vertex) bool {
			return yield(v)
		})
	}
}

// Arcs in no particular order
func (arr *Arrangement) Arcs() iter.Seq[*Arc] {
	return func(yield func(*Arc) bool) {
		for arc := range arr.arcs {
			if !yield(arc) {
				return
			}
		}
	}
}

func (arr *Arrangement) NumVertices() int {
	return arr.vertices.Len()
}

func (arr *Arrangement) NumArcs() int {
	return len(arr.arcs)
}
