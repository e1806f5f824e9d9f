package internal

import "sync/atomic"

// Everything the search structure can answer with is a map item: a trapezoid
// (a face fragment), an edge (an arc of the arrangement) or a vertex. Each of
// those is either active, meaning it's part of the current decomposition, or
// inactive, meaning it was retired by an insertion or removal and survives only
// as a historic node in the DAG. That gives six kinds, but only three types;
// the retired flag tells the two halves apart.
type MapItem interface {
	// Unique for the life of the process. Two distinct items never share an ID.
	ID() uint64
	Kind() ItemKind
	IsActive() bool
	// The DAG node that owns the item, or nil. This is a non-owning back
	// reference: the DAG owns items, never the other way around.
	DagNode() *DagNode
	SetDagNode(*DagNode)
	String() string

	// Dummy method so that only the three item types can satisfy the interface.
	mapItemTypeHint()
}

func (*Trapezoid) mapItemTypeHint()  {}
func (*EdgeItem) mapItemTypeHint()   {}
func (*VertexItem) mapItemTypeHint() {}

type ItemKind int

const (
	KindActiveTrapezoid ItemKind = iota
	KindActiveEdge
	KindActiveVertex
	KindInactiveTrapezoid
	KindInactiveEdge
	KindInactiveVertex
)

func (k ItemKind) IsActive() bool {
	return k <= KindActiveVertex
}

func (k ItemKind) String() string {
	switch k {
	case KindActiveTrapezoid:
		return "trapezoid"
	case KindActiveEdge:
		return "edge"
	case KindActiveVertex:
		return "vertex"
	case KindInactiveTrapezoid:
		return "inactive trapezoid"
	case KindInactiveEdge:
		return "inactive edge"
	case KindInactiveVertex:
		return "inactive vertex"
	}
	return "unknown"
}

var lastItemID atomic.Uint64

// State shared by all item types
type itemBase struct {
	id      uint64
	node    *DagNode
	retired bool
}

// IDs are handed out on first request, so zero value items get one too.
func (b *itemBase) ID() uint64 {
	if b.id == 0 {
		b.id = lastItemID.Add(1)
	}
	return b.id
}

func (b *itemBase) IsActive() bool {
	return !b.retired
}

func (b *itemBase) DagNode() *DagNode {
	return b.node
}

func (b *itemBase) SetDagNode(node *DagNode) {
	b.node = node
}

func (b *itemBase) retire() {
	b.retired = true
	b.node = nil
}

// Direction normalization for bounding half-edges. Once a slot holds a
// half-edge, later assignments keep its direction by storing the twin when the
// incoming half-edge runs the other way.
func normalized(stored, incoming *Halfedge) *Halfedge {
	if stored != nil && incoming != nil && stored.Direction() != incoming.Direction() {
		return incoming.Twin()
	}
	return incoming
}

// Do two (possibly nil) half-edges lie on the same arc?
func sameArc(a, b *Halfedge) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.arc == b.arc
}
