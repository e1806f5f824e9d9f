package internal

import (
	"fmt"

	"github.com/osuushi/trapmap/internal/dbg"
)

// A vertex of the arrangement as seen by the decomposition. The bottom and top
// half-edges are the arcs hit by vertical rays shot from the vertex downward
// and upward; nil means the ray escapes to infinity. These are exactly the
// arcs that bound the vertex's wall.
type VertexItem struct {
	itemBase
	vertex      *Vertex
	bottom, top *Halfedge
}

func NewVertexItem(v *Vertex, bottom, top *Halfedge, node *DagNode) *VertexItem {
	return &VertexItem{
		itemBase: itemBase{node: node},
		vertex:   v,
		bottom:   bottom,
		top:      top,
	}
}

func (vi *VertexItem) Vertex() *Vertex {
	return vi.vertex
}

// The zero Point if the item has no vertex
func (vi *VertexItem) Point() Point {
	if vi.vertex == nil {
		return Point{}
	}
	return vi.vertex.Point
}

func (vi *VertexItem) Bottom() *Halfedge {
	return vi.bottom
}

func (vi *VertexItem) Top() *Halfedge {
	return vi.top
}

func (vi *VertexItem) SetBottom(he *Halfedge) {
	vi.bottom = normalized(vi.bottom, he)
}

func (vi *VertexItem) SetTop(he *Halfedge) {
	vi.top = normalized(vi.top, he)
}

func (vi *VertexItem) Kind() ItemKind {
	if vi.retired {
		return KindInactiveVertex
	}
	return KindActiveVertex
}

func (vi *VertexItem) String() string {
	var point any = "Ø"
	if vi.vertex != nil {
		point = vi.vertex.Point
	}
	return fmt.Sprintf("%s %s %v <B: %s, T: %s>", vi.Kind(), dbg.Name(vi), point, dbg.Name(vi.bottom), dbg.Name(vi.top))
}
