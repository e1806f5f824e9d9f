package internal

import (
	"fmt"

	"github.com/osuushi/trapmap/internal/dbg"
)

// An arc of the arrangement as seen by the decomposition. It remembers the
// half-edge it was inserted with, and the trapezoids directly above and below
// the arc at its left end. Those two are where walks along the arc start.
type EdgeItem struct {
	itemBase
	halfedge     *Halfedge
	above, below *Trapezoid
}

func NewEdgeItem(he *Halfedge, node *DagNode) *EdgeItem {
	return &EdgeItem{itemBase: itemBase{node: node}, halfedge: he}
}

func (e *EdgeItem) Halfedge() *Halfedge {
	return e.halfedge
}

func (e *EdgeItem) Arc() *Arc {
	return e.halfedge.arc
}

func (e *EdgeItem) Above() *Trapezoid {
	return e.above
}

func (e *EdgeItem) Below() *Trapezoid {
	return e.below
}

func (e *EdgeItem) Kind() ItemKind {
	if e.retired {
		return KindInactiveEdge
	}
	return KindActiveEdge
}

func (e *EdgeItem) String() string {
	var arc any = "Ø"
	if e.halfedge != nil {
		arc = e.halfedge
	}
	return fmt.Sprintf("%s %s %v", e.Kind(), dbg.Name(e), arc)
}
