package internal

import (
	"fmt"
	"log/slog"

	"github.com/osuushi/trapmap/internal/dbg"
)

// Remove an arc from the decomposition. This is insertion run backwards, but
// it can't simply undo the insertion, since other arcs have come and gone
// since then.
//
// The trapezoids touching the arc form two strips, one above it and one below.
// The walls that end on the arc from above and from below, merged in
// lexicographic order, are the walls that survive. Between each pair of
// consecutive surviving walls there is exactly one new trapezoid, with the top
// of the upper strip trapezoid and the bottom of the lower strip trapezoid
// covering that span.
//
// If an endpoint has no other arcs, its wall goes away too, and the trapezoid
// on the far side of the wall merges into the first (or last) new trapezoid.
//
// Each retired trapezoid covers a run of the new ones, so its DAG node forwards
// to a balanced tree of vertex nodes over the walls inside that run.
func (d *Decomposition) Remove(he *Halfedge) *Update {
	arc := he.arc
	edge := arc.item
	if edge == nil || !edge.IsActive() {
		fatalf("arc %v is not in the decomposition", arc)
	}
	p, q := arc.Left, arc.Right

	var upper, lower []*Trapezoid
	for t := edge.above; ; t = t.lowerRight {
		upper = append(upper, t)
		if t.right == q {
			break
		}
	}
	for t := edge.below; ; t = t.upperRight {
		lower = append(lower, t)
		if t.right == q {
			break
		}
	}

	// Surviving walls, in order, with the endpoints at either end
	walls := []*Vertex{p}
	wallAbove := []bool{false}
	for i, j := 0, 0; i < len(upper)-1 || j < len(lower)-1; {
		if j >= len(lower)-1 || (i < len(upper)-1 && upper[i].right.Point.Less(lower[j].right.Point)) {
			walls = append(walls, upper[i].right)
			wallAbove = append(wallAbove, true)
			i++
		} else {
			walls = append(walls, lower[j].right)
			wallAbove = append(wallAbove, false)
			j++
		}
	}
	walls = append(walls, q)
	wallAbove = append(wallAbove, false)
	position := make(map[*Vertex]int, len(walls))
	for i, v := range walls {
		position[v] = i
	}

	fresh := make([]*Trapezoid, len(walls)-1)
	ui, li := 0, 0
	for n := range fresh {
		for position[upper[ui].right] <= n {
			ui++
		}
		for position[lower[li].right] <= n {
			li++
		}
		fresh[n] = NewTrapezoid(walls[n], walls[n+1], lower[li].bottom, upper[ui].top, nil)
	}

	retired := append(append([]*Trapezoid{}, upper...), lower...)

	// Absorb the trapezoids beyond endpoints that are about to disappear
	var isolated []*Vertex
	var head, tail *Trapezoid
	if p.Degree() == 1 {
		head = upper[0].upperLeft
		if head == nil || head != lower[0].lowerLeft {
			panic("no single trapezoid left of an isolated endpoint")
		}
		fresh[0].left = head.left
		retired = append(retired, head)
		isolated = append(isolated, p)
	}
	if q.Degree() == 1 {
		tail = upper[len(upper)-1].upperRight
		if tail == nil || tail != lower[len(lower)-1].lowerRight {
			panic("no single trapezoid right of an isolated endpoint")
		}
		fresh[len(fresh)-1].right = tail.right
		retired = append(retired, tail)
		isolated = append(isolated, q)
	}

	relink(fresh, retired)

	for _, t := range fresh {
		newLeaf(t)
	}
	routes := map[[2]int]*DagNode{}
	var route func(lo, hi int) *DagNode
	route = func(lo, hi int) *DagNode {
		if lo > hi {
			panic(fmt.Sprintf("empty route %d..%d", lo, hi))
		}
		if lo == hi {
			return fresh[lo].DagNode()
		}
		if node, ok := routes[[2]int{lo, hi}]; ok {
			return node
		}
		mid := (lo + hi + 1) / 2
		node := newVertexNode(walls[mid].item, route(lo, mid-1), route(mid, hi))
		routes[[2]int{lo, hi}] = node
		return node
	}

	// Head and tail lie wholly inside the first and last fresh trapezoid
	for _, t := range retired {
		var lo, hi int
		switch t {
		case head:
			lo, hi = 0, 0
		case tail:
			lo, hi = len(fresh)-1, len(fresh)-1
		default:
			lo, hi = position[t.left], position[t.right]-1
		}
		node := t.DagNode()
		t.retire()
		node.forward(route(lo, hi))
	}

	// Walls that ended on the arc now run on to the next arc
	for m := 1; m < len(walls)-1; m++ {
		if wallAbove[m] {
			walls[m].item.SetBottom(fresh[m].bottom)
		} else {
			walls[m].item.SetTop(fresh[m].top)
		}
	}

	edge.retire()
	update := &Update{Retired: []MapItem{edge}}
	for _, v := range isolated {
		v.item.retire()
		update.Retired = append(update.Retired, v.item)
	}
	d.arrangement.detach(arc)

	for _, t := range fresh {
		update.Created = append(update.Created, t)
	}
	for _, t := range retired {
		update.Retired = append(update.Retired, t)
	}

	d.log.Debug("removed arc",
		slog.Any("edge", dbg.LogName(edge)),
		slog.Any("arc", arc),
		slog.Int("retired", len(retired)),
		slog.Int("created", len(fresh)),
	)
	return update
}
