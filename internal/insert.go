package internal

import (
	"log/slog"

	"github.com/osuushi/trapmap/internal/dbg"
)

// Insert an arc of the arrangement into the decomposition. The arc must not
// cross any arc already inserted, must not pass through an existing vertex,
// and its endpoints may only touch existing arcs at their endpoints. Those are
// all checked before anything is modified.
//
// Given the arc s from p to q (left to right), the insertion:
//
//  1. finds the trapezoid Δ0 that s starts in, and walks right to collect
//     Δ0..Δk, the trapezoids s crosses.
//  2. splits each Δj into a piece above s and a piece below s. Where the wall
//     between Δj-1 and Δj ends on s from below, the two pieces above s are
//     really one trapezoid, so they merge (and likewise below). If p is a new
//     vertex, the part of Δ0 left of p's wall becomes its own trapezoid, and
//     the same goes for q and Δk.
//  3. retires Δ0..Δk. Each retired trapezoid's DAG node forwards to a small
//     subtree that routes to the new pieces:
//
//     (vertex p) → (vertex q) → (edge s) → below / above pieces
//
//     where the vertex nodes only appear where a new vertex's wall cuts Δj.
func (d *Decomposition) Insert(he *Halfedge) *Update {
	arc := he.arc
	if arc.item != nil {
		fatalf("arc %v is already in the decomposition", arc)
	}
	p, q := arc.Left, arc.Right

	start := d.root.findSegmentStart(p.Point, q.Point, arc, aboveChild)
	walk := NewInFaceIterator(start, p.Point, q.Point)
	var crossed []*Trapezoid
	for t := walk.Next(); t != nil; t = walk.Next() {
		crossed = append(crossed, t)
	}
	if blocker := walk.Blocker(); blocker != nil {
		fatalf("arc %v is blocked by %v", arc, blocker)
	}
	if len(crossed) == 0 {
		fatalf("arc %v has no room to start in", arc)
	}

	k := len(crossed) - 1
	first, last := crossed[0], crossed[k]
	pIsNew, qIsNew := p.item == nil, q.item == nil
	if !pIsNew && first.left != p {
		fatalf("arc %v does not start at the wall of %v", arc, p)
	}
	if last.right != nil && last.right.Point.Less(q.Point) {
		panic("walk ended before reaching the end of the arc")
	}
	if !qIsNew && last.right != q {
		fatalf("arc %v does not end at the wall of %v", arc, q)
	}

	// Validation is done. From here on, nothing can fail.

	edge := NewEdgeItem(he, nil)
	arc.item = edge

	var pItem, qItem *VertexItem
	var leftPiece, rightPiece *Trapezoid
	var fresh []*Trapezoid
	if pIsNew {
		pItem = NewVertexItem(p, first.bottom, first.top, nil)
		leftPiece = NewTrapezoid(first.left, p, first.bottom, first.top, nil)
		fresh = append(fresh, leftPiece)
	}
	if qIsNew {
		qItem = NewVertexItem(q, last.bottom, last.top, nil)
		rightPiece = NewTrapezoid(q, last.right, last.bottom, last.top, nil)
		fresh = append(fresh, rightPiece)
	}

	// The pieces keep the caller's half-edge, since its direction is what tells
	// inside from outside.
	s := he
	above := make([]*Trapezoid, len(crossed))
	below := make([]*Trapezoid, len(crossed))
	for j, t := range crossed {
		left, right := t.left, t.right
		if j == 0 {
			left = p
		}
		if j == k {
			right = q
		}
		wallAbove, wallBelow := false, false
		if j > 0 {
			if arc.Side(crossed[j-1].right.Point) > 0 {
				wallAbove = true
			} else {
				wallBelow = true
			}
		}
		if wallBelow {
			above[j] = above[j-1]
			above[j].right = right
		} else {
			above[j] = NewTrapezoid(left, right, s, t.top, nil)
			fresh = append(fresh, above[j])
		}
		if wallAbove {
			below[j] = below[j-1]
			below[j].right = right
		} else {
			below[j] = NewTrapezoid(left, right, t.bottom, s, nil)
			fresh = append(fresh, below[j])
		}
	}

	relink(fresh, crossed)

	for _, t := range fresh {
		newLeaf(t)
	}
	for j, t := range crossed {
		sub := newEdgeNode(edge, below[j].DagNode(), above[j].DagNode())
		if j == k && qIsNew {
			sub = newVertexNode(qItem, sub, rightPiece.DagNode())
		}
		if j == 0 && pIsNew {
			sub = newVertexNode(pItem, leftPiece.DagNode(), sub)
		}
		node := t.DagNode()
		t.retire()
		node.forward(sub)
	}

	// The walls s cut now end at s
	for _, t := range crossed[:k] {
		v := t.right
		if arc.Side(v.Point) > 0 {
			v.item.SetBottom(s)
		} else {
			v.item.SetTop(s)
		}
	}
	if pIsNew {
		p.item = pItem
	}
	if qIsNew {
		q.item = qItem
	}
	d.arrangement.attach(arc)

	update := &Update{}
	for _, t := range fresh {
		update.Created = append(update.Created, t)
	}
	update.Created = append(update.Created, edge)
	if pIsNew {
		update.Created = append(update.Created, pItem)
	}
	if qIsNew {
		update.Created = append(update.Created, qItem)
	}
	for _, t := range crossed {
		update.Retired = append(update.Retired, t)
	}

	d.log.Debug("inserted arc",
		slog.Any("edge", dbg.LogName(edge)),
		slog.Any("arc", arc),
		slog.Int("crossed", len(crossed)),
		slog.Int("created", len(fresh)),
	)
	return update
}
