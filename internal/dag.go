package internal

import "iter"

// The history DAG is the search structure. Every node owns exactly one map
// item and has either no children (a leaf, owning an active trapezoid) or two:
//
//   - A vertex node routes to its left or right child depending on which side
//     of the vertex's wall a point is on.
//   - An edge node routes below or above its arc.
//   - A trapezoid node whose trapezoid was retired forwards through both
//     children to the subtree that replaced it. Nodes are never unlinked, so
//     every historic trapezoid stays reachable and tells you what the region
//     used to be.
//
// The DAG only ever grows. The root is fixed for the life of the
// decomposition; it starts as a leaf holding the single unbounded trapezoid.
type DagNode struct {
	item     MapItem
	children [2]*DagNode
}

const (
	leftChild  = 0
	rightChild = 1
	belowChild = 0
	aboveChild = 1
)

func newLeaf(t *Trapezoid) *DagNode {
	node := &DagNode{item: t}
	t.SetDagNode(node)
	return node
}

func newVertexNode(vi *VertexItem, left, right *DagNode) *DagNode {
	node := &DagNode{item: vi, children: [2]*DagNode{left, right}}
	if vi.DagNode() == nil {
		vi.SetDagNode(node)
	}
	return node
}

func newEdgeNode(e *EdgeItem, below, above *DagNode) *DagNode {
	node := &DagNode{item: e, children: [2]*DagNode{below, above}}
	if e.DagNode() == nil {
		e.SetDagNode(node)
	}
	return node
}

// Replace a leaf's trapezoid with the structure that supersedes it. The leaf
// keeps its (now retired) item.
func (n *DagNode) forward(to *DagNode) {
	n.children = [2]*DagNode{to, to}
}

func (n *DagNode) Item() MapItem {
	return n.item
}

func (n *DagNode) IsLeaf() bool {
	return n.children[0] == nil
}

func (n *DagNode) Children() []*DagNode {
	if n.IsLeaf() {
		return nil
	}
	return n.children[:]
}

// Every node reachable from n, each exactly once. Order is not defined, and the
// graph must not be modified during iteration.
func (n *DagNode) All() iter.Seq[*DagNode] {
	return func(yield func(*DagNode) bool) {
		stack := []*DagNode{n}
		seen := map[*DagNode]struct{}{}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, ok := seen[node]; ok {
				continue
			}
			seen[node] = struct{}{}
			if !yield(node) {
				return
			}
			stack = append(stack, node.Children()...)
		}
	}
}

// Active trapezoids at the leaves below n
func (n *DagNode) Trapezoids() iter.Seq[*Trapezoid] {
	return func(yield func(*Trapezoid) bool) {
		for node := range n.All() {
			if t, ok := node.item.(*Trapezoid); ok && node.IsLeaf() {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Length of the longest root to leaf path, counting edges
func (n *DagNode) Depth() int {
	depths := map[*DagNode]int{}
	var depth func(*DagNode) int
	depth = func(node *DagNode) int {
		if node.IsLeaf() {
			return 0
		}
		if d, ok := depths[node]; ok {
			return d
		}
		d := 1 + max(depth(node.children[0]), depth(node.children[1]))
		depths[node] = d
		return d
	}
	return depth(n)
}

// Find the item that contains the point. The result is an active trapezoid if
// p is in a face, an active edge if p is on the interior of an arc, or an active
// vertex if p is a vertex. Retired items never end the search: ties at their
// nodes go right (vertex) or above (edge).
func (n *DagNode) FindPoint(p Point) MapItem {
	node := n
	for {
		switch item := node.item.(type) {
		case *Trapezoid:
			if item.IsActive() {
				return item
			}
			node = node.children[0]
		case *VertexItem:
			v := item.vertex.Point
			switch {
			case p == v && item.IsActive():
				return item
			case p.Less(v):
				node = node.children[leftChild]
			default:
				node = node.children[rightChild]
			}
		case *EdgeItem:
			arc := item.Arc()
			if item.IsActive() {
				if p == arc.Left.Point {
					return arc.Left.item
				}
				if p == arc.Right.Point {
					return arc.Right.item
				}
			}
			side := arc.Side(p)
			if side == 0 && item.IsActive() && strictlyBetween(arc.Left.Point, p, arc.Right.Point) {
				return item
			}
			if side < 0 {
				node = node.children[belowChild]
			} else {
				node = node.children[aboveChild]
			}
		}
	}
}

// Find the active trapezoid that the segment from→to starts in: the one
// containing points just right of from on the segment. The arc argument, if
// not nil, is the arc being inserted, and side says which side of it to take
// when its own edge node is met (which only happens once it is in the DAG).
//
// Failures here are precondition violations from the caller: from lying on the
// interior of an active arc, or the segment overlapping one.
func (n *DagNode) findSegmentStart(from, to Point, arc *Arc, side int) *Trapezoid {
	node := n
	for {
		switch item := node.item.(type) {
		case *Trapezoid:
			if item.IsActive() {
				return item
			}
			node = node.children[0]
		case *VertexItem:
			// On a tie, the segment leaves the vertex to the right.
			if from.Less(item.vertex.Point) {
				node = node.children[leftChild]
			} else {
				node = node.children[rightChild]
			}
		case *EdgeItem:
			node = node.children[segmentSide(item, from, to, arc, side)]
		}
	}
}

// Which child of an edge node the segment from→to continues through
func segmentSide(item *EdgeItem, from, to Point, arc *Arc, side int) int {
	other := item.Arc()
	if other == arc {
		return side
	}
	l, r := other.Left.Point, other.Right.Point
	var o int
	if from == l || from == r {
		// The segment shares an endpoint with the arc. Its other end says which
		// side it leaves on.
		o = Orientation(l, r, to)
		if o == 0 && item.IsActive() {
			fatalf("segment %v–%v overlaps arc %v", from, to, other)
		}
	} else {
		o = Orientation(l, r, from)
		if o == 0 {
			if item.IsActive() {
				fatalf("%v lies on arc %v", from, other)
			}
			o = Orientation(l, r, to)
		}
	}
	if o < 0 {
		return belowChild
	}
	return aboveChild
}
