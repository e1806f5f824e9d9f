package internal

import (
	"github.com/pkg/errors"
)

type Stats struct {
	Trapezoids int
	Vertices   int
	Arcs       int
	DagNodes   int
	DagDepth   int
}

func (d *Decomposition) Stats() Stats {
	stats := Stats{
		Vertices: d.arrangement.NumVertices(),
		Arcs:     d.arrangement.NumArcs(),
		DagDepth: d.root.Depth(),
	}
	for node := range d.root.All() {
		stats.DagNodes++
		if node.IsLeaf() {
			stats.Trapezoids++
		}
	}
	return stats
}

// Check the structural invariants of the decomposition. This walks everything,
// so it is for tests and tooling, not for use after every operation.
//
//   - The DAG is acyclic, every internal node has two children, a retired
//     trapezoid's node forwards both children to the same place, and exactly the
//     leaves own active trapezoids, which point back at them.
//   - Neighbor links only point at live trapezoids, and are reciprocal: if B is
//     A's upper right neighbor, then A is B's upper left neighbor, they share
//     the wall between them, and they share the top arc. Likewise for the
//     lower corners.
//   - Every wall vertex's top and bottom are the arcs that bound its wall.
//   - Every live arc knows the trapezoids at its left end.
func (d *Decomposition) Validate() error {
	live := map[*Trapezoid]struct{}{}
	if err := validateDag(d.root, live); err != nil {
		return err
	}

	for t := range live {
		if err := validateNeighbors(t, live); err != nil {
			return err
		}
		if err := validateWalls(t); err != nil {
			return err
		}
	}

	for arc := range d.arrangement.Arcs() {
		edge := arc.item
		if edge == nil || !edge.IsActive() {
			return errors.Errorf("arc %v has no active edge item", arc)
		}
		if _, ok := live[edge.above]; !ok || !sameArc(edge.above.bottom, edge.halfedge) || edge.above.left != arc.Left {
			return errors.Errorf("arc %v has a stale trapezoid above it", arc)
		}
		if _, ok := live[edge.below]; !ok || !sameArc(edge.below.top, edge.halfedge) || edge.below.left != arc.Left {
			return errors.Errorf("arc %v has a stale trapezoid below it", arc)
		}
	}
	return nil
}

func validateDag(root *DagNode, live map[*Trapezoid]struct{}) error {
	const (
		visiting = 1
		done     = 2
	)
	state := map[*DagNode]int{}
	var visit func(node *DagNode) error
	visit = func(node *DagNode) error {
		switch state[node] {
		case visiting:
			return errors.Errorf("cycle through %v", node.item)
		case done:
			return nil
		}
		state[node] = visiting

		t, isTrapezoid := node.item.(*Trapezoid)
		if node.IsLeaf() {
			if !isTrapezoid || !t.IsActive() {
				return errors.Errorf("leaf owns %v", node.item)
			}
			if t.DagNode() != node {
				return errors.Errorf("%v does not point back at its leaf", t)
			}
			live[t] = struct{}{}
		} else {
			if node.children[1] == nil {
				return errors.Errorf("node for %v has one child", node.item)
			}
			if isTrapezoid {
				if t.IsActive() {
					return errors.Errorf("internal node owns active %v", t)
				}
				if node.children[0] != node.children[1] {
					return errors.Errorf("retired %v does not forward to a single node", t)
				}
			}
			for _, child := range node.children {
				if err := visit(child); err != nil {
					return err
				}
			}
		}

		state[node] = done
		return nil
	}
	return visit(root)
}

func validateNeighbors(t *Trapezoid, live map[*Trapezoid]struct{}) error {
	for _, neighbor := range t.Neighbors() {
		if neighbor == nil {
			continue
		}
		if _, ok := live[neighbor]; !ok {
			return errors.Errorf("%v links to dead trapezoid %v", t, neighbor)
		}
	}
	if u := t.upperRight; u != nil && (u.upperLeft != t || u.left != t.right || !sameArc(u.top, t.top)) {
		return errors.Errorf("upper right link from %v to %v is not reciprocal", t, u)
	}
	if u := t.lowerRight; u != nil && (u.lowerLeft != t || u.left != t.right || !sameArc(u.bottom, t.bottom)) {
		return errors.Errorf("lower right link from %v to %v is not reciprocal", t, u)
	}
	if u := t.upperLeft; u != nil && (u.upperRight != t || u.right != t.left || !sameArc(u.top, t.top)) {
		return errors.Errorf("upper left link from %v to %v is not reciprocal", t, u)
	}
	if u := t.lowerLeft; u != nil && (u.lowerRight != t || u.right != t.left || !sameArc(u.bottom, t.bottom)) {
		return errors.Errorf("lower left link from %v to %v is not reciprocal", t, u)
	}
	return nil
}

// A trapezoid's walls must reach its top and bottom arcs, unless the wall's
// vertex is an endpoint of that arc.
func validateWalls(t *Trapezoid) error {
	for _, v := range [2]*Vertex{t.left, t.right} {
		if v == nil {
			continue
		}
		if v.item == nil || !v.item.IsActive() {
			return errors.Errorf("%v is walled by a vertex that isn't in the decomposition", t)
		}
		if (t.top == nil || !t.top.arc.HasEndpoint(v)) && !sameArc(v.item.top, t.top) {
			return errors.Errorf("wall of %v does not end at the top of %v", v, t)
		}
		if (t.bottom == nil || !t.bottom.arc.HasEndpoint(v)) && !sameArc(v.item.bottom, t.bottom) {
			return errors.Errorf("wall of %v does not end at the bottom of %v", v, t)
		}
	}
	return nil
}
