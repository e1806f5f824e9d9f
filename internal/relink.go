package internal

// Both insertion and removal replace a connected set of trapezoids with a new
// set covering the same region. Rather than patch neighbor lists piece by piece
// (which is where the triangulation code used to spend most of its special
// cases), we rebuild the links of the fresh trapezoids from scratch.
//
// Two trapezoids are corner neighbors exactly when one's right wall is the
// other's left wall and they share the arc along that corner. So we index every
// candidate by (wall vertex, arc) on each side and look the fresh trapezoids up.
// The candidates are the fresh trapezoids themselves plus the surviving
// trapezoids that bordered the retired ones.

type wallKey struct {
	v   *Vertex
	arc *Arc // nil for an unbounded side
}

func arcOf(he *Halfedge) *Arc {
	if he == nil {
		return nil
	}
	return he.arc
}

func relink(fresh, retired []*Trapezoid) {
	dead := make(map[*Trapezoid]struct{}, len(retired))
	for _, t := range retired {
		dead[t] = struct{}{}
	}

	// Survivors that bordered the retired region lose their links into it
	var outside []*Trapezoid
	for _, t := range retired {
		for _, neighbor := range t.Neighbors() {
			if neighbor == nil {
				continue
			}
			if _, ok := dead[neighbor]; ok {
				continue
			}
			outside = append(outside, neighbor)
			for _, slot := range neighbor.neighborSlots() {
				if _, ok := dead[*slot]; ok {
					*slot = nil
				}
			}
		}
	}
	for _, t := range retired {
		t.clearNeighbors()
	}

	rightTop := map[wallKey]*Trapezoid{}
	rightBottom := map[wallKey]*Trapezoid{}
	leftTop := map[wallKey]*Trapezoid{}
	leftBottom := map[wallKey]*Trapezoid{}
	index := func(t *Trapezoid) {
		if t.right != nil {
			rightTop[wallKey{t.right, arcOf(t.top)}] = t
			rightBottom[wallKey{t.right, arcOf(t.bottom)}] = t
		}
		if t.left != nil {
			leftTop[wallKey{t.left, arcOf(t.top)}] = t
			leftBottom[wallKey{t.left, arcOf(t.bottom)}] = t
		}
	}
	for _, t := range outside {
		index(t)
	}
	for _, t := range fresh {
		index(t)
	}

	for _, t := range fresh {
		if t.left != nil {
			if u := rightTop[wallKey{t.left, arcOf(t.top)}]; u != nil {
				t.upperLeft, u.upperRight = u, t
			}
			if u := rightBottom[wallKey{t.left, arcOf(t.bottom)}]; u != nil {
				t.lowerLeft, u.lowerRight = u, t
			}
		}
		if t.right != nil {
			if u := leftTop[wallKey{t.right, arcOf(t.top)}]; u != nil {
				t.upperRight, u.upperLeft = u, t
			}
			if u := leftBottom[wallKey{t.right, arcOf(t.bottom)}]; u != nil {
				t.lowerRight, u.lowerLeft = u, t
			}
		}
	}

	// Each arc remembers the trapezoids on either side of its left end
	for _, t := range fresh {
		if t.bottom != nil && t.left == t.bottom.arc.Left {
			t.bottom.arc.item.above = t
		}
		if t.top != nil && t.left == t.top.arc.Left {
			t.top.arc.item.below = t
		}
	}
}
