package internal

import "iter"

// Walks the trapezoids crossed by the segment from→to, left to right, without
// leaving the face the walk starts in. The walk steps through the right wall of
// each trapezoid into its upper-right or lower-right neighbor, depending on
// which side of the segment the wall's vertex lies.
//
// It stops when:
//   - the current trapezoid reaches to (or is unbounded on the right),
//   - the segment would cross the current trapezoid's top or bottom arc, or
//   - the segment runs into the vertex of a wall.
//
// The last two mean the segment leaves the face, and Blocker reports the item
// in the way. Because the segment is x-monotone, no trapezoid is visited twice.
type InFaceIterator struct {
	start, current *Trapezoid
	from, to       Point
	blocker        MapItem
}

// from must come before to, and start must be the trapezoid the segment
// starts in.
func NewInFaceIterator(start *Trapezoid, from, to Point) *InFaceIterator {
	return &InFaceIterator{start: start, current: start, from: from, to: to}
}

// Next trapezoid, or nil once the walk is over.
func (it *InFaceIterator) Next() *Trapezoid {
	t := it.current
	if t == nil {
		return nil
	}
	for _, boundary := range [2]*Halfedge{t.bottom, t.top} {
		if boundary != nil && boundary.arc.meets(it.from, it.to) {
			it.blocker = boundary.arc.item
			it.current = nil
			return nil
		}
	}
	if t.right == nil || !t.right.Point.Less(it.to) {
		it.current = nil
		return t
	}
	switch Orientation(it.from, it.to, t.right.Point) {
	case 1:
		// The wall's vertex is above the segment, so we pass under it.
		it.current = t.lowerRight
	case -1:
		it.current = t.upperRight
	default:
		it.blocker = t.right.item
		it.current = nil
	}
	return t
}

// The item that ended the walk early, or nil.
func (it *InFaceIterator) Blocker() MapItem {
	return it.blocker
}

func (it *InFaceIterator) Reset() {
	it.current = it.start
	it.blocker = nil
}

// Restart the walk and yield every trapezoid in it
func (it *InFaceIterator) All() iter.Seq[*Trapezoid] {
	return func(yield func(*Trapezoid) bool) {
		it.Reset()
		for t := it.Next(); t != nil; t = it.Next() {
			if !yield(t) {
				return
			}
		}
	}
}

// Flood fill over neighbor links: every trapezoid of the face containing the
// start trapezoid, each once. Neighbor links never cross an arc, so the flood
// stays inside the face.
type FaceIterator struct {
	start *Trapezoid
	queue []*Trapezoid
	seen  map[*Trapezoid]struct{}
}

func NewFaceIterator(start *Trapezoid) *FaceIterator {
	it := &FaceIterator{start: start}
	it.Reset()
	return it
}

func (it *FaceIterator) Reset() {
	it.queue = []*Trapezoid{it.start}
	it.seen = map[*Trapezoid]struct{}{it.start: {}}
}

func (it *FaceIterator) Next() *Trapezoid {
	if len(it.queue) == 0 {
		return nil
	}
	t := it.queue[0]
	it.queue = it.queue[1:]
	for _, neighbor := range t.Neighbors() {
		if neighbor == nil {
			continue
		}
		if _, ok := it.seen[neighbor]; ok {
			continue
		}
		it.seen[neighbor] = struct{}{}
		it.queue = append(it.queue, neighbor)
	}
	return t
}

func (it *FaceIterator) All() iter.Seq[*Trapezoid] {
	return func(yield func(*Trapezoid) bool) {
		it.Reset()
		for t := it.Next(); t != nil; t = it.Next() {
			if !yield(t) {
				return
			}
		}
	}
}

type YDirection int

const (
	Down YDirection = iota
	Up
)

// Trapezoids met by a vertical ray from a point, in order along the ray. Each
// step crosses the current trapezoid's top (or bottom) arc and finds the
// trapezoid on the far side by walking the strip of trapezoids along that arc.
type StackIterator struct {
	first, current *Trapezoid
	x              float64
	direction      YDirection
}

func newStackIterator(first *Trapezoid, x float64, direction YDirection) *StackIterator {
	return &StackIterator{first: first, current: first, x: x, direction: direction}
}

func (it *StackIterator) Next() *Trapezoid {
	t := it.current
	if t == nil {
		return nil
	}
	boundary := t.top
	if it.direction == Down {
		boundary = t.bottom
	}
	if boundary == nil {
		it.current = nil
	} else {
		it.current = acrossArc(boundary.arc, it.x, it.direction)
	}
	return t
}

func (it *StackIterator) Reset() {
	it.current = it.first
}

func (it *StackIterator) All() iter.Seq[*Trapezoid] {
	return func(yield func(*Trapezoid) bool) {
		it.Reset()
		for t := it.Next(); t != nil; t = it.Next() {
			if !yield(t) {
				return
			}
		}
	}
}

// The trapezoid directly above (or below) the arc at x. The trapezoids along
// one side of an arc form a strip linked by lower-right (or upper-right)
// neighbors, starting from the one at the arc's left end.
func acrossArc(arc *Arc, x float64, direction YDirection) *Trapezoid {
	p := Point{x, arc.YAt(x)}
	if direction == Up {
		t := arc.item.above
		for t.right != arc.Right && !p.Less(t.right.Point) {
			t = t.lowerRight
		}
		return t
	}
	t := arc.item.below
	for t.right != arc.Right && !p.Less(t.right.Point) {
		t = t.upperRight
	}
	return t
}
