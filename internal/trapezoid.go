package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/trapmap/internal/dbg"
)

// A trapezoid is bounded on the left and right by the vertical walls through
// two vertices, and on the bottom and top by two arcs. Any of the four may be
// nil, meaning the trapezoid is unbounded on that side.
//
// Because of the lexicographic shear, walls never coincide, and a trapezoid
// has at most one neighbor on each corner of its walls:
//
//	         top
//	 ul +-----------+ ur
//	    |           |
//	left|           |right
//	    |           |
//	 ll +-----------+ lr
//	        bottom
//
// The upper-left neighbor shares the top arc and lies left of the left wall.
// The lower-left neighbor shares the bottom arc, and likewise on the right. A
// wall that ends at the top (or bottom) arc leaves that corner without a
// neighbor.
type Trapezoid struct {
	itemBase
	left, right *Vertex
	bottom, top *Halfedge

	lowerLeft, upperLeft, lowerRight, upperRight *Trapezoid
}

func NewTrapezoid(left, right *Vertex, bottom, top *Halfedge, node *DagNode) *Trapezoid {
	return &Trapezoid{
		itemBase: itemBase{node: node},
		left:     left,
		right:    right,
		bottom:   bottom,
		top:      top,
	}
}

func (t *Trapezoid) Left() *Vertex     { return t.left }
func (t *Trapezoid) Right() *Vertex    { return t.right }
func (t *Trapezoid) Bottom() *Halfedge { return t.bottom }
func (t *Trapezoid) Top() *Halfedge    { return t.top }

func (t *Trapezoid) LowerLeft() *Trapezoid  { return t.lowerLeft }
func (t *Trapezoid) UpperLeft() *Trapezoid  { return t.upperLeft }
func (t *Trapezoid) LowerRight() *Trapezoid { return t.lowerRight }
func (t *Trapezoid) UpperRight() *Trapezoid { return t.upperRight }

func (t *Trapezoid) SetBottom(he *Halfedge) {
	t.bottom = normalized(t.bottom, he)
}

func (t *Trapezoid) SetTop(he *Halfedge) {
	t.top = normalized(t.top, he)
}

func (t *Trapezoid) Kind() ItemKind {
	if t.retired {
		return KindInactiveTrapezoid
	}
	return KindActiveTrapezoid
}

// Neighbors in the order lower left, upper left, lower right, upper right
func (t *Trapezoid) Neighbors() [4]*Trapezoid {
	return [4]*Trapezoid{t.lowerLeft, t.upperLeft, t.lowerRight, t.upperRight}
}

func (t *Trapezoid) neighborSlots() [4]**Trapezoid {
	return [4]**Trapezoid{&t.lowerLeft, &t.upperLeft, &t.lowerRight, &t.upperRight}
}

func (t *Trapezoid) clearNeighbors() {
	for _, slot := range t.neighborSlots() {
		*slot = nil
	}
}

func (t *Trapezoid) IsUnbounded() bool {
	return t.left == nil || t.right == nil || t.bottom == nil || t.top == nil
}

// When the decomposition is built from polygons with solids wound
// counterclockwise and holes clockwise, a trapezoid is inside iff the arc
// below it runs left to right. Note that vertical arcs follow the same rule
// because of the lexicographic shear: upward is "left to right".
func (t *Trapezoid) IsInside() bool {
	return t.bottom != nil && t.bottom.Direction() == LeftToRight
}

// Does the trapezoid's lexicographic range between its walls contain p? This
// says nothing about the top and bottom.
func (t *Trapezoid) spans(p Point) bool {
	return (t.left == nil || t.left.Point.Less(p)) &&
		(t.right == nil || p.Less(t.right.Point))
}

// Does the trapezoid contain p in its interior?
func (t *Trapezoid) Contains(p Point) bool {
	return t.spans(p) &&
		(t.bottom == nil || t.bottom.arc.Side(p) > 0) &&
		(t.top == nil || t.top.arc.Side(p) < 0)
}

func (t *Trapezoid) String() string {
	return fmt.Sprintf("Trapezoid %s [%s] <L: %s, R: %s, B: %s, T: %s>",
		t.DbgName(),
		strings.Join(t.neighborNames(), ", "),
		describeVertex(t.left),
		describeVertex(t.right),
		describeHalfedge(t.bottom),
		describeHalfedge(t.top),
	)
}

func (t *Trapezoid) neighborNames() []string {
	var parts []string
	for _, neighbor := range t.Neighbors() {
		parts = append(parts, dbg.Name(neighbor))
	}
	return parts
}

func (t *Trapezoid) DbgName() string {
	name := dbg.Name(t)
	switch {
	case t.retired:
		return aurora.Magenta(name).String()
	case t.IsUnbounded():
		return aurora.Cyan(name).String()
	case t.left.Point.X == t.right.Point.X: // Zero width
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

func describeVertex(v *Vertex) string {
	if v == nil {
		return "Ø"
	}
	return v.Point.String()
}

func describeHalfedge(he *Halfedge) string {
	if he == nil {
		return "Ø"
	}
	return he.String()
}
