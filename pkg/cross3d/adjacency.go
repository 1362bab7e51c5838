package cross3d

import (
	"container/list"
	"math"

	"github.com/chazu/cross3d/pkg/geom"
)

// zOverlapTolerance is the micron slack two prisms' z-ranges are expanded by
// before testing overlap for a vertical (UP/DOWN) adjacency.
const zOverlapTolerance geom.Coord = 10

// triangleOverlapTolerance is the squared-micron tolerance used to decide
// whether two triangles' footprints overlap "enough" to be vertical
// neighbors: the smaller triangle's full area must be covered, within this
// slack, by the intersection.
const triangleOverlapTolerance = 100.0

// edgeOverlapTolerance is the minimum projected-overlap length, in microns,
// for two in-plane (LEFT/RIGHT) edges to count as touching.
const edgeOverlapTolerance geom.Coord = 10

// initialConnection links before and after as immediate neighbors along
// dir, and wires their Link.Reverse pointers to each other. Used only when
// connecting fresh sibling cells created by the same Subdivide call, where
// there is exactly one link on each side.
func initialConnection(before, after *Cell, dir Direction) {
	beforeList := before.AdjacentCells[dir]
	afterList := after.AdjacentCells[dir.Opposite()]

	beforeEl := beforeList.PushFront(&Link{ToIndex: after.Index})
	afterEl := afterList.PushFront(&Link{ToIndex: before.Index})

	beforeEl.Value.(*Link).Reverse = afterEl
	afterEl.Value.(*Link).Reverse = beforeEl
}

// isNextTo reports whether cells a and b should be considered adjacent
// along side, using a's prism and b's prism. For UP/DOWN this is a z-range
// overlap test followed by a footprint-overlap-area test; for LEFT/RIGHT the
// two z-ranges must share a positive length, followed by a collinearity and
// projected-overlap test on the curve's from/to edges.
func isNextTo(a, b *Cell, side Direction) bool {
	switch side {
	case Up, Down:
		if !a.Prism.ZRange.Overlap(b.Prism.ZRange.Expanded(zOverlapTolerance)) {
			return false
		}
		aPoly := a.Prism.Triangle.ToPolygon()
		bPoly := b.Prism.Triangle.ToPolygon()
		aArea := aPoly.Area()
		bArea := bPoly.Area()
		intersectionArea := geom.IntersectionArea(aPoly, bPoly)
		smaller := math.Min(aArea, bArea)
		return math.Abs(intersectionArea-smaller) < triangleOverlapTolerance

	case Left, Right:
		if a.Prism.ZRange.Intersection(b.Prism.ZRange).Size() <= 0 {
			return false
		}
		var aEdge, bEdge geom.LineSegment
		if side == Left {
			aEdge = a.Prism.Triangle.GetFromEdge()
			bEdge = b.Prism.Triangle.GetToEdge()
		} else {
			aEdge = a.Prism.Triangle.GetToEdge()
			bEdge = b.Prism.Triangle.GetFromEdge()
		}
		if !geom.AreCollinear(aEdge, bEdge) {
			return false
		}
		aVec := aEdge.Vector()
		aSize := aVec.Size()
		if aSize == 0 {
			return false
		}
		aProjected := geom.Range{Min: 0, Max: aSize}
		bProjected := geom.NewRange().
			Include(geom.Coord(bEdge.From.Sub(aEdge.From).Dot(aVec) / int64(aSize))).
			Include(geom.Coord(bEdge.To.Sub(aEdge.From).Dot(aVec) / int64(aSize)))
		return aProjected.Intersection(bProjected).Size() > edgeOverlapTolerance

	default:
		return false
	}
}

// Subdivide splits cell into its already-allocated children (tree.createTree
// pre-allocates the whole arena up front, so this only wires adjacency, it
// does not create cells) and rewires the adjacency graph so the children,
// not the parent, carry the links to the outside world.
//
// Every existing neighbor link is replaced by 1 or 2 links to whichever
// children actually border that neighbor (isNextTo decides), preserving the
// reverse-pairing invariant throughout. The parent's own adjacency lists are
// cleared at the end: an already-subdivided cell carries no links of its
// own, only its leaf descendants do.
func (t *Tree) Subdivide(cell *Cell) error {
	if cell.IsLeaf() {
		return &ConstructionError{CellIdx: cell.Index, Op: "subdivide", Reason: "cell has no children to wire"}
	}

	childLB := t.Cells[cell.Children[0]]
	childRB := t.Cells[cell.Children[1]]
	initialConnection(childLB, childRB, Right)

	if cell.ChildCount() == 4 {
		childLT := t.Cells[cell.Children[2]]
		childRT := t.Cells[cell.Children[3]]
		initialConnection(childLT, childRT, Right)
		initialConnection(childLB, childLT, Up)
		initialConnection(childRB, childRT, Up)
	}

	for side := Direction(0); side < numberOfSides; side++ {
		sideList := cell.AdjacentCells[side]
		for el := sideList.Front(); el != nil; el = el.Next() {
			neighbor := el.Value.(*Link)
			neighborCell := t.Cells[neighbor.ToIndex]
			neighboringEdgeLinks := neighborCell.AdjacentCells[side.Opposite()]

			for _, childIdx := range cell.Children {
				if childIdx < 0 {
					break
				}
				child := t.Cells[childIdx]
				if !isNextTo(child, neighborCell, side) {
					continue
				}

				outEl := child.AdjacentCells[side].PushFront(&Link{ToIndex: neighbor.ToIndex})
				inEl := neighboringEdgeLinks.InsertBefore(&Link{ToIndex: childIdx}, neighbor.Reverse)

				outEl.Value.(*Link).Reverse = inEl
				inEl.Value.(*Link).Reverse = outEl
			}

			neighboringEdgeLinks.Remove(neighbor.Reverse)
		}
		cell.AdjacentCells[side] = list.New()
	}

	cell.IsSubdivided = true
	return nil
}

// canSubdivide reports whether cell is eligible to be split further: not
// already at max depth, and not held back by a more coarsely divided
// neighbor (isConstrained).
func (t *Tree) canSubdivide(cell *Cell) bool {
	if cell.Depth >= t.MaxDepth {
		return false
	}
	return !t.isConstrained(cell)
}

// isConstrained reports whether any neighbor of cell is shallower than
// cell: the one-level balance invariant forbids subdividing further until
// that neighbor catches up.
func (t *Tree) isConstrained(cell *Cell) bool {
	for _, side := range cell.AdjacentCells {
		for el := side.Front(); el != nil; el = el.Next() {
			neighbor := el.Value.(*Link)
			if t.isConstrainedBy(cell, t.Cells[neighbor.ToIndex]) {
				return true
			}
		}
	}
	return false
}

// isConstrainedBy reports whether constrainer holds constrainee back from
// subdividing: true exactly when constrainer is shallower.
func (t *Tree) isConstrainedBy(constrainee, constrainer *Cell) bool {
	return constrainer.Depth < constrainee.Depth
}
