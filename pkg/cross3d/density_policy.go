package cross3d

import (
	"container/list"

	"github.com/chazu/cross3d/pkg/geom"
)

// CreateMinimalDensityPattern grows the tree from its two level-1 cells
// down towards leaves, subdividing whenever a cell's actualized line volume
// falls short of its minimally_required_density, while respecting the
// one-level balance invariant.
//
// The work queue is a FIFO of cell indices, but a cell that cannot be
// subdivided yet because a neighbor is coarser gets that neighbor
// re-enqueued at the FRONT of the queue, so the constraint that is blocking
// progress is resolved before the queue moves on to unrelated cells.
func (t *Tree) CreateMinimalDensityPattern() error {
	queue := list.New()
	queue.PushBack(0) // The sentinel root always starts the walk.

	for queue.Len() > 0 {
		front := queue.Front()
		idx := front.Value.(int)
		cell := t.Cells[idx]

		if cell.IsLeaf() || cell.Depth >= t.MaxDepth || cell.IsSubdivided {
			queue.Remove(front)
			continue
		}

		if t.canSubdivide(cell) {
			queue.Remove(front)
			if err := t.Subdivide(cell); err != nil {
				return err
			}
			for _, childIdx := range cell.Children {
				if childIdx < 0 {
					break
				}
				child := t.Cells[childIdx]
				if t.shouldBeSubdivided(child) {
					queue.PushBack(childIdx)
				}
			}
			continue
		}

		for _, side := range cell.AdjacentCells {
			for el := side.Front(); el != nil; el = el.Next() {
				neighbor := el.Value.(*Link)
				if t.isConstrainedBy(cell, t.Cells[neighbor.ToIndex]) {
					queue.PushFront(neighbor.ToIndex)
				}
			}
		}
	}

	return nil
}

// shouldBeSubdivided reports whether cell's current infill line, if drawn
// once through it at line_width, would fill less volume than the cell's
// minimally_required_density demands.
func (t *Tree) shouldBeSubdivided(cell *Cell) bool {
	return t.getActualizedVolume(cell)/cell.Volume < cell.MinimallyRequiredDensity
}

// getActualizedVolume estimates the volume a single infill line of
// line_width would fill while crossing cell, using the distance between the
// midpoints of the cell's entry and exit edges as the line's in-plane
// length.
func (t *Tree) getActualizedVolume(cell *Cell) float64 {
	tri := cell.Prism.Triangle
	acMiddle := geom.Midpoint(tri.A, tri.StraightCorner)
	bcMiddle := geom.Midpoint(tri.B, tri.StraightCorner)
	abMiddle := geom.Midpoint(tri.A, tri.B)

	var fromMiddle, toMiddle geom.Point
	switch tri.Dir {
	case ACtoAB:
		fromMiddle, toMiddle = acMiddle, abMiddle
	case ACtoBC:
		fromMiddle, toMiddle = acMiddle, bcMiddle
	case ABtoBC:
		fromMiddle, toMiddle = abMiddle, bcMiddle
	}

	lineLength := geom.IntToMM(fromMiddle.Sub(toMiddle).Size())
	height := geom.IntToMM(cell.Prism.ZRange.Size())
	return geom.IntToMM(t.LineWidth) * lineLength * height
}
