package cross3d

import (
	"container/list"

	"github.com/chazu/cross3d/pkg/geom"
)

// SliceWalker holds a horizontal sequence of leaf cells, ordered left to
// right along the space-filling curve, all currently valid at some z
// height. AdvanceSequence mutates it in place to become valid at a new,
// higher z height.
type SliceWalker struct {
	sequence *list.List // of int cell index
}

// Sequence returns the walker's current cell indices, left to right.
func (w *SliceWalker) Sequence() []int {
	out := make([]int, 0, w.sequence.Len())
	for el := w.sequence.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(int))
	}
	return out
}

// GetBottomSequence returns the walker positioned at the tree's lowest
// slice: descend along child 0 until a leaf is reached, then walk RIGHT
// links until there are none left.
func (t *Tree) GetBottomSequence() *SliceWalker {
	w := &SliceWalker{sequence: list.New()}

	lastIdx := 0
	last := t.Cells[lastIdx]
	for last.IsSubdivided {
		lastIdx = last.Children[0]
		last = t.Cells[lastIdx]
	}

	w.sequence.PushBack(lastIdx)
	for {
		rightList := last.AdjacentCells[Right]
		if rightList.Len() == 0 {
			break
		}
		lastIdx = rightList.Front().Value.(*Link).ToIndex
		last = t.Cells[lastIdx]
		w.sequence.PushBack(lastIdx)
	}

	return w
}

// AdvanceSequence mutates walker so every cell in its sequence has a
// z-range reaching at least newZ, replacing any cell that has fallen below
// newZ with its UP neighbors. A cell can have more than one UP neighbor
// (its footprint may have been split more finely above), and two adjacent
// cells being replaced can share an UP neighbor, so a duplicate is skipped
// rather than reinserted.
//
// This may need more than one pass, since an inserted UP neighbor can
// itself already be below newZ if newZ jumps by more than one z-level; the
// outer loop repeats until every cell in the sequence clears newZ. A pass
// that inserts nothing for a stale cell logs a warning: it means the tree
// was built too coarse for the layer height requested. A stale cell with no
// UP neighbor at all cannot advance: the walker is restored to the sequence
// it held when the call began, a warning is logged, and the call returns.
func (t *Tree) AdvanceSequence(walker *SliceWalker, newZ geom.Coord) {
	original := walker.Sequence()
	for {
		beyond := true
		for el := walker.sequence.Front(); el != nil; {
			idx := el.Value.(int)
			cell := t.Cells[idx]
			next := el.Next()

			if cell.Prism.ZRange.Max >= newZ {
				el = next
				continue
			}

			var beforeIdx, afterIdx = -1, -1
			if prev := el.Prev(); prev != nil {
				beforeIdx = prev.Value.(int)
			}
			if next != nil {
				afterIdx = next.Value.(int)
			}

			neighborsAbove := cell.AdjacentCells[Up]
			if neighborsAbove.Len() == 0 {
				log.Warn("slice walker cell has no upstairs neighbor; walker left unchanged")
				walker.sequence.Init()
				for _, origIdx := range original {
					walker.sequence.PushBack(origIdx)
				}
				return
			}
			insertedSomething := false
			for above := neighborsAbove.Front(); above != nil; above = above.Next() {
				aboveIdx := above.Value.(*Link).ToIndex
				if aboveIdx == beforeIdx || aboveIdx == afterIdx {
					continue
				}
				walker.sequence.InsertBefore(aboveIdx, el)
				insertedSomething = true
			}
			if !insertedSomething {
				log.Warn("slice walker cell has no new upstairs neighbors to advance to")
			}

			toRemove := el
			el = next
			walker.sequence.Remove(toRemove)
		}

		for el := walker.sequence.Front(); el != nil; el = el.Next() {
			cell := t.Cells[el.Value.(int)]
			if cell.Prism.ZRange.Max < newZ {
				beyond = false
				log.Warn("layer height exceeds prism thickness in cross3d pattern; increase max depth or coarsen layers")
				break
			}
		}
		if beyond {
			return
		}
	}
}

// GenerateSierpinski walks the sequence left to right, returning the
// polyline through each cell's triangle centroid: the Sierpinski-like
// infill line for one horizontal slice at the walker's current z height.
func (t *Tree) GenerateSierpinski(walker *SliceWalker) geom.Polygon {
	poly := make(geom.Polygon, 0, walker.sequence.Len())
	for el := walker.sequence.Front(); el != nil; el = el.Next() {
		cell := t.Cells[el.Value.(int)]
		poly = append(poly, cell.Prism.Triangle.GetMiddle())
	}
	return poly
}
