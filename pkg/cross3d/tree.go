package cross3d

import (
	"fmt"
	"time"

	"github.com/chazu/cross3d/pkg/geom"
	"github.com/sirupsen/logrus"

	"github.com/chazu/cross3d/internal/logging"
)

// DensityProvider supplies the target density, conceptually in [0, 1], for
// an axis-aligned region of the part. It is a pure function, called only
// while constructing the tree's required-density allowance.
// Implementations live in package density; this interface is defined here,
// next to its only caller, so density has no dependency on cross3d.
type DensityProvider interface {
	Density(box geom.AABB3D) float64
}

// Tree is the populated cell arena plus the construction parameters it was
// built from. The arena is the single owner of cells: all cross-references
// are integer indices into Cells, never pointers, because the arena slice
// grows (and may be reallocated) while createTree builds it. Subdivide adds
// no cells.
type Tree struct {
	Cells []*Cell

	AABB      geom.AABB3D
	MaxDepth  int
	LineWidth geom.Coord
	Density   DensityProvider

	log *logrus.Entry
}

var log = logging.For("cross3d")

// New builds a Cross3D tree over aabb, recursing to at most maxDepth, using
// density to assign each leaf's minimally required density. lineWidth is
// the nominal extrusion width used later by the density policy's
// actualized-volume estimate.
func New(aabb geom.AABB3D, maxDepth int, lineWidth geom.Coord, density DensityProvider) (*Tree, error) {
	if maxDepth < 1 {
		return nil, fmt.Errorf("cross3d: max_depth must be >= 1, got %d", maxDepth)
	}
	if aabb.Max.X <= aabb.Min.X || aabb.Max.Y <= aabb.Min.Y || aabb.Max.Z <= aabb.Min.Z {
		return nil, fmt.Errorf("cross3d: degenerate aabb %+v", aabb)
	}
	if density == nil {
		return nil, fmt.Errorf("cross3d: density provider must not be nil")
	}

	t := &Tree{
		AABB:      aabb,
		MaxDepth:  maxDepth,
		LineWidth: lineWidth,
		Density:   density,
		log:       log,
	}

	start := time.Now()
	t.createTree()
	t.log.WithFields(logrus.Fields{
		"cells":     len(t.Cells),
		"max_depth": maxDepth,
		"took_ms":   time.Since(start).Milliseconds(),
	}).Info("built cross3d tree")

	if findings := CheckInvariants(t); hasSeverityError(findings) {
		t.log.WithField("findings", len(findings)).Error("cross3d tree failed invariant checks after construction")
	}

	return t, nil
}

// root always lives at index 0. It is a sentinel: it holds no valid prism,
// only the aggregate density stats for the whole tree.
func (t *Tree) root() *Cell {
	return t.Cells[0]
}

// addCell appends a new cell to the arena and returns its index. Appending
// may grow the backing slice, but Cells holds pointers, so no existing
// *Cell is invalidated.
func (t *Tree) addCell(prism Prism, depth int) int {
	idx := len(t.Cells)
	t.Cells = append(t.Cells, newCell(prism, idx, depth))
	return idx
}

// createTree populates the arena: a depth-0 sentinel root, and two real
// depth-1 cells splitting the aabb's xy footprint along its diagonal so
// that together they host a closed Sierpinski curve.
func (t *Tree) createTree() {
	t.Cells = make([]*Cell, 0, 2<<(uint(t.MaxDepth)/2))

	rootIdx := t.addCell(Prism{}, 0)
	rootSize := t.AABB.Size()
	root := t.Cells[rootIdx]
	root.Volume = geom.IntToMM(rootSize.X) * geom.IntToMM(rootSize.Y) * geom.IntToMM(rootSize.Z)

	footprint := t.AABB.Flatten()

	firstTriangle := Triangle{
		StraightCorner:       geom.Point{X: footprint.Min.X, Y: footprint.Max.Y},
		A:                    footprint.Min,
		B:                    footprint.Max,
		Dir:                  ACtoAB,
		StraightCornerIsLeft: true,
	}
	firstPrism := Prism{Triangle: firstTriangle, ZRange: geom.Range{Min: t.AABB.Min.Z, Max: t.AABB.Max.Z}, IsExpanding: true}
	firstIdx := t.addCell(firstPrism, 1)
	root.Children[0] = firstIdx
	t.buildSubtree(firstIdx)
	t.setVolume(firstIdx)

	secondTriangle := Triangle{
		StraightCorner:       geom.Point{X: footprint.Max.X, Y: footprint.Min.Y},
		A:                    footprint.Max,
		B:                    footprint.Min,
		Dir:                  ABtoBC,
		StraightCornerIsLeft: true,
	}
	secondPrism := Prism{Triangle: secondTriangle, ZRange: geom.Range{Min: t.AABB.Min.Z, Max: t.AABB.Max.Z}, IsExpanding: true}
	secondIdx := t.addCell(secondPrism, 1)
	root.Children[1] = secondIdx
	t.buildSubtree(secondIdx)
	t.setVolume(secondIdx)

	t.setSpecificationAllowance(rootIdx)
}

// buildSubtree recursively populates descendants of the cell at idx, down
// to MaxDepth, alternating half-cube (2 children) and quarter-cube (4
// children) xy/z subdivisions.
func (t *Tree) buildSubtree(idx int) {
	parent := t.Cells[idx]
	if parent.Depth >= t.MaxDepth {
		return // Children already default to noChild.
	}

	parentPrism := parent.Prism
	childTriangles := parentPrism.Triangle.Subdivide()
	childCount := parentPrism.childCount()

	childZMin := parentPrism.ZRange.Min
	childZMax := parentPrism.ZRange.Max
	if childCount == 4 {
		childZMax = (parentPrism.ZRange.Min + parentPrism.ZRange.Max) / 2
	}

	for zIdx := 0; zIdx < 2; zIdx++ {
		if zIdx == childCount/2 {
			break // Only iterate a second z-half for quarter-cube prisms.
		}
		for xyIdx := 0; xyIdx < 2; xyIdx++ {
			childSlot := zIdx*2 + xyIdx

			isExpanding := parentPrism.IsExpanding
			if parentPrism.Triangle.Dir != ACtoBC && xyIdx == 1 {
				isExpanding = !isExpanding
			}
			if zIdx == 1 {
				isExpanding = !isExpanding
			}

			childPrism := Prism{
				Triangle:    childTriangles[xyIdx],
				ZRange:      geom.Range{Min: childZMin, Max: childZMax},
				IsExpanding: isExpanding,
			}
			childIdx := t.addCell(childPrism, parent.Depth+1)
			// Re-fetch parent: addCell cannot move *Cell, but re-reading
			// keeps this loop independent of whether Cells reallocated.
			t.Cells[idx].Children[childSlot] = childIdx
			t.buildSubtree(childIdx)
		}
		childZMin = childZMax
		childZMax = parentPrism.ZRange.Max
	}
}

// setVolume computes each cell's geometric volume in mm^3, post-order.
func (t *Tree) setVolume(idx int) {
	cell := t.Cells[idx]
	tri := cell.Prism.Triangle
	ac := tri.StraightCorner.Sub(tri.A)
	area := 0.5 * geom.IntToMM2(ac.Size2())
	cell.Volume = area * geom.IntToMM(cell.Prism.ZRange.Size())

	if cell.IsLeaf() {
		return
	}
	for _, childIdx := range cell.Children {
		if childIdx < 0 {
			break
		}
		t.setVolume(childIdx)
	}
}

// setSpecificationAllowance aggregates the density field into the tree,
// post-order: leaves ask the DensityProvider directly; inner cells take the
// sum of their children's FilledVolumeAllowance and the max of their
// children's MinimallyRequiredDensity.
func (t *Tree) setSpecificationAllowance(idx int) {
	cell := t.Cells[idx]
	if cell.IsLeaf() {
		requested := t.getDensity(cell)
		cell.MinimallyRequiredDensity = requested
		cell.FilledVolumeAllowance = cell.Volume * requested
		return
	}
	for _, childIdx := range cell.Children {
		if childIdx < 0 {
			break
		}
		t.setSpecificationAllowance(childIdx)
		child := t.Cells[childIdx]
		cell.FilledVolumeAllowance += child.FilledVolumeAllowance
		if child.MinimallyRequiredDensity > cell.MinimallyRequiredDensity {
			cell.MinimallyRequiredDensity = child.MinimallyRequiredDensity
		}
	}
}

// getDensity samples the density provider over the 2D bounding box of the
// cell's triangle corners, lifted to 3D with the prism's z-range, rather
// than the triangle's exact footprint: a density provider only needs a
// representative sampling region, not an exact one.
func (t *Tree) getDensity(cell *Cell) float64 {
	tri := cell.Prism.Triangle
	footprint := geom.NewAABB().Include(tri.StraightCorner).Include(tri.A).Include(tri.B)
	box := geom.AABB3D{
		Min: geom.Point3{X: footprint.Min.X, Y: footprint.Min.Y, Z: cell.Prism.ZRange.Min},
		Max: geom.Point3{X: footprint.Max.X, Y: footprint.Max.Y, Z: cell.Prism.ZRange.Max},
	}
	return t.Density.Density(box)
}

func hasSeverityError(findings []InvariantFinding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
