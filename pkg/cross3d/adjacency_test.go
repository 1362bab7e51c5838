package cross3d_test

import (
	"testing"

	"github.com/chazu/cross3d/pkg/cross3d"
	"github.com/chazu/cross3d/pkg/density"
)

// firstSubdividableLeaf returns the index of the shallowest current leaf of
// the adjacency graph that Subdivide can split (not yet subdivided, with
// children in the arena), searching breadth-first from the two top-level
// cells so the result is deterministic across runs.
func firstSubdividableLeaf(t *testing.T, tree *cross3d.Tree) int {
	t.Helper()
	root := tree.Cells[0]
	queue := []int{root.Children[0], root.Children[1]}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		cell := tree.Cells[idx]
		if !cell.IsSubdivided && !cell.IsLeaf() {
			return idx
		}
		for _, c := range cell.Children {
			if c >= 0 {
				queue = append(queue, c)
			}
		}
	}
	t.Fatal("tree has no leaf cells")
	return -1
}

func TestSubdivideKeepsLinkPairingInvariant(t *testing.T) {
	tree, err := cross3d.New(cubeAABB(10), 5, 400, density.Constant(0.5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	idx := firstSubdividableLeaf(t, tree)
	if err := tree.Subdivide(tree.Cells[idx]); err != nil {
		t.Fatalf("Subdivide: %v", err)
	}

	for _, f := range cross3d.CheckInvariants(tree) {
		if f.Severity == cross3d.SeverityError {
			t.Errorf("invariant violated after Subdivide: %v", f)
		}
	}

	if !tree.Cells[idx].IsSubdivided {
		t.Fatal("expected cell to be marked subdivided")
	}
	for side, list := range tree.Cells[idx].AdjacentCells {
		if list.Len() != 0 {
			t.Errorf("subdivided cell still carries links on side %d, want none (links moved to children)", side)
		}
	}
}

func TestSubdivideGivesChildrenOutsideNeighbors(t *testing.T) {
	tree, err := cross3d.New(cubeAABB(10), 5, 400, density.Constant(0.5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	root := tree.Cells[0]
	first, second := root.Children[0], root.Children[1]

	// Subdividing the sentinel root makes the two top-level cells RIGHT/LEFT
	// neighbors of each other; subdividing one of them should then hand that
	// link off to whichever of its children actually borders the other cell.
	if err := tree.Subdivide(root); err != nil {
		t.Fatalf("Subdivide(root): %v", err)
	}
	if err := tree.Subdivide(tree.Cells[first]); err != nil {
		t.Fatalf("Subdivide: %v", err)
	}

	firstCell := tree.Cells[first]
	foundOutsideLink := false
	for _, childIdx := range firstCell.Children {
		if childIdx < 0 {
			continue
		}
		child := tree.Cells[childIdx]
		for el := child.AdjacentCells[cross3d.Right].Front(); el != nil; el = el.Next() {
			if el.Value.(*cross3d.Link).ToIndex == second {
				foundOutsideLink = true
			}
		}
	}
	if !foundOutsideLink {
		t.Errorf("expected at least one child of cell %d to inherit a RIGHT link to cell %d", first, second)
	}
}

func TestCanSubdivideRespectsMaxDepth(t *testing.T) {
	tree, err := cross3d.New(cubeAABB(10), 1, 400, density.Constant(0.9))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	root := tree.Cells[0]
	for _, idx := range root.Children[:2] {
		if err := tree.Subdivide(tree.Cells[idx]); err == nil {
			t.Errorf("expected Subdivide to fail or be avoided at max depth for cell %d", idx)
		}
	}
}
