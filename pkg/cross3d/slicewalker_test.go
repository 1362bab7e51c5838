package cross3d_test

import (
	"testing"

	"github.com/chazu/cross3d/pkg/cross3d"
	"github.com/chazu/cross3d/pkg/density"
)

func TestGetBottomSequenceLeavesStartAtFloor(t *testing.T) {
	tree, err := cross3d.New(cubeAABB(10), 4, 400, density.Constant(0.4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := tree.CreateMinimalDensityPattern(); err != nil {
		t.Fatalf("CreateMinimalDensityPattern: %v", err)
	}

	walker := tree.GetBottomSequence()
	seq := walker.Sequence()
	if len(seq) == 0 {
		t.Fatal("expected a non-empty bottom sequence")
	}
	for _, idx := range seq {
		cell := tree.Cells[idx]
		if !cell.IsLeaf() {
			t.Errorf("cell %d in bottom sequence is not a leaf", idx)
		}
		if cell.Prism.ZRange.Min != tree.AABB.Min.Z {
			t.Errorf("cell %d in bottom sequence does not start at the tree's floor", idx)
		}
	}
}

func TestGenerateSierpinskiOneVertexPerCell(t *testing.T) {
	tree, err := cross3d.New(cubeAABB(10), 4, 400, density.Constant(0.4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	walker := tree.GetBottomSequence()
	poly := tree.GenerateSierpinski(walker)
	if len(poly) != len(walker.Sequence()) {
		t.Fatalf("GenerateSierpinski produced %d vertices, want %d (one per sequence cell)", len(poly), len(walker.Sequence()))
	}
}

func TestAdvanceSequenceClearsNewHeight(t *testing.T) {
	tree, err := cross3d.New(cubeAABB(10), 5, 400, density.Constant(0.8))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := tree.CreateMinimalDensityPattern(); err != nil {
		t.Fatalf("CreateMinimalDensityPattern: %v", err)
	}

	walker := tree.GetBottomSequence()
	newZ := tree.AABB.Min.Z + tree.AABB.Size().Z/2

	tree.AdvanceSequence(walker, newZ)

	for _, idx := range walker.Sequence() {
		cell := tree.Cells[idx]
		if cell.Prism.ZRange.Max < newZ {
			t.Errorf("cell %d still below requested height %d after AdvanceSequence", idx, newZ)
		}
	}
}
