package raster_test

import (
	"testing"

	"github.com/chazu/cross3d/pkg/cross3d"
	"github.com/chazu/cross3d/pkg/debugsvg/raster"
	"github.com/chazu/cross3d/pkg/density"
	"github.com/chazu/cross3d/pkg/geom"
)

func testAABB(sizeMM float64) geom.AABB3D {
	size := geom.Coord(sizeMM * 1e3)
	return geom.AABB3D{Min: geom.Point3{}, Max: geom.Point3{X: size, Y: size, Z: size}}
}

func TestRenderProducesImageOfRequestedSize(t *testing.T) {
	tree, err := cross3d.New(testAABB(10), 3, 400, density.Constant(0.3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	img := raster.Render(tree, 200, 150)
	bounds := img.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 150 {
		t.Errorf("Render image bounds = %v, want 200x150", bounds)
	}
}
