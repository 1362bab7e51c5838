package density_test

import (
	"testing"

	"github.com/chazu/cross3d/pkg/density"
	"github.com/chazu/cross3d/pkg/geom"
)

func TestConstantDensityIgnoresBox(t *testing.T) {
	c := density.Constant(0.42)

	boxes := []geom.AABB3D{
		{},
		{Min: geom.Point3{X: -1000, Y: -1000, Z: -1000}, Max: geom.Point3{X: 1000, Y: 1000, Z: 1000}},
	}
	for _, b := range boxes {
		if got := c.Density(b); got != 0.42 {
			t.Errorf("Constant(0.42).Density(%v) = %v, want 0.42", b, got)
		}
	}
}
