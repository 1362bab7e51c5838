package density_test

import (
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/cross3d/pkg/density"
	"github.com/chazu/cross3d/pkg/geom"
)

func TestSDFProximityHighNearSurface(t *testing.T) {
	box, err := sdf.Box3D(v3.Vec{X: 10, Y: 10, Z: 10}, 0)
	if err != nil {
		t.Fatalf("sdf.Box3D: %v", err)
	}

	p := density.NewSDFProximity(box, 1.0)

	// Center of the box: far from the surface (distance ~5mm), well past the
	// 1mm falloff, so density should bottom out at MinDensity.
	center := geom.AABB3D{
		Min: geom.Point3{X: -500, Y: -500, Z: -500},
		Max: geom.Point3{X: 500, Y: 500, Z: 500},
	}
	if got := p.Density(center); got != p.MinDensity {
		t.Errorf("Density at box center = %v, want MinDensity %v", got, p.MinDensity)
	}

	// A query box straddling the surface near x=5 (the box's face) should
	// score at or near MaxDensity.
	nearSurface := geom.AABB3D{
		Min: geom.Point3{X: 4900, Y: -100, Z: -100},
		Max: geom.Point3{X: 5100, Y: 100, Z: 100},
	}
	if got := p.Density(nearSurface); got < p.MaxDensity-0.01 {
		t.Errorf("Density near surface = %v, want near MaxDensity %v", got, p.MaxDensity)
	}
}

func TestSDFProximityZeroFalloffIsStepFunction(t *testing.T) {
	box, err := sdf.Box3D(v3.Vec{X: 10, Y: 10, Z: 10}, 0)
	if err != nil {
		t.Fatalf("sdf.Box3D: %v", err)
	}
	p := density.NewSDFProximity(box, 0)

	far := geom.AABB3D{
		Min: geom.Point3{X: -500, Y: -500, Z: -500},
		Max: geom.Point3{X: 500, Y: 500, Z: 500},
	}
	if got := p.Density(far); got != p.MinDensity {
		t.Errorf("zero-falloff Density off-surface = %v, want MinDensity", got)
	}
}
