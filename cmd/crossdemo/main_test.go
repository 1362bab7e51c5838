package main

import (
	"testing"

	"github.com/chazu/cross3d/internal/config"
	"github.com/chazu/cross3d/pkg/density"
	"github.com/chazu/cross3d/pkg/geom"
)

func TestBuildKernelDefaultsToSdfx(t *testing.T) {
	k, err := buildKernel("")
	if err != nil {
		t.Fatalf("buildKernel(\"\"): %v", err)
	}
	if k == nil {
		t.Fatal("buildKernel(\"\") returned a nil kernel")
	}
}

func TestBuildKernelManifoldErrorsWithoutBuildTag(t *testing.T) {
	_, err := buildKernel("manifold")
	if err == nil {
		t.Fatal("buildKernel(\"manifold\") error = nil, want non-nil without -tags=manifold")
	}
}

func TestBuildKernelUnknownBackend(t *testing.T) {
	if _, err := buildKernel("nonsense"); err == nil {
		t.Fatal("buildKernel(\"nonsense\") error = nil, want non-nil")
	}
}

func TestBuildDensityProviderSDFConstructsSolidFromAABB(t *testing.T) {
	cfg := config.New()
	cfg.Density.Kind = config.DensitySDF
	cfg.Density.FalloffDistance = 2.0

	p, err := buildDensityProvider(cfg)
	if err != nil {
		t.Fatalf("buildDensityProvider: %v", err)
	}
	sdf, ok := p.(*density.SDFProximity)
	if !ok {
		t.Fatalf("buildDensityProvider returned %T, want *density.SDFProximity", p)
	}

	// A tiny query box at the part's bounding box surface (corner) should
	// read close to MaxDensity; the same size box far outside should read
	// exactly MinDensity (clamped past the falloff distance).
	aabb := cfg.AABB.ToAABB3D()
	onSurface := geom.AABB3D{Min: aabb.Min, Max: geom.Point3{X: aabb.Min.X + 1, Y: aabb.Min.Y + 1, Z: aabb.Min.Z + 1}}
	if got := sdf.Density(onSurface); got < sdf.MaxDensity-0.01 {
		t.Errorf("Density(onSurface) = %v, want close to MaxDensity %v", got, sdf.MaxDensity)
	}

	far := geom.AABB3D{
		Min: geom.Point3{X: aabb.Max.X + 1_000_000, Y: aabb.Max.Y + 1_000_000, Z: aabb.Max.Z + 1_000_000},
		Max: geom.Point3{X: aabb.Max.X + 1_000_001, Y: aabb.Max.Y + 1_000_001, Z: aabb.Max.Z + 1_000_001},
	}
	if got := sdf.Density(far); got != sdf.MinDensity {
		t.Errorf("Density(far) = %v, want MinDensity %v", got, sdf.MinDensity)
	}
}

func TestBuildDensityProviderSDFRejectsManifoldBackend(t *testing.T) {
	cfg := config.New()
	cfg.Density.Kind = config.DensitySDF
	cfg.KernelBackend = "manifold"

	if _, err := buildDensityProvider(cfg); err == nil {
		t.Fatal("buildDensityProvider error = nil, want non-nil for manifold backend")
	}
}
