// Package config loads construction parameters for cmd/crossdemo. The core
// package, cross3d, never reads a Config itself: it takes an AABB3D, a max
// depth, a line width, and a density.DensityProvider as plain constructor
// arguments, so this package exists only to turn a TOML file or environment
// variables into those arguments for the CLI entry point.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/chazu/cross3d/pkg/geom"
)

// AABB3DConfig is the TOML-friendly form of a geom.AABB3D, in millimeters.
type AABB3DConfig struct {
	MinX float64 `toml:"min_x" json:"min_x"`
	MinY float64 `toml:"min_y" json:"min_y"`
	MinZ float64 `toml:"min_z" json:"min_z"`
	MaxX float64 `toml:"max_x" json:"max_x"`
	MaxY float64 `toml:"max_y" json:"max_y"`
	MaxZ float64 `toml:"max_z" json:"max_z"`
}

// ToAABB3D converts to micron integer coordinates.
func (c AABB3DConfig) ToAABB3D() geom.AABB3D {
	mm := func(v float64) geom.Coord { return geom.Coord(v * 1e3) }
	return geom.AABB3D{
		Min: geom.Point3{X: mm(c.MinX), Y: mm(c.MinY), Z: mm(c.MinZ)},
		Max: geom.Point3{X: mm(c.MaxX), Y: mm(c.MaxY), Z: mm(c.MaxZ)},
	}
}

// DensityKind selects which density.DensityProvider implementation a
// DensityConfig describes.
type DensityKind string

const (
	DensityConstant DensityKind = "constant"
	DensitySDF      DensityKind = "sdf_proximity"
	DensityMesh     DensityKind = "mesh_proximity"
	DensityScript   DensityKind = "script"
)

// DensityConfig carries the parameters for whichever DensityKind is
// selected; fields irrelevant to the selected Kind are ignored.
type DensityConfig struct {
	Kind DensityKind `toml:"kind" json:"kind"`

	ConstantValue float64 `toml:"constant_value" json:"constant_value"`

	MeshPath        string  `toml:"mesh_path" json:"mesh_path"`
	FalloffDistance float64 `toml:"falloff_distance_mm" json:"falloff_distance_mm"`
	MinDensity      float64 `toml:"min_density" json:"min_density"`
	MaxDensity      float64 `toml:"max_density" json:"max_density"`

	ScriptSource string `toml:"script_source" json:"script_source"`
}

// Config is the full set of construction parameters cmd/crossdemo needs to
// build a cross3d.Tree.
type Config struct {
	AABB      AABB3DConfig  `toml:"aabb" json:"aabb"`
	MaxDepth  int           `toml:"max_depth" json:"max_depth"`
	LineWidth int32         `toml:"line_width" json:"line_width"`
	Density   DensityConfig `toml:"density" json:"density"`

	// KernelBackend selects the pkg/kernel.Kernel implementation used to
	// realize solid geometry for sdf_proximity density and mesh preview:
	// "sdfx" (the default, always available) or "manifold" (requires a
	// build tagged -tags=manifold).
	KernelBackend string `toml:"kernel_backend" json:"kernel_backend"`
}

// New returns a Config with sane defaults: a 10x10x10mm cube, max depth 8,
// a 0.4mm line width, and a constant density of 0.2.
func New() Config {
	return Config{
		AABB: AABB3DConfig{
			MinX: 0, MinY: 0, MinZ: 0,
			MaxX: 10, MaxY: 10, MaxZ: 10,
		},
		MaxDepth:  8,
		LineWidth: 400,
		Density: DensityConfig{
			Kind:          DensityConstant,
			ConstantValue: 0.2,
			MinDensity:    0.1,
			MaxDensity:    1.0,
		},
		KernelBackend: "sdfx",
	}
}

// Load reads a TOML file at path into a Config seeded with New()'s
// defaults, so a partial file only overrides what it mentions.
func Load(path string) (Config, error) {
	cfg := New()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv overrides cfg's max depth from an environment variable, when set,
// taking precedence over whatever a file configuration set.
func LoadEnv(cfg Config) Config {
	if v := os.Getenv("CROSS3D_MAX_DEPTH"); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			cfg.MaxDepth = n
		}
	}
	return cfg
}
