// Package density provides concrete implementations of the density oracle
// a Cross3D tree samples while assigning each leaf's minimally required
// density: a constant baseline and an SDF-proximity field. Package meshio
// provides a third, mesh-driven implementation, and package script a
// fourth, scripted one; all three packages are independent of package
// cross3d and of each other, satisfying its DensityProvider interface
// purely structurally.
package density

import "github.com/chazu/cross3d/pkg/geom"

// Constant is a DensityProvider that always returns the same value,
// regardless of the query box. Useful as a baseline and in tests.
type Constant float64

// Density implements the DensityProvider interface.
func (c Constant) Density(_ geom.AABB3D) float64 {
	return float64(c)
}
