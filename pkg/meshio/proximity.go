package meshio

import "github.com/chazu/cross3d/pkg/geom"

// MeshProximity is a DensityProvider that raises the required density near
// the surface of a loaded mesh, the same shape of field density.SDFProximity
// provides for a procedural solid, but driven by an Index over a 3MF mesh's
// triangles instead of a signed distance function.
type MeshProximity struct {
	Index *Index

	FalloffDistance float64 // millimeters
	MinDensity      float64
	MaxDensity      float64
}

// NewMeshProximity returns a MeshProximity over mesh with MinDensity/
// MaxDensity defaulted to 0.1/1.0.
func NewMeshProximity(mesh *Mesh, falloffDistanceMM float64) *MeshProximity {
	return &MeshProximity{
		Index:           NewIndex(mesh),
		FalloffDistance: falloffDistanceMM,
		MinDensity:      0.1,
		MaxDensity:      1.0,
	}
}

// Density implements the DensityProvider interface.
func (p *MeshProximity) Density(box geom.AABB3D) float64 {
	center := [3]float64{
		geom.IntToMM((box.Min.X + box.Max.X) / 2),
		geom.IntToMM((box.Min.Y + box.Max.Y) / 2),
		geom.IntToMM((box.Min.Z + box.Max.Z) / 2),
	}
	dist := p.Index.NearestDistance(center)
	if p.FalloffDistance <= 0 {
		if dist == 0 {
			return p.MaxDensity
		}
		return p.MinDensity
	}
	t := dist / p.FalloffDistance
	if t >= 1 {
		return p.MinDensity
	}
	return p.MaxDensity - t*(p.MaxDensity-p.MinDensity)
}
