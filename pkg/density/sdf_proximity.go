package density

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/cross3d/pkg/geom"
)

// SDFProximity is a DensityProvider that raises the required density near
// the surface of a signed-distance solid: skin and thin-wall regions of a
// part are natural candidates for denser infill support. It samples the
// solid's signed distance at the query box's center and maps the absolute
// distance through a linear falloff, so cells straddling the surface (small
// |distance|) get MaxDensity and cells deep inside or far outside get
// MinDensity.
type SDFProximity struct {
	Solid sdf.SDF3

	// FalloffDistance is the distance, in millimeters, over which density
	// ramps from MaxDensity down to MinDensity.
	FalloffDistance float64

	MinDensity float64
	MaxDensity float64
}

// NewSDFProximity returns an SDFProximity with the given solid and falloff
// distance and MinDensity/MaxDensity defaulted to 0.1/1.0.
func NewSDFProximity(solid sdf.SDF3, falloffDistanceMM float64) *SDFProximity {
	return &SDFProximity{
		Solid:           solid,
		FalloffDistance: falloffDistanceMM,
		MinDensity:      0.1,
		MaxDensity:      1.0,
	}
}

// Density implements the DensityProvider interface.
func (p *SDFProximity) Density(box geom.AABB3D) float64 {
	center := v3.Vec{
		X: geom.IntToMM((box.Min.X + box.Max.X) / 2),
		Y: geom.IntToMM((box.Min.Y + box.Max.Y) / 2),
		Z: geom.IntToMM((box.Min.Z + box.Max.Z) / 2),
	}
	dist := math.Abs(p.Solid.Evaluate(center))
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
