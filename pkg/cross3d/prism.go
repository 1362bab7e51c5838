package cross3d

import "github.com/chazu/cross3d/pkg/geom"

// cubeClassificationTolerance is the micron tolerance used to classify a
// prism as a half-cube or quarter-cube: a policy threshold tied to the
// micron-scale coordinate unit.
const cubeClassificationTolerance geom.Coord = 10

// Prism is a triangular footprint extruded over a vertical z-range.
// IsExpanding tags the local orientation of the curve's z-progression.
type Prism struct {
	Triangle    Triangle
	ZRange      geom.Range
	IsExpanding bool
}

// IsHalfCube reports whether the prism's z-height matches the length of the
// straight_corner-to-b edge: such a prism subdivides into 2 children.
func (p Prism) IsHalfCube() bool {
	return absCoord(p.Triangle.StraightCorner.Sub(p.Triangle.B).Size()-p.ZRange.Size()) < cubeClassificationTolerance
}

// IsQuarterCube reports whether the prism's z-height matches the length of
// the a-to-b edge: such a prism subdivides into 4 children.
func (p Prism) IsQuarterCube() bool {
	return absCoord(p.Triangle.A.Sub(p.Triangle.B).Size()-p.ZRange.Size()) < cubeClassificationTolerance
}

// childCount returns 2 for a half-cube prism, 4 for a quarter-cube prism.
func (p Prism) childCount() int {
	if p.IsHalfCube() {
		return 2
	}
	return 4
}

func absCoord(c geom.Coord) geom.Coord {
	if c < 0 {
		return -c
	}
	return c
}
