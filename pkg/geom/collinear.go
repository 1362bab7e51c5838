package geom

// collinearTolerance is the maximum perpendicular deviation, in microns,
// still considered collinear: a policy threshold tied to the micron-scale
// coordinate unit.
const collinearTolerance = 10

// AreCollinear reports whether two line segments lie on (approximately) the
// same infinite line, regardless of direction or overlap. Used by the
// adjacency manager to test whether two triangles' from/to edges are the
// same physical edge of the space-filling curve.
func AreCollinear(a, b LineSegment) bool {
	av := a.Vector()
	if av.Size2() == 0 {
		return false
	}
	return pointLineDistance(b.From, a.From, av) <= collinearTolerance &&
		pointLineDistance(b.To, a.From, av) <= collinearTolerance
}

// pointLineDistance returns the perpendicular distance from p to the
// infinite line through origin+dir, using the standard cross-product form.
func pointLineDistance(p, origin Point, dir Point) Coord {
	rel := p.Sub(origin)
	cross := int64(dir.X)*int64(rel.Y) - int64(dir.Y)*int64(rel.X)
	if cross < 0 {
		cross = -cross
	}
	dirLen := dir.Size()
	if dirLen == 0 {
		return 0
	}
	return Coord(cross / int64(dirLen))
}
