package geom

// AABB is a 2D axis-aligned bounding box.
type AABB struct {
	Min, Max Point
	valid    bool
}

// NewAABB returns an empty AABB; use Include to grow it.
func NewAABB() AABB {
	return AABB{}
}

// Include grows the box to include p.
func (a AABB) Include(p Point) AABB {
	if !a.valid {
		return AABB{Min: p, Max: p, valid: true}
	}
	if p.X < a.Min.X {
		a.Min.X = p.X
	}
	if p.Y < a.Min.Y {
		a.Min.Y = p.Y
	}
	if p.X > a.Max.X {
		a.Max.X = p.X
	}
	if p.Y > a.Max.Y {
		a.Max.Y = p.Y
	}
	return a
}

// AABB3D is a 3D axis-aligned bounding box: the part's bounding volume in
// microns, and the construction input to the Cross3D tree.
type AABB3D struct {
	Min, Max Point3
}

// Flatten drops the z component, returning the 2D footprint of the box.
func (a AABB3D) Flatten() AABB {
	return AABB{
		Min:   Point{a.Min.X, a.Min.Y},
		Max:   Point{a.Max.X, a.Max.Y},
		valid: true,
	}
}

// Size returns the box's extent along each axis.
func (a AABB3D) Size() Point3 {
	return a.Max.Sub(a.Min)
}
