// Package meshio loads triangle meshes from 3MF files and exposes them as a
// density oracle: a density field driven by proximity to a printed mesh's
// surface, for parts whose geometry comes from a file rather than a
// programmatically built kernel.Solid.
package meshio

import "github.com/chazu/cross3d/pkg/geom"

// Vertex is a single mesh vertex in millimeters, the unit 3MF stores
// coordinates in.
type Vertex struct {
	X, Y, Z float64
}

// Triangle is one face of a loaded mesh, referencing three Vertex indices
// into the owning Mesh's Vertices slice.
type Triangle struct {
	A, B, C uint32
}

// Mesh is a loaded 3MF triangle mesh plus its axis-aligned bounding box in
// Cross3D's integer-micron coordinate system.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
}

// AABB3D returns the mesh's bounding box, converted from millimeters to
// integer microns.
func (m *Mesh) AABB3D() geom.AABB3D {
	if len(m.Vertices) == 0 {
		return geom.AABB3D{}
	}
	min := m.Vertices[0]
	max := m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	return geom.AABB3D{
		Min: geom.Point3{X: mmToCoord(min.X), Y: mmToCoord(min.Y), Z: mmToCoord(min.Z)},
		Max: geom.Point3{X: mmToCoord(max.X), Y: mmToCoord(max.Y), Z: mmToCoord(max.Z)},
	}
}

func mmToCoord(mm float64) geom.Coord {
	return geom.Coord(mm * 1e3)
}

func (m *Mesh) vertex(idx uint32) Vertex {
	return m.Vertices[idx]
}

func (t Triangle) centroid(m *Mesh) Vertex {
	a, b, c := m.vertex(t.A), m.vertex(t.B), m.vertex(t.C)
	return Vertex{
		X: (a.X + b.X + c.X) / 3,
		Y: (a.Y + b.Y + c.Y) / 3,
		Z: (a.Z + b.Z + c.Z) / 3,
	}
}
