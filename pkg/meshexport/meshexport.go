// Package meshexport turns a Cross3D tree into renderable geometry: either
// an exact triangle mesh of every leaf cell's prism (Export), or a coarse
// bounding-box preview built through a kernel.Kernel backend (Preview),
// walking the cross3d.Cell arena directly rather than an intermediate
// named-node graph.
package meshexport

import (
	"fmt"

	"github.com/chazu/cross3d/pkg/cross3d"
	"github.com/chazu/cross3d/pkg/geom"
	"github.com/chazu/cross3d/pkg/kernel"
)

// Export walks every leaf cell in t and appends its prism as a six-vertex,
// eight-triangle wedge (two triangular caps, three rectangular sides) to a
// single flat kernel.Mesh, in millimeters.
func Export(t *cross3d.Tree) *kernel.Mesh {
	mesh := &kernel.Mesh{PartName: "cross3d-infill"}

	for _, cell := range t.Cells[1:] {
		if !cell.IsLeaf() {
			continue
		}
		appendWedge(mesh, cell.Prism)
	}

	return mesh
}

// appendWedge appends the six vertices and eight triangles of one prism to
// mesh. Vertex order: 0,1,2 form the bottom triangle (A, B, StraightCorner
// at z_min), 3,4,5 the same footprint at z_max.
func appendWedge(mesh *kernel.Mesh, p cross3d.Prism) {
	tri := p.Triangle
	zMin, zMax := geom.IntToMM(p.ZRange.Min), geom.IntToMM(p.ZRange.Max)

	footprint := [3]geom.Point{tri.A, tri.B, tri.StraightCorner}
	base := uint32(len(mesh.Vertices) / 3)

	pushVertex := func(pt geom.Point, z float64) {
		mesh.Vertices = append(mesh.Vertices, float32(geom.IntToMM(pt.X)), float32(geom.IntToMM(pt.Y)), float32(z))
		mesh.Normals = append(mesh.Normals, 0, 0, 0) // Normals are left as zero vectors; nothing in this package computes them.
	}
	for _, pt := range footprint {
		pushVertex(pt, zMin)
	}
	for _, pt := range footprint {
		pushVertex(pt, zMax)
	}

	addTri := func(a, b, c uint32) {
		mesh.Indices = append(mesh.Indices, base+a, base+b, base+c)
	}

	// Bottom and top caps.
	addTri(0, 1, 2)
	addTri(5, 4, 3)

	// Three side walls, each a quad split into two triangles.
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		addTri(uint32(i), uint32(j), uint32(j+3))
		addTri(uint32(i), uint32(j+3), uint32(i+3))
	}
}

// Preview builds a coarse bounding-box approximation of the tree's occupied
// volume through k: one Box solid per leaf cell's prism bounding box,
// unioned together. It is coarser than Export's exact wedges and costs one
// kernel union per leaf plus the kernel's own meshing, so it suits a
// volume estimate or a visual sanity check through a solid-modeling
// backend, and it exercises the kernel.Kernel abstraction cross3d.Tree
// itself never needs to know about.
func Preview(t *cross3d.Tree, k kernel.Kernel) (*kernel.Mesh, error) {
	var solid kernel.Solid

	for _, cell := range t.Cells[1:] {
		if !cell.IsLeaf() {
			continue
		}
		box := leafBoundingBox(cell)
		size := box.Max.Sub(box.Min)
		if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
			continue
		}
		b := k.Box(geom.IntToMM(size.X), geom.IntToMM(size.Y), geom.IntToMM(size.Z))
		b = k.Translate(b, geom.IntToMM(box.Min.X), geom.IntToMM(box.Min.Y), geom.IntToMM(box.Min.Z))
		if solid == nil {
			solid = b
		} else {
			solid = k.Union(solid, b)
		}
	}

	if solid == nil {
		return nil, fmt.Errorf("meshexport: tree has no leaf cells to preview")
	}

	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("meshexport: ToMesh: %w", err)
	}
	mesh.PartName = "cross3d-preview"
	return mesh, nil
}

func leafBoundingBox(cell *cross3d.Cell) geom.AABB3D {
	tri := cell.Prism.Triangle
	footprint := geom.NewAABB().Include(tri.StraightCorner).Include(tri.A).Include(tri.B)
	return geom.AABB3D{
		Min: geom.Point3{X: footprint.Min.X, Y: footprint.Min.Y, Z: cell.Prism.ZRange.Min},
		Max: geom.Point3{X: footprint.Max.X, Y: footprint.Max.Y, Z: cell.Prism.ZRange.Max},
	}
}
