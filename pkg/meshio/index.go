package meshio

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// minBranch/maxBranch are the rtreego node fanout bounds; the defaults used
// throughout the R-tree literature and rtreego's own examples.
const (
	minBranch = 25
	maxBranch = 50
)

// triangleLeaf is one rtreego.Spatial entry: a mesh triangle's index plus
// its owning mesh, so NearestNeighbor queries can get back to real
// geometry.
type triangleLeaf struct {
	mesh  *Mesh
	index int
}

// Bounds implements rtreego.Spatial.
func (t *triangleLeaf) Bounds() rtreego.Rect {
	tri := t.mesh.Triangles[t.index]
	a, b, c := t.mesh.vertex(tri.A), t.mesh.vertex(tri.B), t.mesh.vertex(tri.C)
	min := [3]float64{
		math.Min(a.X, math.Min(b.X, c.X)),
		math.Min(a.Y, math.Min(b.Y, c.Y)),
		math.Min(a.Z, math.Min(b.Z, c.Z)),
	}
	max := [3]float64{
		math.Max(a.X, math.Max(b.X, c.X)),
		math.Max(a.Y, math.Max(b.Y, c.Y)),
		math.Max(a.Z, math.Max(b.Z, c.Z)),
	}
	lengths := [3]float64{}
	for i := range lengths {
		lengths[i] = max[i] - min[i]
		if lengths[i] <= 0 {
			lengths[i] = 1e-6 // rtreego rejects a zero-volume rectangle.
		}
	}
	rect, _ := rtreego.NewRect(rtreego.Point{min[0], min[1], min[2]}, lengths[:])
	return rect
}

// Index is an R-tree over a Mesh's triangles, used to answer "what is the
// nearest triangle to this point" queries in roughly logarithmic time
// instead of scanning every triangle.
type Index struct {
	mesh *Mesh
	tree *rtreego.Rtree
}

// NewIndex builds an Index over every triangle in mesh.
func NewIndex(mesh *Mesh) *Index {
	tree := rtreego.NewTree(3, minBranch, maxBranch)
	for i := range mesh.Triangles {
		tree.Insert(&triangleLeaf{mesh: mesh, index: i})
	}
	return &Index{mesh: mesh, tree: tree}
}

// NearestDistance returns the distance from p (in millimeters) to the
// centroid of the nearest triangle's bounding leaf. Using the triangle's
// centroid rather than the exact closest point on the triangle surface is
// an approximation the R-tree's nearest-neighbor query makes cheap; the
// error is bounded by the mesh's triangle size, acceptable for a density
// falloff field rather than an exact geometric query.
func (idx *Index) NearestDistance(p [3]float64) float64 {
	point := rtreego.Point{p[0], p[1], p[2]}
	results := idx.tree.NearestNeighbor(point)
	if results == nil {
		return math.Inf(1)
	}
	leaf := results.(*triangleLeaf)
	c := idx.mesh.Triangles[leaf.index].centroid(idx.mesh)
	dx, dy, dz := c.X-p[0], c.Y-p[1], c.Z-p[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
