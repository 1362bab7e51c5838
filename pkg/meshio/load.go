package meshio

import (
	"fmt"

	"github.com/hpinc/go3mf"
	"github.com/samber/lo"
)

// Load reads a 3MF file from path and flattens every mesh-bearing object in
// its build into a single Mesh, in the file's own model-space coordinates
// (3MF stores no unit other than millimeters for printing).
func Load(path string) (*Mesh, error) {
	r, err := go3mf.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: open %s: %w", path, err)
	}
	defer r.Close()

	var model go3mf.Model
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("meshio: decode %s: %w", path, err)
	}

	out := &Mesh{}
	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok || obj.Mesh == nil {
			continue
		}
		base := uint32(len(out.Vertices))
		out.Vertices = append(out.Vertices, lo.Map(obj.Mesh.Vertices.Vertex, func(v go3mf.Point3D, _ int) Vertex {
			return Vertex{X: float64(v.X()), Y: float64(v.Y()), Z: float64(v.Z())}
		})...)
		out.Triangles = append(out.Triangles, lo.Map(obj.Mesh.Triangles.Triangle, func(tri go3mf.Triangle, _ int) Triangle {
			return Triangle{A: base + uint32(tri.V1), B: base + uint32(tri.V2), C: base + uint32(tri.V3)}
		})...)
	}

	if len(out.Triangles) == 0 {
		return nil, fmt.Errorf("meshio: %s contains no triangle mesh", path)
	}
	return out, nil
}
