package tetio

import (
	"os"

	"github.com/hpinc/go3mf"

	"github.com/sunpia/tetgen/mesh"
)

// Write3MF exports the mesh's boundary triangulation as a 3MF model, a
// zip/OPC-packaged triangle-mesh format natural for handing a watertight
// boundary surface to a print or visualization tool.
func Write3MF(path string, s *mesh.Store) error {
	model := &go3mf.Model{}
	mesh3mf := &go3mf.Mesh{}

	for _, v := range s.Vertices {
		mesh3mf.Vertices.Vertex = append(mesh3mf.Vertices.Vertex, go3mf.Point3D{
			float32(v.Pos.X), float32(v.Pos.Y), float32(v.Pos.Z),
		})
	}

	for _, bf := range s.BoundaryFaces() {
		tri := s.Tets[bf.Tet].Face(bf.Face)
		mesh3mf.Triangles.Triangle = append(mesh3mf.Triangles.Triangle, go3mf.Triangle{
			V1: tri[0], V2: tri[1], V3: tri[2],
		})
	}

	model.Resources.Objects = append(model.Resources.Objects, &go3mf.Object{
		ID:   1,
		Mesh: mesh3mf,
	})
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 1})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := go3mf.NewEncoder(f)
	if err != nil {
		return err
	}
	return w.Encode(model)
}
