package tetio

import (
	"github.com/yofu/dxf"

	"github.com/sunpia/tetgen/mesh"
)

// WriteDXF exports the mesh's boundary facets as 3DFACE entities and its
// recovered segments as LINE entities in a DXF drawing, a supplemental
// output format for viewing results in CAD tools rather than FEA solvers.
func WriteDXF(path string, s *mesh.Store, segments [][2]int) error {
	d := dxf.NewDrawing()

	for _, bf := range s.BoundaryFaces() {
		tri := s.Tets[bf.Tet].Face(bf.Face)
		a, b, c := s.Pos(tri[0]), s.Pos(tri[1]), s.Pos(tri[2])
		d.ThreeDFace(
			[]float64{a.X, a.Y, a.Z},
			[]float64{b.X, b.Y, b.Z},
			[]float64{c.X, c.Y, c.Z},
			[]float64{c.X, c.Y, c.Z},
		)
	}

	for _, seg := range segments {
		a, b := s.Pos(seg[0]), s.Pos(seg[1])
		d.Line(a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	}

	return d.SaveAs(path)
}
