package plc

import (
	"github.com/sunpia/tetgen/delaunay"
	"github.com/sunpia/tetgen/errkind"
	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/stats"
	"github.com/sunpia/tetgen/vec3"
)

// facePresent reports whether (a,b,c) already appears as a face of some
// tetrahedron: since every tetrahedron has exactly four vertices, three
// of them being present together in the same cell always means they
// form one of its four faces.
func facePresent(s *mesh.Store, a, b, c int) bool {
	for _, t := range s.WalkIncidentToVertex(a) {
		tt := &s.Tets[t]
		if tt.HasVertex(b) && tt.HasVertex(c) {
			return true
		}
	}
	return false
}

// recoverTriangle ensures (a,b,c) is present as a mesh face, inserting
// its centroid and recursing into the three sub-triangles when it is
// not — the facet-recovery analogue of RecoverSegment's midpoint split.
func recoverTriangle(s *mesh.Store, a, b, c, maxSteiner int, used *int, leaves *[][3]int) error {
	if facePresent(s, a, b, c) {
		*leaves = append(*leaves, [3]int{a, b, c})
		return nil
	}
	if maxSteiner > 0 && *used >= maxSteiner {
		return errkind.New(errkind.MissingFacet, "steiner-point budget exhausted recovering a facet")
	}
	*used++

	pa, pb, pc := s.Pos(a), s.Pos(b), s.Pos(c)
	centroid := pa.Add(pb).Add(pc).DivScalar(3)
	seed := s.Vertices[a].Tet
	midIdx := s.AddVertex(centroid, 0, nil, mesh.ClassSteinerFacet)
	if _, err := delaunay.InsertPoint(s, seed, midIdx); err != nil {
		return errkind.Wrap(errkind.MissingFacet, "inserting facet centroid", err)
	}

	for _, tri := range [3][2]int{{a, b}, {b, c}, {c, a}} {
		if err := recoverTriangle(s, tri[0], tri[1], midIdx, maxSteiner, used, leaves); err != nil {
			return err
		}
	}
	return nil
}

// fanTriangulate splits a (possibly non-convex, but here assumed
// star-shaped from its first vertex) polygon loop into triangles.
// General polygon facets in TetGen's input may be non-convex; this
// kernel handles the common case and leaves true ear-clipping for
// non-star-shaped polygons as a known gap (see DESIGN.md).
func fanTriangulate(loop []int) [][3]int {
	if len(loop) < 3 {
		return nil
	}
	tris := make([][3]int, 0, len(loop)-2)
	for i := 1; i+1 < len(loop); i++ {
		tris = append(tris, [3]int{loop[0], loop[i], loop[i+1]})
	}
	return tris
}

// RecoverFacet recovers every polygon of f: first
// its edges as segments, then its interior as a union of mesh faces. It
// returns the final (possibly Steiner-subdivided) triangles covering the
// facet, used by flood-fill to know which mesh faces are walls.
// planarTolerance <= 0 skips the planarity check entirely.
func RecoverFacet(s *mesh.Store, f Facet, maxSteiner int, planarTolerance float64) ([][3]int, error) {
	if planarTolerance > 0 {
		for _, loop := range f.Polygons {
			pts := make([]vec3.Vec, len(loop))
			for i, v := range loop {
				pts[i] = s.Pos(v)
			}
			if fit := stats.FitPlane(pts); fit.MaxResidual > planarTolerance {
				return nil, errkind.New(errkind.DegeneratePLC, "facet polygon is not planar within tolerance")
			}
		}
	}

	for _, loop := range f.Polygons {
		for i := range loop {
			a, b := loop[i], loop[(i+1)%len(loop)]
			if err := RecoverSegment(s, a, b, maxSteiner); err != nil {
				return nil, err
			}
		}
	}

	used := 0
	var leaves [][3]int
	for _, loop := range f.Polygons {
		for _, tri := range fanTriangulate(loop) {
			if err := recoverTriangle(s, tri[0], tri[1], tri[2], maxSteiner, &used, &leaves); err != nil {
				return nil, err
			}
		}
	}
	return leaves, nil
}

// RecoverFacets recovers every facet in the list and returns the union
// of every facet's final wall triangles.
func RecoverFacets(s *mesh.Store, facets []Facet, maxSteiner int, planarTolerance float64) ([][3]int, error) {
	var walls [][3]int
	for _, f := range facets {
		leaves, err := RecoverFacet(s, f, maxSteiner, planarTolerance)
		if err != nil {
			return nil, err
		}
		walls = append(walls, leaves...)
	}
	return walls, nil
}
