// Package voronoi builds the Voronoi diagram dual to a Delaunay
// tetrahedralization: one node per tetrahedron (its circumcenter), one
// edge per pair of tetrahedra sharing a face, and one cell per input
// vertex (the union of its incident tetrahedra's nodes).
package voronoi

import (
	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/predicate"
	"github.com/sunpia/tetgen/vec3"
)

// Dual is the Voronoi diagram of a tetrahedralization's vertex set.
// Cells that touch the convex hull are left open: this kernel reports
// their bounded faces only, rather than extending unbounded rays to
// infinity the way a dedicated Voronoi library would.
type Dual struct {
	// Nodes holds one entry per non-ghost tetrahedron, indexed by that
	// tetrahedron's own index in the mesh store (so a node's index
	// doubles as the owning tet's index; ghost tets simply have no
	// entry and are skipped).
	Nodes map[int]vec3.Vec
	// Edges connects two tetrahedra that share an interior face — the
	// dual of that face.
	Edges [][2]int
	// Cells maps each input vertex to the nodes (tetrahedra) forming
	// its Voronoi region.
	Cells map[int][]int
}

// Build computes the dual diagram of every non-ghost, non-deleted
// tetrahedron in s.
func Build(s *mesh.Store) Dual {
	d := Dual{
		Nodes: make(map[int]vec3.Vec),
		Cells: make(map[int][]int),
	}

	for i := range s.Tets {
		t := &s.Tets[i]
		if t.Deleted || t.Ghost {
			continue
		}
		a, b, c, e := s.Pos(t.V[0]), s.Pos(t.V[1]), s.Pos(t.V[2]), s.Pos(t.V[3])
		center, ok := predicate.Circumcenter(a, b, c, e)
		if !ok {
			continue
		}
		d.Nodes[i] = center
	}

	seen := make(map[[2]int]bool)
	for i := range s.Tets {
		t := &s.Tets[i]
		if t.Deleted || t.Ghost {
			continue
		}
		if _, ok := d.Nodes[i]; !ok {
			continue
		}
		for f := 0; f < 4; f++ {
			nb := t.N[f]
			if nb == mesh.NoIndex {
				continue
			}
			if _, ok := d.Nodes[nb]; !ok {
				continue
			}
			key := [2]int{i, nb}
			if i > nb {
				key = [2]int{nb, i}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			d.Edges = append(d.Edges, key)
		}
	}

	for v := range s.Vertices {
		var cell []int
		for _, t := range s.WalkIncidentToVertex(v) {
			if _, ok := d.Nodes[t]; ok {
				cell = append(cell, t)
			}
		}
		if len(cell) > 0 {
			d.Cells[v] = cell
		}
	}

	return d
}
