package delaunay

import (
	"fmt"
	"math/rand"

	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/predicate"
	"github.com/sunpia/tetgen/vec3"
)

// seedSimplex builds the first tetrahedron from four non-coplanar
// vertices, oriented positively, and surrounds it with four ghost
// tetrahedra so every face of the initial mesh already has a neighbor.
// It returns the real tetrahedron's index.
func seedSimplex(s *mesh.Store, a, b, c, d int) (int, error) {
	pa, pb, pc, pd := s.Pos(a), s.Pos(b), s.Pos(c), s.Pos(d)
	if ok, _ := predicate.IsZeroVolume(pa, pb, pc, pd); ok {
		return mesh.NoIndex, fmt.Errorf("delaunay: initial four points are coplanar")
	}
	if predicate.Orient3DFast(pa, pb, pc, pd) < 0 {
		b, c = c, b
	}

	tet0 := s.AllocTet([4]int{a, b, c, d})

	var ghosts [4]int
	for i := 0; i < 4; i++ {
		f := s.T(tet0).Face(i)
		ghosts[i] = s.AllocTet([4]int{f[0], f[1], f[2], mesh.Infinite})
		s.Tets[ghosts[i]].Ghost = true
		s.Link(tet0, i, ghosts[i], 3)
	}
	v := s.T(tet0).V
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			faceA := s.T(ghosts[i]).LocalVertex(v[j])
			faceB := s.T(ghosts[j]).LocalVertex(v[i])
			s.Link(ghosts[i], faceA, ghosts[j], faceB)
		}
	}
	return tet0, nil
}

// firstNonDegenerateSimplex scans the ordered point list for the first
// four vertices that are affinely independent, so BRIO's initial round
// doesn't need to already be degeneracy-free.
func firstNonDegenerateSimplex(s *mesh.Store, order []int) ([4]int, []int, error) {
	if len(order) < 4 {
		return [4]int{}, nil, fmt.Errorf("delaunay: need at least 4 points")
	}
	for start := 0; start+3 < len(order); start++ {
		a, b, c, d := order[start], order[start+1], order[start+2], order[start+3]
		pa, pb, pc, pd := s.Pos(a), s.Pos(b), s.Pos(c), s.Pos(d)
		if ok, _ := predicate.IsZeroVolume(pa, pb, pc, pd); !ok {
			rest := make([]int, 0, len(order)-4)
			rest = append(rest, order[:start]...)
			rest = append(rest, order[start+4:]...)
			return [4]int{a, b, c, d}, rest, nil
		}
	}
	return [4]int{}, nil, fmt.Errorf("delaunay: all input points are coplanar")
}

// Build constructs the Delaunay tetrahedralization of every vertex
// already present in s, inserting them in BRIO/Hilbert order for
// locality. It returns a tetrahedron incident to the last-inserted
// vertex, useful as a seed for subsequent constrained-insertion passes.
func Build(s *mesh.Store, rng *rand.Rand) (int, error) {
	n := len(s.Vertices)
	pts := make([]vec3.Vec, n)
	for i := range s.Vertices {
		pts[i] = s.Vertices[i].Pos
	}
	box := vec3.NewBox3(pts)

	order := BRIOOrder(pts, box, func(idx []int) { rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] }) })

	simplex, rest, err := firstNonDegenerateSimplex(s, order)
	if err != nil {
		return mesh.NoIndex, err
	}
	seed, err := seedSimplex(s, simplex[0], simplex[1], simplex[2], simplex[3])
	if err != nil {
		return mesh.NoIndex, err
	}

	for _, v := range rest {
		seed, err = InsertPoint(s, seed, v)
		if err != nil {
			return mesh.NoIndex, fmt.Errorf("delaunay: inserting vertex %d: %w", v, err)
		}
	}
	return seed, nil
}
