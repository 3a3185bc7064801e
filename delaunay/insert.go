package delaunay

import (
	"fmt"

	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/predicate"
)

func sortPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

type boundaryFace struct {
	outsideTet  int
	outsideFace int
	verts       [3]int // the shared triple, in outsideTet's own Face() order
}

// growCavity performs the breadth-first discovery of the Bowyer-Watson
// cavity for vertex v inserted at position starting from seed tet
// "start": every tet whose circumsphere (or, for a ghost, half-space)
// contains v, plus the list of faces where the cavity meets the
// untouched mesh. A ghost whose hull face is exactly coplanar with v
// takes the answer of the real tetrahedron across that hull face.
func growCavity(s *mesh.Store, start, v int) (cavity []int, boundary []boundaryFace, err error) {
	epoch := s.NextEpoch()
	s.Tets[start].Epoch = epoch
	s.Tets[start].InCavity = true
	queue := []int{start}
	cavity = append(cavity, start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		t := &s.Tets[cur]
		for f := 0; f < 4; f++ {
			nb := t.N[f]
			if nb == mesh.NoIndex {
				return nil, nil, fmt.Errorf("delaunay: cavity touches an unlinked face")
			}
			nt := &s.Tets[nb]
			if nt.Epoch == epoch {
				// Already classified: a surviving tet reached again from
				// another cavity tet still bounds the cavity on this face.
				if nt.InCavity {
					continue
				}
			} else {
				av, bv, cv, dv := nt.V[0], nt.V[1], nt.V[2], nt.V[3]
				in := inCircumsphere(s, av, bv, cv, dv, v)
				if h := nt.Face(3); nt.Ghost && predicate.Orient3D(s.Pos(h[0]), s.Pos(h[1]), s.Pos(h[2]), s.Pos(v)) == 0 {
					r := &s.Tets[nt.N[3]]
					in = inCircumsphere(s, r.V[0], r.V[1], r.V[2], r.V[3], v)
				}
				nt.Epoch = epoch
				if in {
					nt.InCavity = true
					cavity = append(cavity, nb)
					queue = append(queue, nb)
					continue
				}
			}
			// nb survives; the face from nb's own point of view is the
			// local index opposite whichever of its vertices is the one
			// not shared with cur (there is exactly one, since tets share
			// a full triangular face here).
			of := -1
			for g := 0; g < 4; g++ {
				if nt.N[g] == cur {
					of = g
					break
				}
			}
			if of < 0 {
				return nil, nil, fmt.Errorf("delaunay: neighbor symmetry broken during cavity growth")
			}
			boundary = append(boundary, boundaryFace{
				outsideTet:  nb,
				outsideFace: of,
				verts:       nt.Face(of),
			})
		}
	}
	return cavity, boundary, nil
}

// retriangulateCavity replaces the cavity with a star of new tetrahedra,
// one per boundary face, all sharing apex v, wiring every new
// tetrahedron's neighbors both to the untouched mesh and to its cavity
// siblings. It returns the indices of the newly created tetrahedra.
//
// A boundary face's surviving outside neighbor may itself be a ghost (the
// cavity absorbed part of the ghost ring, growing the hull past v): in
// that case bf.verts carries mesh.Infinite as one of its three entries,
// and the new star tetrahedron must likewise be a ghost with
// mesh.Infinite rotated into its own vertex slot, not a cell that mixes
// the sentinel in among real vertices, matching the convention
// seedSimplex establishes for the original four hull-bounding ghosts.
func retriangulateCavity(s *mesh.Store, boundary []boundaryFace, v int) ([]int, error) {
	type pending struct {
		tet, face int
	}
	edgeMap := make(map[[2]int]pending, len(boundary)*3)
	created := make([]int, 0, len(boundary))

	for _, bf := range boundary {
		f := bf.verts
		// Swap the first two to flip the sign: the shared triple is
		// positively oriented toward outsideTet's kept apex, so toward v
		// (on the opposite side) it is negatively oriented before the
		// swap. A ghost's all-finite face (its hull face) is the
		// exception: it is already positively oriented toward the hull
		// interior, where v lies, so it is kept as is.
		old := [3]int{f[1], f[0], f[2]}
		if s.Tets[bf.outsideTet].Ghost && f[0] != mesh.Infinite && f[1] != mesh.Infinite && f[2] != mesh.Infinite {
			old = f
		}

		V, ghost := starVertices(old, v)
		newIdx := s.AllocTet(V)
		if ghost {
			s.Tets[newIdx].Ghost = true
		}
		created = append(created, newIdx)

		vFace := s.T(newIdx).LocalVertex(v)
		s.Link(newIdx, vFace, bf.outsideTet, bf.outsideFace)

		for _, x := range old {
			var others [2]int
			k := 0
			for _, y := range old {
				if y != x {
					others[k] = y
					k++
				}
			}
			edge := sortPair(others[0], others[1])
			localFace := s.T(newIdx).LocalVertex(x)
			if p, ok := edgeMap[edge]; ok {
				s.Link(newIdx, localFace, p.tet, p.face)
				delete(edgeMap, edge)
			} else {
				edgeMap[edge] = pending{newIdx, localFace}
			}
		}
	}

	if len(edgeMap) != 0 {
		return nil, fmt.Errorf("delaunay: cavity star left %d unmatched edge(s)", len(edgeMap))
	}
	return created, nil
}

// starVertices builds the vertex quadruple for a cavity-star tetrahedron
// over old (the oriented boundary triple) and apex v. When old contains
// mesh.Infinite, the result is a ghost: the sentinel is rotated into slot
// 3 and the two real vertices are reordered by the parity of that
// rotation so the resulting cell's orientation matches what the
// unrotated quadruple {old[0], old[1], old[2], v} would have been.
func starVertices(old [3]int, v int) (V [4]int, ghost bool) {
	pos := -1
	reals := make([]int, 0, 2)
	for i, x := range old {
		if x == mesh.Infinite {
			pos = i
		} else {
			reals = append(reals, x)
		}
	}
	if pos < 0 {
		return [4]int{old[0], old[1], old[2], v}, false
	}

	r0, r1 := reals[0], reals[1]
	if (3-pos)%2 == 1 {
		r0, r1 = r1, r0
	}
	return [4]int{r0, r1, v, mesh.Infinite}, true
}

// InsertPoint inserts vertex v (already present in the store) into the
// tetrahedralization by Bowyer-Watson cavity retriangulation, starting
// the point-location walk from "seed". It returns a tetrahedron
// incident to v, suitable as the next insertion's seed.
func InsertPoint(s *mesh.Store, seed, v int) (int, error) {
	p := s.Pos(v)
	start := Locate(s, seed, p)

	cavity, boundary, err := growCavity(s, start, v)
	if err != nil {
		return seed, err
	}
	created, err := retriangulateCavity(s, boundary, v)
	if err != nil {
		return seed, err
	}
	for _, t := range cavity {
		s.T(t).InCavity = false
		s.FreeTet(t)
	}
	if len(created) == 0 {
		return seed, fmt.Errorf("delaunay: insertion produced no tetrahedra")
	}
	return created[0], nil
}
