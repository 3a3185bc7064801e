// Package delaunay builds and incrementally updates a Delaunay
// tetrahedralization over a mesh.Store using the Bowyer-Watson
// algorithm, with four ghost tetrahedra bounding the initial simplex so
// the neighbor graph has no dangling hull faces to special-case.
package delaunay

import (
	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/predicate"
	"github.com/sunpia/tetgen/vec3"
)

// orient evaluates Orient3D for four store vertex indices, any of which
// may be mesh.Infinite, falling back to symbolic perturbation on an
// exact zero.
func orient(s *mesh.Store, i, j, k, l int) int {
	inf := -1
	switch mesh.Infinite {
	case i:
		inf = 0
	case j:
		inf = 1
	case k:
		inf = 2
	case l:
		inf = 3
	}
	if inf >= 0 {
		finite := [3]vec3.Vec{}
		n := 0
		for _, v := range [4]int{i, j, k, l} {
			if v != mesh.Infinite {
				finite[n] = s.Pos(v)
				n++
			}
		}
		val := predicate.Orient3DInfinite(finite[0], finite[1], finite[2])
		// Orient3DInfinite implicitly evaluates the infinite slot moved to
		// the end, keeping the other three in their relative order; that
		// rearrangement is (3-inf) transpositions, an odd permutation
		// (sign flip) exactly when inf is even.
		if inf%2 == 0 {
			val = -val
		}
		return val
	}

	a, b, c, d := s.Pos(i), s.Pos(j), s.Pos(k), s.Pos(l)
	val := predicate.Orient3D(a, b, c, d)
	if val != 0 {
		return val
	}
	return predicate.Orient3DPerturbed([4]vec3.Vec{a, b, c, d}, [4]int{i, j, k, l})
}

// inCircumsphere reports whether vertex e lies strictly inside the
// circumsphere of tetrahedron (a,b,c,d) — or, if that tetrahedron is a
// ghost, whether e lies beyond its finite face, which is the equivalent
// "the hull must grow here" condition. The four vertices a,b,c,d are
// assumed to already form a positively oriented (or ghost) cell.
func inCircumsphere(s *mesh.Store, a, b, c, d, e int) bool {
	if a == mesh.Infinite || b == mesh.Infinite || c == mesh.Infinite || d == mesh.Infinite {
		h := make([]int, 0, 3)
		for _, v := range [4]int{a, b, c, d} {
			if v != mesh.Infinite {
				h = append(h, v)
			}
		}
		return orient(s, h[0], h[1], h[2], e) < 0
	}

	pa, pb, pc, pd, pe := s.Pos(a), s.Pos(b), s.Pos(c), s.Pos(d), s.Pos(e)
	val := predicate.InSphere(pa, pb, pc, pd, pe)
	if val != 0 {
		return val > 0
	}
	return predicate.InSpherePerturbed(pa, pb, pc, pd, pe, [4]int{a, b, c, d}, e) > 0
}
