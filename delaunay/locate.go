package delaunay

import (
	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/predicate"
	"github.com/sunpia/tetgen/vec3"
)

// ghostRimCross evaluates which side of a ghost's rim face (an edge of
// the hull face extended through the sentinel at infinity) point p falls
// on, as a 2D orientation of the rim edge and p projected along an axis.
// Locate does not use it.
func ghostRimCross(s *mesh.Store, face [3]int, p vec3.Vec) int {
	var fh [2]vec3.Vec
	n := 0
	for _, v := range face {
		if v != mesh.Infinite {
			fh[n] = s.Pos(v)
			n++
		}
	}
	return predicate.Orient3DInfinite(fh[0], fh[1], p)
}

// Locate walks the mesh from a starting tetrahedron to one containing
// (or, for points outside the current hull, bordering) p, via a
// stochastic-free straight walk across whichever face p lies beyond. A
// walk that reaches a ghost whose hull face p lies strictly beyond stops
// there; otherwise it steps back into the real tetrahedron behind it.
func Locate(s *mesh.Store, start int, p vec3.Vec) int {
	current := start
	limit := 8*len(s.Tets) + 64
	for iter := 0; iter < limit; iter++ {
		t := &s.Tets[current]
		if !t.Ghost {
			exited := -1
			for f := 0; f < 4; f++ {
				fv := t.Face(f)
				if predicate.Orient3D(s.Pos(fv[0]), s.Pos(fv[1]), s.Pos(fv[2]), p) < 0 {
					exited = f
					break
				}
			}
			if exited < 0 {
				return current
			}
			nb := t.N[exited]
			if nb == mesh.NoIndex {
				return current
			}
			current = nb
			continue
		}

		hull := t.Face(3)
		if predicate.Orient3D(s.Pos(hull[0]), s.Pos(hull[1]), s.Pos(hull[2]), p) >= 0 {
			current = t.N[3]
			continue
		}
		return current
	}
	return current
}
