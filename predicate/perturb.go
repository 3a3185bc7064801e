package predicate

import "github.com/sunpia/tetgen/vec3"

// Symbolic perturbation (Simulation of Simplicity, Edelsbrunner & Mücke).
// Every vertex is imagined to carry a unique infinitesimal displacement
// tied to its index; the predicates below resolve an exact-zero result
// by expanding the determinant to first order in that infinitesimal and
// taking the sign of the lowest-order nonzero term.
//
// Orient3D's determinant is linear in each row, so perturbing a single
// coordinate of point i by a term of order eps^(2^rank(i)) makes every
// cross-row term of the expansion vanish (two rows become parallel),
// leaving only the four single-row terms; each reduces to a cofactor —
// exactly the projected 2D orientation test (Orient3DInfinite) the
// delaunay package uses for ghost-vertex orientation. InSphere reduces the same way once its
// lifted "height" column is perturbed, with the surviving cofactor being
// an Orient3D test on the basepoint and the three other vertices.

// axisComponents returns the two coordinates of v other than axisDrop
// (0=X, 1=Y, 2=Z).
func axisComponents(axisDrop int, v vec3.Vec) (u, w float64) {
	switch axisDrop {
	case 0:
		return v.Y, v.Z
	case 1:
		return v.X, v.Z
	default:
		return v.X, v.Y
	}
}

// orient2DAxisSign is the 2D orientation test of p,q,r projected onto the
// plane perpendicular to axisDrop, evaluated exactly.
func orient2DAxisSign(axisDrop int, p, q, r vec3.Vec) int {
	pu, pw := axisComponents(axisDrop, p)
	qu, qw := axisComponents(axisDrop, q)
	ru, rw := axisComponents(axisDrop, r)

	a := bigMul(bigSub(big64(qu), big64(pu)), bigSub(big64(rw), big64(pw)))
	b := bigMul(bigSub(big64(qw), big64(pw)), bigSub(big64(ru), big64(pu)))
	return sign(bigSub(a, b))
}

// rankOf returns, for each of the four slots, its rank (0..3) when the
// four indices are sorted ascending. Indices must be pairwise distinct.
func rankOf(idx [4]int) [4]int {
	var rank [4]int
	for k := 0; k < 4; k++ {
		r := 0
		for j := 0; j < 4; j++ {
			if idx[j] < idx[k] {
				r++
			}
		}
		rank[k] = r
	}
	return rank
}

func slotOfRank(rank [4]int, r int) int {
	for k, rk := range rank {
		if rk == r {
			return k
		}
	}
	panic("predicate: rank not found")
}

func others3(skip int) [3]int {
	var o [3]int
	n := 0
	for i := 0; i < 4; i++ {
		if i != skip {
			o[n] = i
			n++
		}
	}
	return o
}

// Orient3DPerturbed resolves an exact-zero Orient3D(pts[0..3]) result
// deterministically. idx holds the vertex index backing each of the 4
// points, in the same order.
func Orient3DPerturbed(pts [4]vec3.Vec, idx [4]int) int {
	rank := rankOf(idx)
	for axisDrop := 2; axisDrop >= 0; axisDrop-- {
		for r := 0; r < 4; r++ {
			k := slotOfRank(rank, r)
			o := others3(k)
			val := orient2DAxisSign(axisDrop, pts[o[0]], pts[o[1]], pts[o[2]])
			if val == 0 {
				continue
			}
			if k%2 == 1 {
				val = -val
			}
			return val
		}
	}
	// All four points share two coordinates pairwise under every axis
	// drop: only possible if two of them coincide, which the caller
	// should already have rejected as a coincident-vertex error.
	return 0
}

// Orient3DInfinite resolves an orientation test where one of the four
// arguments is the mesh store's sentinel point at infinity: it drops to
// the 2D orientation of the three remaining (finite) points, per the
// standard ghost-vertex convention, trying each axis projection in turn
// in the vanishingly rare case the first is degenerate.
func Orient3DInfinite(p0, p1, p2 vec3.Vec) int {
	for axisDrop := 2; axisDrop >= 0; axisDrop-- {
		if v := orient2DAxisSign(axisDrop, p0, p1, p2); v != 0 {
			return v
		}
	}
	return 0
}

// InSpherePerturbed resolves an exact-zero InSphere(a,b,c,d,e) result
// deterministically. idx holds the vertex indices of a,b,c,d in order,
// ie the vertex index of e.
func InSpherePerturbed(a, b, c, d, e vec3.Vec, idx [4]int, ie int) int {
	pts := [4]vec3.Vec{a, b, c, d}
	rank := rankOf(idx)
	for r := 0; r < 4; r++ {
		k := slotOfRank(rank, r)
		o := others3(k)
		val := Orient3D(e, pts[o[0]], pts[o[1]], pts[o[2]])
		if val == 0 {
			// e, and the three surviving points, are themselves
			// coplanar under exact arithmetic: perturb that test too.
			oidx := [4]int{ie, idx[o[0]], idx[o[1]], idx[o[2]]}
			val = Orient3DPerturbed([4]vec3.Vec{e, pts[o[0]], pts[o[1]], pts[o[2]]}, oidx)
		}
		if val == 0 {
			continue
		}
		// cofactor sign for dropping row k, column 3 of a 4x4 matrix.
		if k%2 == 0 {
			val = -val
		}
		return val
	}
	return 0
}
