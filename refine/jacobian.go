package refine

import "github.com/sunpia/tetgen/vec3"

// jacobianDeterminant computes the isoparametric Jacobian determinant of
// a 4-node tetrahedral element at its single Gauss point (the centroid,
// barycentric coordinates 1/4 each) — the same quantity a finite-element
// solver checks before accepting an element. Ported from the teacher's
// isBad (render/march3fe.go), generalized from a volume-rendering
// reject test into a refinement-time degeneracy check: a tetrahedron
// whose Jacobian determinant is not safely positive will make a poor
// finite element even if its radius-edge ratio looks fine, so refine
// flags it for splitting too.
func jacobianDeterminant(a, b, c, d vec3.Vec) float64 {
	xl := [3][4]float64{
		{a.X, b.X, c.X, d.X},
		{a.Y, b.Y, c.Y, d.Y},
		{a.Z, b.Z, c.Z, d.Z},
	}

	// Local derivatives of the linear tetrahedral shape functions are
	// constant over the element, so xs is independent of the Gauss
	// point chosen.
	shp := [3][4]float64{
		{-1, 1, 0, 0},
		{-1, 0, 1, 0},
		{-1, 0, 0, 1},
	}

	var xs [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				xs[i][j] += xl[i][k] * shp[j][k]
			}
		}
	}

	return xs[0][0]*(xs[1][1]*xs[2][2]-xs[1][2]*xs[2][1]) -
		xs[0][1]*(xs[1][0]*xs[2][2]-xs[1][2]*xs[2][0]) +
		xs[0][2]*(xs[1][0]*xs[2][1]-xs[1][1]*xs[2][0])
}

// isDegenerateElement reports whether a,b,c,d's Jacobian determinant is
// below the threshold CalculiX itself uses to reject an element.
func isDegenerateElement(a, b, c, d vec3.Vec) bool {
	return jacobianDeterminant(a, b, c, d) < 1e-20
}
