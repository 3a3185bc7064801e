package predicate

import (
	"math"

	"github.com/sunpia/tetgen/vec3"
)

// Volume returns the (unsigned) volume of tetrahedron abcd.
func Volume(a, b, c, d vec3.Vec) float64 {
	return math.Abs(SignedVolume(a, b, c, d))
}

// SignedVolume returns the signed volume of tetrahedron abcd; positive
// exactly when Orient3DFast(a,b,c,d) > 0.
func SignedVolume(a, b, c, d vec3.Vec) float64 {
	return Orient3DFast(a, b, c, d) / 6.0
}

// edgeLengths returns the six edge lengths of tetrahedron abcd in the
// fixed order ab, ac, ad, bc, bd, cd.
func edgeLengths(a, b, c, d vec3.Vec) [6]float64 {
	return [6]float64{
		a.Sub(b).Length(),
		a.Sub(c).Length(),
		a.Sub(d).Length(),
		b.Sub(c).Length(),
		b.Sub(d).Length(),
		c.Sub(d).Length(),
	}
}

// ShortestEdge returns the length of tetrahedron abcd's shortest edge.
func ShortestEdge(a, b, c, d vec3.Vec) float64 {
	e := edgeLengths(a, b, c, d)
	min := e[0]
	for _, l := range e[1:] {
		if l < min {
			min = l
		}
	}
	return min
}

// LongestEdge returns the length of tetrahedron abcd's longest edge.
func LongestEdge(a, b, c, d vec3.Vec) float64 {
	e := edgeLengths(a, b, c, d)
	max := e[0]
	for _, l := range e[1:] {
		if l > max {
			max = l
		}
	}
	return max
}

// Circumcenter returns the center of the sphere through a,b,c,d. The
// tetrahedron must be non-degenerate (nonzero volume).
func Circumcenter(a, b, c, d vec3.Vec) (vec3.Vec, bool) {
	// Solve the linear system placing the center equidistant from all
	// four points, using a relative to a local origin for conditioning.
	pa := b.Sub(a)
	pb := c.Sub(a)
	pc := d.Sub(a)

	// [2*pa; 2*pb; 2*pc] * center = [|pa|^2; |pb|^2; |pc|^2]
	m := [3][3]float64{
		{2 * pa.X, 2 * pa.Y, 2 * pa.Z},
		{2 * pb.X, 2 * pb.Y, 2 * pb.Z},
		{2 * pc.X, 2 * pc.Y, 2 * pc.Z},
	}
	rhs := [3]float64{pa.Length2(), pb.Length2(), pc.Length2()}

	det := det3x3(m)
	if det == 0 {
		return vec3.Vec{}, false
	}

	solve := func(col int) float64 {
		n := m
		n[0][col], n[1][col], n[2][col] = rhs[0], rhs[1], rhs[2]
		return det3x3(n) / det
	}

	center := vec3.Vec{X: solve(0), Y: solve(1), Z: solve(2)}
	return a.Add(center), true
}

// Circumradius returns the circumradius of tetrahedron abcd.
func Circumradius(a, b, c, d vec3.Vec) (float64, bool) {
	c0, ok := Circumcenter(a, b, c, d)
	if !ok {
		return 0, false
	}
	return c0.Sub(a).Length(), true
}

// RadiusEdgeRatio returns circumradius / shortest-edge-length for
// tetrahedron abcd, the quality metric refinement bounds.
func RadiusEdgeRatio(a, b, c, d vec3.Vec) (float64, bool) {
	r, ok := Circumradius(a, b, c, d)
	if !ok {
		return 0, false
	}
	se := ShortestEdge(a, b, c, d)
	if se == 0 {
		return math.Inf(1), true
	}
	return r / se, true
}

// AspectRatio is an alias for RadiusEdgeRatio: circumradius / shortest
// edge, the metric this kernel uses throughout.
func AspectRatio(a, b, c, d vec3.Vec) (float64, bool) {
	return RadiusEdgeRatio(a, b, c, d)
}

// DihedralAngles returns the six dihedral angles (radians) of
// tetrahedron abcd, along edges ab, ac, ad, bc, bd, cd, measured as the
// angle between the two faces sharing that edge.
func DihedralAngles(a, b, c, d vec3.Vec) [6]float64 {
	// The dihedral angle along edge (p,q), with the other two vertices
	// r,s, is the angle between e x (r-p) and e x (s-p), the normals of
	// pqr and pqs that each point toward the other face's side.
	dihedral := func(p, q, r, s vec3.Vec) float64 {
		e := q.Sub(p)
		n1 := e.Cross(r.Sub(p))
		n2 := e.Cross(s.Sub(p))
		cosTheta := n1.Dot(n2) / (n1.Length() * n2.Length())
		cosTheta = math.Max(-1, math.Min(1, cosTheta))
		return math.Acos(cosTheta)
	}
	return [6]float64{
		dihedral(a, b, c, d),
		dihedral(a, c, b, d),
		dihedral(a, d, b, c),
		dihedral(b, c, a, d),
		dihedral(b, d, a, c),
		dihedral(c, d, a, b),
	}
}

// MinDihedral returns the smallest dihedral angle of tetrahedron abcd, in
// radians.
func MinDihedral(a, b, c, d vec3.Vec) float64 {
	angles := DihedralAngles(a, b, c, d)
	min := angles[0]
	for _, v := range angles[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// IsZeroVolume reports whether tetrahedron abcd is degenerate (zero or
// numerically negligible volume), and returns the volume computed along
// the way. The tolerance follows the relative test described at
// https://math.stackexchange.com/a/4709610 : volume is compared against
// the product of paired edge-length sums, which is scale invariant.
func IsZeroVolume(a, b, c, d vec3.Vec) (bool, float64) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)

	nab := ab.Length()
	ncd := d.Sub(c).Length()
	nbd := d.Sub(b).Length()
	nbc := c.Sub(b).Length()
	nac := ac.Length()
	nad := ad.Length()

	if nab == 0 || ncd == 0 || nbd == 0 || nbc == 0 || nac == 0 || nad == 0 {
		return true, 0
	}

	volume := (1.0 / 6.0) * math.Abs(ab.Cross(ac).Dot(ad))
	denom := (nab + ncd) * (nac + nbd) * (nad + nbc)

	const tolerance = 480.0
	rho := tolerance * volume / denom

	return rho < 1, volume
}

// PointInTet reports whether p lies inside (or on the boundary of)
// tetrahedron abcd, via four Orient3D tests. The tetrahedron is assumed
// to be positively oriented (Orient3D(a,b,c,d) > 0).
func PointInTet(a, b, c, d, p vec3.Vec) bool {
	return Orient3D(a, b, c, p) >= 0 &&
		Orient3D(a, d, b, p) >= 0 &&
		Orient3D(a, c, d, p) >= 0 &&
		Orient3D(b, d, c, p) >= 0
}
