package predicate

import (
	"math"
	"math/big"

	"github.com/sunpia/tetgen/vec3"
)

// Orient3DFast evaluates the orient3d determinant with plain float64
// arithmetic, returning six times the signed volume of tetrahedron abcd.
// Positive means d lies behind the oriented plane abc (the convention
// used throughout this module: a valid, non-inverted tetrahedron has
// Orient3D(a,b,c,d) > 0).
func Orient3DFast(a, b, c, d vec3.Vec) float64 {
	adx, ady, adz := a.X-d.X, a.Y-d.Y, a.Z-d.Z
	bdx, bdy, bdz := b.X-d.X, b.Y-d.Y, b.Z-d.Z
	cdx, cdy, cdz := c.X-d.X, c.Y-d.Y, c.Z-d.Z

	return adx*(bdy*cdz-bdz*cdy) -
		ady*(bdx*cdz-bdz*cdx) +
		adz*(bdx*cdy-bdy*cdx)
}

func orient3dErrBound(a, b, c, d vec3.Vec) float64 {
	adx, ady, adz := math.Abs(a.X-d.X), math.Abs(a.Y-d.Y), math.Abs(a.Z-d.Z)
	bdx, bdy, bdz := math.Abs(b.X-d.X), math.Abs(b.Y-d.Y), math.Abs(b.Z-d.Z)
	cdx, cdy, cdz := math.Abs(c.X-d.X), math.Abs(c.Y-d.Y), math.Abs(c.Z-d.Z)

	permanent := adx*(bdy*cdz+bdz*cdy) +
		ady*(bdx*cdz+bdz*cdx) +
		adz*(bdx*cdy+bdy*cdx)

	return o3derrboundA * permanent
}

// Orient3DExact evaluates the same determinant with bigPrec bits of
// precision, used once the fast path's error bound can't rule out zero.
func Orient3DExact(a, b, c, d vec3.Vec) *big.Float {
	adx := bigSub(big64(a.X), big64(d.X))
	ady := bigSub(big64(a.Y), big64(d.Y))
	adz := bigSub(big64(a.Z), big64(d.Z))
	bdx := bigSub(big64(b.X), big64(d.X))
	bdy := bigSub(big64(b.Y), big64(d.Y))
	bdz := bigSub(big64(b.Z), big64(d.Z))
	cdx := bigSub(big64(c.X), big64(d.X))
	cdy := bigSub(big64(c.Y), big64(d.Y))
	cdz := bigSub(big64(c.Z), big64(d.Z))

	t1 := bigMul(adx, bigSub(bigMul(bdy, cdz), bigMul(bdz, cdy)))
	t2 := bigMul(ady, bigSub(bigMul(bdx, cdz), bigMul(bdz, cdx)))
	t3 := bigMul(adz, bigSub(bigMul(bdx, cdy), bigMul(bdy, cdx)))

	return bigAdd(bigSub(t1, t2), t3)
}

// Orient3D returns the sign of the orient3d determinant for abcd, falling
// back through the adaptive tiers described at the package level. A
// return of 0 is a genuine geometric degeneracy (a,b,c,d are exactly
// coplanar) and the caller must apply symbolic perturbation (see
// Orient3DPerturbed) before relying on the result.
func Orient3D(a, b, c, d vec3.Vec) int {
	det := Orient3DFast(a, b, c, d)
	errBound := orient3dErrBound(a, b, c, d)
	if det > errBound || det < -errBound {
		return signF(det)
	}
	return sign(Orient3DExact(a, b, c, d))
}
