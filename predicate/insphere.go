package predicate

import (
	"math"
	"math/big"

	"github.com/sunpia/tetgen/vec3"
)

// liftedRow computes (px, py, pz, px^2+py^2+pz^2) for p relative to the
// origin point e, the "lifted paraboloid" coordinates insphere is built
// from.
func liftedRow(p, e vec3.Vec) [4]float64 {
	x, y, z := p.X-e.X, p.Y-e.Y, p.Z-e.Z
	return [4]float64{x, y, z, x*x + y*y + z*z}
}

func det3x3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func minor3(rows [4][4]float64, skipRow int) [3][3]float64 {
	var m [3][3]float64
	r := 0
	for i := 0; i < 4; i++ {
		if i == skipRow {
			continue
		}
		m[r] = [3]float64{rows[i][1], rows[i][2], rows[i][3]}
		r++
	}
	return m
}

// InSphereFast evaluates the insphere determinant with plain float64
// arithmetic. Assuming Orient3D(a,b,c,d) > 0, a positive result means e
// lies strictly inside the circumsphere of abcd.
func InSphereFast(a, b, c, d, e vec3.Vec) float64 {
	rows := [4][4]float64{liftedRow(a, e), liftedRow(b, e), liftedRow(c, e), liftedRow(d, e)}
	var det float64
	sign := 1.0
	for i := 0; i < 4; i++ {
		det += sign * rows[i][0] * det3x3(minor3(rows, i))
		sign = -sign
	}
	return det
}

// inSphereErrBound mirrors InSphereFast's expression tree with every
// subtraction replaced by addition-of-absolute-values, a standard
// technique for bounding the forward rounding error of a determinant
// evaluation without deriving a tighter symbolic bound per term.
func inSphereErrBound(a, b, c, d, e vec3.Vec) float64 {
	rows := [4][4]float64{liftedRow(a, e), liftedRow(b, e), liftedRow(c, e), liftedRow(d, e)}
	absRows := [4][4]float64{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			absRows[i][j] = math.Abs(rows[i][j])
		}
	}
	absDet3 := func(m [3][3]float64) float64 {
		return m[0][0]*(m[1][1]*m[2][2]+m[1][2]*m[2][1]) +
			m[0][1]*(m[1][0]*m[2][2]+m[1][2]*m[2][0]) +
			m[0][2]*(m[1][0]*m[2][1]+m[1][1]*m[2][0])
	}
	minorAbs := func(skipRow int) [3][3]float64 {
		var m [3][3]float64
		r := 0
		for i := 0; i < 4; i++ {
			if i == skipRow {
				continue
			}
			m[r] = [3]float64{absRows[i][1], absRows[i][2], absRows[i][3]}
			r++
		}
		return m
	}
	var permanent float64
	for i := 0; i < 4; i++ {
		permanent += absRows[i][0] * absDet3(minorAbs(i))
	}
	return isperrboundA * permanent
}

func bigLiftedRow(p, e vec3.Vec) [4]*big.Float {
	x := bigSub(big64(p.X), big64(e.X))
	y := bigSub(big64(p.Y), big64(e.Y))
	z := bigSub(big64(p.Z), big64(e.Z))
	w := bigAdd(bigAdd(bigMul(x, x), bigMul(y, y)), bigMul(z, z))
	return [4]*big.Float{x, y, z, w}
}

func bigDet3x3(m [3][3]*big.Float) *big.Float {
	t1 := bigMul(m[0][0], bigSub(bigMul(m[1][1], m[2][2]), bigMul(m[1][2], m[2][1])))
	t2 := bigMul(m[0][1], bigSub(bigMul(m[1][0], m[2][2]), bigMul(m[1][2], m[2][0])))
	t3 := bigMul(m[0][2], bigSub(bigMul(m[1][0], m[2][1]), bigMul(m[1][1], m[2][0])))
	return bigAdd(bigSub(t1, t2), t3)
}

// InSphereExact evaluates the insphere determinant at bigPrec bits.
func InSphereExact(a, b, c, d, e vec3.Vec) *big.Float {
	rows := [4][4]*big.Float{bigLiftedRow(a, e), bigLiftedRow(b, e), bigLiftedRow(c, e), bigLiftedRow(d, e)}
	minor := func(skipRow int) [3][3]*big.Float {
		var m [3][3]*big.Float
		r := 0
		for i := 0; i < 4; i++ {
			if i == skipRow {
				continue
			}
			m[r] = [3]*big.Float{rows[i][1], rows[i][2], rows[i][3]}
			r++
		}
		return m
	}
	det := big64(0)
	s := 1.0
	for i := 0; i < 4; i++ {
		term := bigMul(rows[i][0], bigDet3x3(minor(i)))
		if s > 0 {
			det = bigAdd(det, term)
		} else {
			det = bigSub(det, term)
		}
		s = -s
	}
	return det
}

// InSphere returns the sign of the insphere determinant for (a,b,c,d,e),
// assuming Orient3D(a,b,c,d) > 0: positive means e is strictly inside the
// circumsphere of tetrahedron abcd, negative strictly outside, zero
// exactly on it (a geometric degeneracy requiring symbolic perturbation,
// see InSpherePerturbed).
func InSphere(a, b, c, d, e vec3.Vec) int {
	det := InSphereFast(a, b, c, d, e)
	errBound := inSphereErrBound(a, b, c, d, e)
	if det > errBound || det < -errBound {
		return signF(det)
	}
	return sign(InSphereExact(a, b, c, d, e))
}
