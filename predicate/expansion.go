// Package predicate implements the sign-exact geometric predicates
// (orient3d, insphere) that the rest of the kernel builds on, plus the
// derived geometric primitives (volume, circumcenter, dihedral angles,
// aspect ratio) used by constraint recovery and refinement.
//
// Both core predicates follow the classic Shewchuk recipe: evaluate a
// fast floating-point determinant, bound its forward error, and only pay
// for an arbitrary-precision re-evaluation when the fast result falls
// inside the error bound. No library in the retrieval pack offers
// multi-component expansion or arbitrary-precision arithmetic, so the
// exact tier is built on the standard library's math/big.
package predicate

import "math/big"

// bigPrec is the mantissa precision (in bits) used for the exact tier.
// The orient3d and insphere determinants are degree-3 and degree-4
// polynomials respectively in inputs with a 53-bit mantissa; 512 bits
// leaves enormous headroom so that every intermediate sum and product is
// computed without any further rounding.
const bigPrec = 512

// epsilon is the float64 machine epsilon, 2^-53.
const epsilon = 1.1102230246251565e-16

// o3derrboundA bounds the forward error of the fast orient3d evaluation,
// relative to the permanent (sum of absolute values of the products that
// make up the determinant). This is the standard constant from adaptive
// predicate literature.
const o3derrboundA = (7.0 + 56.0*epsilon) * epsilon

// isperrboundA is the insphere analogue of o3derrboundA.
const isperrboundA = (16.0 + 224.0*epsilon) * epsilon

func big64(x float64) *big.Float {
	return new(big.Float).SetPrec(bigPrec).SetFloat64(x)
}

func bigMul(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(bigPrec).Mul(a, b)
}

func bigSub(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(bigPrec).Sub(a, b)
}

func bigAdd(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(bigPrec).Add(a, b)
}

// sign returns -1, 0 or +1 for a big.Float computed on bigPrec bits. The
// result is taken as exact: bigPrec was chosen with enough headroom that
// rounding inside the exact tier cannot flip a true sign.
func sign(x *big.Float) int {
	return x.Sign()
}

// signF returns -1, 0, +1 for a float64.
func signF(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
