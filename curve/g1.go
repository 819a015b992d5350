// Package curve implements the BN254 G1 and G2 elliptic curve groups in
// affine coordinates: G1 over the base field Fq (curve y^2 = x^3+3), and G2
// over the quadratic extension Fq2 (the sextic twist, y^2 = x^3+b').
package curve

import (
	"errors"
	"math/big"

	"github.com/openzktool/groth16bn254/field"
)

// ErrNotOnCurve is returned when a point's coordinates do not satisfy the
// curve equation.
var ErrNotOnCurve = errors.New("curve: point is not on curve")

// ErrNotInSubgroup is returned when a point lies on the curve but outside
// the prime-order r-torsion subgroup used by the pairing.
var ErrNotInSubgroup = errors.New("curve: point is not in the r-torsion subgroup")

// groupOrder is r, the BN254 scalar field order (also the order of both G1
// and the r-torsion subgroup of G2's curve).
var groupOrder, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// GroupOrder returns r, the order of the G1/G2 pairing-friendly subgroups.
func GroupOrder() *big.Int { return new(big.Int).Set(groupOrder) }

// g1B is the G1 curve equation constant: y^2 = x^3 + 3.
var g1B = field.FromUint64(3)

// G1Affine is a point on the BN254 G1 curve in affine coordinates.
type G1Affine struct {
	X, Y     field.Fq
	Infinity bool
}

// G1Identity returns the point at infinity, the additive identity of G1.
func G1Identity() G1Affine { return G1Affine{Infinity: true} }

// G1Generator returns the standard BN254 G1 generator (1, 2).
func G1Generator() G1Affine {
	return G1Affine{X: field.FromUint64(1), Y: field.FromUint64(2)}
}

// G1FromBytes parses two 32-byte big-endian field elements as a G1 point and
// verifies it lies on the curve. The all-zero encoding is accepted as the
// point at infinity, matching the convention used by gnark's Groth16 proof
// serialization.
func G1FromBytes(xb, yb [32]byte) (G1Affine, error) {
	if xb == ([32]byte{}) && yb == ([32]byte{}) {
		return G1Identity(), nil
	}
	x, err := field.FromBytes(xb)
	if err != nil {
		return G1Affine{}, err
	}
	y, err := field.FromBytes(yb)
	if err != nil {
		return G1Affine{}, err
	}
	p := G1Affine{X: x, Y: y}
	if !p.IsOnCurve() {
		return G1Affine{}, ErrNotOnCurve
	}
	return p, nil
}

// Bytes serializes p as two 32-byte big-endian field elements.
func (p G1Affine) Bytes() (xb, yb [32]byte) {
	if p.Infinity {
		return [32]byte{}, [32]byte{}
	}
	return p.X.Bytes(), p.Y.Bytes()
}

// IsOnCurve reports whether p satisfies y^2 = x^3+3. The point at infinity
// is trivially on the curve.
func (p G1Affine) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	lhs := p.Y.Square()
	rhs := p.X.Square().Mul(p.X).Add(g1B)
	return lhs.Equal(rhs)
}

// IsInSubgroup reports whether p lies in the order-r subgroup. G1's cofactor
// is 1, so every curve point (including infinity) already has order dividing
// r; this check exists so callers don't need to special-case G1 vs G2.
func (p G1Affine) IsInSubgroup() bool {
	return p.IsOnCurve()
}

// Neg returns -p.
func (p G1Affine) Neg() G1Affine {
	if p.Infinity {
		return p
	}
	return G1Affine{X: p.X, Y: p.Y.Neg()}
}

// Equal reports whether p and other are the same point.
func (p G1Affine) Equal(other G1Affine) bool {
	if p.Infinity || other.Infinity {
		return p.Infinity == other.Infinity
	}
	return p.X.Equal(other.X) && p.Y.Equal(other.Y)
}

// Add returns p+other using the standard affine chord-and-tangent group law.
func (p G1Affine) Add(other G1Affine) G1Affine {
	if p.Infinity {
		return other
	}
	if other.Infinity {
		return p
	}
	if p.X.Equal(other.X) {
		if p.Y.Equal(other.Y) && !p.Y.IsZero() {
			return p.Double()
		}
		// p == -other
		return G1Identity()
	}
	// lambda = (y2-y1)/(x2-x1)
	num := other.Y.Sub(p.Y)
	den := other.X.Sub(p.X)
	denInv, err := den.Inverse()
	if err != nil {
		// den is zero only when x1==x2, already handled above.
		return G1Identity()
	}
	lambda := num.Mul(denInv)
	x3 := lambda.Square().Sub(p.X).Sub(other.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return G1Affine{X: x3, Y: y3}
}

// Double returns p+p.
func (p G1Affine) Double() G1Affine {
	if p.Infinity || p.Y.IsZero() {
		return G1Identity()
	}
	// lambda = 3x^2 / 2y
	num := field.MulByConst(p.X.Square(), 3)
	den := field.MulByConst(p.Y, 2)
	denInv, err := den.Inverse()
	if err != nil {
		return G1Identity()
	}
	lambda := num.Mul(denInv)
	x3 := lambda.Square().Sub(field.MulByConst(p.X, 2))
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return G1Affine{X: x3, Y: y3}
}

// ScalarMul returns [k]p via left-to-right double-and-add.
func (p G1Affine) ScalarMul(k *big.Int) G1Affine {
	if k.Sign() == 0 || p.Infinity {
		return G1Identity()
	}
	result := G1Identity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Double()
		if k.Bit(i) == 1 {
			result = result.Add(p)
		}
	}
	return result
}
