package curve

import (
	"math/big"

	"github.com/openzktool/groth16bn254/field"
)

// g2B is the G2 twist curve equation constant b' = 3/(9+u), computed once
// from the sextic non-residue rather than hard-coded, so the derivation is
// auditable from the field package's own constants.
var g2B = func() field.Fq2 {
	xi := field.NewFq2(field.FromUint64(9), field.One())
	xiInv, err := xi.Inverse()
	if err != nil {
		panic("curve: sextic non-residue must be invertible")
	}
	return xiInv.MulByFq(field.FromUint64(3))
}()

// G2Affine is a point on the BN254 G2 twist curve in affine coordinates.
type G2Affine struct {
	X, Y     field.Fq2
	Infinity bool
}

// G2Identity returns the point at infinity, the additive identity of G2.
func G2Identity() G2Affine { return G2Affine{Infinity: true} }

// G2Generator returns the standard BN254 G2 generator.
func G2Generator() G2Affine {
	x0, _ := new(big.Int).SetString("10857046999023057135944570762232829481370756359578518086990519993285655852781", 10)
	x1, _ := new(big.Int).SetString("11559732032986387107991004021392285783925812861821192530917403151452391805634", 10)
	y0, _ := new(big.Int).SetString("8495653923123431417604973247489272438418190587263600148770280649306958101930", 10)
	y1, _ := new(big.Int).SetString("4082367875863433681332203403145435568316851327593401208105741076214120093531", 10)
	return G2Affine{
		X: field.NewFq2(field.FromBigInt(x0), field.FromBigInt(x1)),
		Y: field.NewFq2(field.FromBigInt(y0), field.FromBigInt(y1)),
	}
}

// G2FromBytes parses an X and Y coordinate, each encoded as two concatenated
// 32-byte big-endian Fq limbs (c0 then c1), and verifies the result lies in
// the r-torsion subgroup. The all-zero encoding is accepted as infinity.
func G2FromBytes(x0b, x1b, y0b, y1b [32]byte) (G2Affine, error) {
	if x0b == ([32]byte{}) && x1b == ([32]byte{}) && y0b == ([32]byte{}) && y1b == ([32]byte{}) {
		return G2Identity(), nil
	}
	x0, err := field.FromBytes(x0b)
	if err != nil {
		return G2Affine{}, err
	}
	x1, err := field.FromBytes(x1b)
	if err != nil {
		return G2Affine{}, err
	}
	y0, err := field.FromBytes(y0b)
	if err != nil {
		return G2Affine{}, err
	}
	y1, err := field.FromBytes(y1b)
	if err != nil {
		return G2Affine{}, err
	}
	p := G2Affine{X: field.NewFq2(x0, x1), Y: field.NewFq2(y0, y1)}
	if !p.IsOnCurve() {
		return G2Affine{}, ErrNotOnCurve
	}
	if !p.IsInSubgroup() {
		return G2Affine{}, ErrNotInSubgroup
	}
	return p, nil
}

// Bytes serializes p's X and Y coordinates, each as two concatenated 32-byte
// big-endian Fq limbs (c0 then c1).
func (p G2Affine) Bytes() (x0b, x1b, y0b, y1b [32]byte) {
	if p.Infinity {
		return
	}
	x0b, x1b = p.X.C0.Bytes(), p.X.C1.Bytes()
	y0b, y1b = p.Y.C0.Bytes(), p.Y.C1.Bytes()
	return
}

// IsOnCurve reports whether p satisfies y^2 = x^3+b'.
func (p G2Affine) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	lhs := p.Y.Square()
	rhs := p.X.Square().Mul(p.X).Add(g2B)
	return lhs.Equal(rhs)
}

// IsInSubgroup reports whether p lies in the order-r subgroup of the twist
// curve. Unlike G1, G2's cofactor is not 1, so on-curve membership alone is
// not sufficient: this performs the scalar multiplication [r]p and checks
// the result is the identity.
func (p G2Affine) IsInSubgroup() bool {
	if p.Infinity {
		return true
	}
	return p.ScalarMul(GroupOrder()).Infinity
}

// Neg returns -p.
func (p G2Affine) Neg() G2Affine {
	if p.Infinity {
		return p
	}
	return G2Affine{X: p.X, Y: p.Y.Neg()}
}

// Equal reports whether p and other are the same point.
func (p G2Affine) Equal(other G2Affine) bool {
	if p.Infinity || other.Infinity {
		return p.Infinity == other.Infinity
	}
	return p.X.Equal(other.X) && p.Y.Equal(other.Y)
}

// Add returns p+other using the standard affine chord-and-tangent group law
// over Fq2.
func (p G2Affine) Add(other G2Affine) G2Affine {
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
		return G2Identity()
	}
	num := other.Y.Sub(p.Y)
	den := other.X.Sub(p.X)
	denInv, err := den.Inverse()
	if err != nil {
		return G2Identity()
	}
	lambda := num.Mul(denInv)
	x3 := lambda.Square().Sub(p.X).Sub(other.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return G2Affine{X: x3, Y: y3}
}

// Double returns p+p.
func (p G2Affine) Double() G2Affine {
	if p.Infinity || p.Y.IsZero() {
		return G2Identity()
	}
	num := p.X.Square().MulByFq(field.FromUint64(3))
	den := p.Y.MulByFq(field.FromUint64(2))
	denInv, err := den.Inverse()
	if err != nil {
		return G2Identity()
	}
	lambda := num.Mul(denInv)
	two := p.X.MulByFq(field.FromUint64(2))
	x3 := lambda.Square().Sub(two)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return G2Affine{X: x3, Y: y3}
}

// ScalarMul returns [k]p via left-to-right double-and-add.
func (p G2Affine) ScalarMul(k *big.Int) G2Affine {
	if k.Sign() == 0 || p.Infinity {
		return G2Identity()
	}
	result := G2Identity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Double()
		if k.Bit(i) == 1 {
			result = result.Add(p)
		}
	}
	return result
}
