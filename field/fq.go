// Package field implements the BN254 (alt_bn128) prime field Fq and its
// quadratic/sextic/dodecic tower extensions Fq2, Fq6, Fq12.
//
// Fq wraps a normalized big.Int value in [0, p). Reducing every arithmetic
// result through big.Int's own modular routines avoids hand-rolled carry
// propagation bugs in the 256-bit limb arithmetic that this field would
// otherwise require, at the cost of the speed a fixed-width Montgomery
// representation would give; correctness has priority over that speed here.
package field

import (
	"errors"
	"math/big"
)

// ErrNotReduced is returned when parsing a big-endian byte encoding whose
// integer value is not strictly less than the field modulus.
var ErrNotReduced = errors.New("field: value is not reduced modulo p")

// ErrNotInvertible is returned by Inverse on the zero element.
var ErrNotInvertible = errors.New("field: zero element has no inverse")

// modulus is the BN254 base field prime:
// p = 21888242871839275222246405745257275088696311157297823662689037894645226208583
var modulus, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)

var pMinus2 = new(big.Int).Sub(modulus, big.NewInt(2))

// Fq is an element of the BN254 base field, always held reduced modulo p.
type Fq struct {
	v *big.Int
}

func newFq(v *big.Int) Fq {
	return Fq{v: new(big.Int).Mod(v, modulus)}
}

// Zero returns the additive identity.
func Zero() Fq { return Fq{v: big.NewInt(0)} }

// One returns the multiplicative identity.
func One() Fq { return Fq{v: big.NewInt(1)} }

// val returns z's underlying big.Int, substituting zero for a nil
// zero-value Fq so that the type remains usable without an explicit
// constructor (e.g. as a struct field's zero value).
func (z Fq) val() *big.Int {
	if z.v == nil {
		return big.NewInt(0)
	}
	return z.v
}

// IsZero reports whether z is the additive identity.
func (z Fq) IsZero() bool {
	return z.val().Sign() == 0
}

// Equal reports whether z and other represent the same field element.
func (z Fq) Equal(other Fq) bool {
	return z.val().Cmp(other.val()) == 0
}

// FromBytes parses a 32-byte big-endian integer and converts it to Fq.
// It rejects values that are not strictly less than the modulus, which is
// mandatory for any value coming from an untrusted proof or key.
func FromBytes(b [32]byte) (Fq, error) {
	v := new(big.Int).SetBytes(b[:])
	if v.Cmp(modulus) >= 0 {
		return Fq{}, ErrNotReduced
	}
	return Fq{v: v}, nil
}

// Bytes serializes z to its canonical 32-byte big-endian representation.
func (z Fq) Bytes() [32]byte {
	var out [32]byte
	z.val().FillBytes(out[:])
	return out
}

// Add returns z+other mod p.
func (z Fq) Add(other Fq) Fq {
	return newFq(new(big.Int).Add(z.val(), other.val()))
}

// Sub returns z-other mod p.
func (z Fq) Sub(other Fq) Fq {
	return newFq(new(big.Int).Sub(z.val(), other.val()))
}

// Neg returns -z mod p; Neg(0) = 0.
func (z Fq) Neg() Fq {
	if z.IsZero() {
		return z
	}
	return newFq(new(big.Int).Neg(z.val()))
}

// Mul returns z*other mod p.
func (z Fq) Mul(other Fq) Fq {
	return newFq(new(big.Int).Mul(z.val(), other.val()))
}

// Square returns z*z mod p.
func (z Fq) Square() Fq { return z.Mul(z) }

// Pow returns z^e mod p.
func (z Fq) Pow(e *big.Int) Fq {
	return Fq{v: new(big.Int).Exp(z.val(), e, modulus)}
}

// Inverse returns z^-1 mod p via Fermat's little theorem (z^(p-2)).
// It reports ErrNotInvertible for the zero element.
func (z Fq) Inverse() (Fq, error) {
	if z.IsZero() {
		return Fq{}, ErrNotInvertible
	}
	return z.Pow(pMinus2), nil
}

// MulByConst multiplies z by a small non-negative integer constant, used for
// the fixed coefficients (2, 3, 9, ...) that recur in the curve equation and
// the sextic non-residue.
func MulByConst(z Fq, c uint64) Fq {
	return z.Mul(Fq{v: new(big.Int).SetUint64(c)})
}

// Modulus returns the BN254 base field prime p.
func Modulus() *big.Int { return new(big.Int).Set(modulus) }

// FromBigInt converts a big.Int into an Fq element reduced modulo p, for use
// by package-level constant tables (Frobenius coefficients, curve
// generators, the twist non-residue) computed from decimal literals.
func FromBigInt(v *big.Int) Fq {
	return newFq(v)
}

// FromUint64 converts a small unsigned constant into an Fq element.
func FromUint64(v uint64) Fq {
	return Fq{v: new(big.Int).SetUint64(v)}
}
