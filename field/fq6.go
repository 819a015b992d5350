package field

import "math/big"

// nonResidue is xi = 9+u, the sextic non-residue used to build
// Fq6 = Fq2[v]/(v^3-xi).
var nonResidue = Fq2{C0: FromBigInt(big.NewInt(9)), C1: One()}

// fq6FrobC1, fq6FrobC2 are the p-power Frobenius multipliers for Fq6's v and
// v^2 coefficients: xi^((p-1)/3) and xi^(2(p-1)/3) respectively. Sourced from
// the standard BN254 tower constants.
var (
	fq6FrobC1 = mustFq2(
		"21575463638280843010398324269430826099269044274347216827212613867836435027261",
		"10307601595873709700152284273816112264069230130616436755625194854815875713954",
	)
	fq6FrobC2 = mustFq2(
		"2581911344467009335267311115468803099551665605076196740867805258568234346338",
		"19937756971775647987995932169929341994314640652964949448313374472400716661030",
	)
)

func mustFq2(a0, a1 string) Fq2 {
	x0, ok0 := new(big.Int).SetString(a0, 10)
	x1, ok1 := new(big.Int).SetString(a1, 10)
	if !ok0 || !ok1 {
		panic("field: invalid Fq2 constant literal")
	}
	return Fq2{C0: FromBigInt(x0), C1: FromBigInt(x1)}
}

// Fq6 is an element of Fq2[v]/(v^3-xi), represented as c0 + c1*v + c2*v^2.
type Fq6 struct {
	C0, C1, C2 Fq2
}

// Fq6Zero returns the additive identity of Fq6.
func Fq6Zero() Fq6 { return Fq6{} }

// Fq6One returns the multiplicative identity of Fq6.
func Fq6One() Fq6 { return Fq6{C0: Fq2One()} }

// NewFq6 builds an Fq6 element from its three coefficients.
func NewFq6(c0, c1, c2 Fq2) Fq6 { return Fq6{C0: c0, C1: c1, C2: c2} }

// IsZero reports whether z is the additive identity.
func (z Fq6) IsZero() bool { return z.C0.IsZero() && z.C1.IsZero() && z.C2.IsZero() }

// Equal reports whether z and other represent the same element.
func (z Fq6) Equal(other Fq6) bool {
	return z.C0.Equal(other.C0) && z.C1.Equal(other.C1) && z.C2.Equal(other.C2)
}

// Add returns z+other.
func (z Fq6) Add(other Fq6) Fq6 {
	return Fq6{C0: z.C0.Add(other.C0), C1: z.C1.Add(other.C1), C2: z.C2.Add(other.C2)}
}

// Sub returns z-other.
func (z Fq6) Sub(other Fq6) Fq6 {
	return Fq6{C0: z.C0.Sub(other.C0), C1: z.C1.Sub(other.C1), C2: z.C2.Sub(other.C2)}
}

// Neg returns -z.
func (z Fq6) Neg() Fq6 {
	return Fq6{C0: z.C0.Neg(), C1: z.C1.Neg(), C2: z.C2.Neg()}
}

// mulByNonResidue returns a*xi, shifting a up one degree of v; used in the
// cubic-extension multiplication's reduction step (v^3 = xi).
func mulByNonResidue(a Fq2) Fq2 {
	return a.Mul(nonResidue)
}

// Mul returns z*other via the standard Karatsuba-style cubic extension
// product, reducing v^3 -> xi, v^4 -> xi*v.
func (z Fq6) Mul(other Fq6) Fq6 {
	a0, a1, a2 := z.C0, z.C1, z.C2
	b0, b1, b2 := other.C0, other.C1, other.C2

	t0 := a0.Mul(b0)
	t1 := a1.Mul(b1)
	t2 := a2.Mul(b2)

	// c0 = t0 + xi*((a1+a2)(b1+b2) - t1 - t2)
	c0 := a1.Add(a2).Mul(b1.Add(b2)).Sub(t1).Sub(t2)
	c0 = mulByNonResidue(c0).Add(t0)

	// c1 = (a0+a1)(b0+b1) - t0 - t1 + xi*t2
	c1 := a0.Add(a1).Mul(b0.Add(b1)).Sub(t0).Sub(t1)
	c1 = c1.Add(mulByNonResidue(t2))

	// c2 = (a0+a2)(b0+b2) - t0 - t2 + t1
	c2 := a0.Add(a2).Mul(b0.Add(b2)).Sub(t0).Sub(t2).Add(t1)

	return Fq6{C0: c0, C1: c1, C2: c2}
}

// Square returns z*z.
func (z Fq6) Square() Fq6 { return z.Mul(z) }

// MulByFq2 multiplies every coefficient of z by an Fq2 scalar.
func (z Fq6) MulByFq2(c Fq2) Fq6 {
	return Fq6{C0: z.C0.Mul(c), C1: z.C1.Mul(c), C2: z.C2.Mul(c)}
}

// Inverse returns z^-1, following the standard cubic-extension inversion
// formula built from the same t0/t1/t2 cross terms as Mul.
func (z Fq6) Inverse() (Fq6, error) {
	if z.IsZero() {
		return Fq6{}, ErrNotInvertible
	}
	a0, a1, a2 := z.C0, z.C1, z.C2

	t0 := a0.Square().Sub(mulByNonResidue(a1.Mul(a2)))
	t1 := mulByNonResidue(a2.Square()).Sub(a0.Mul(a1))
	t2 := a1.Square().Sub(a0.Mul(a2))

	norm := mulByNonResidue(a1.Mul(t2)).Add(a0.Mul(t0)).Add(mulByNonResidue(a2.Mul(t1)))
	normInv, err := norm.Inverse()
	if err != nil {
		return Fq6{}, err
	}
	return Fq6{C0: t0.Mul(normInv), C1: t1.Mul(normInv), C2: t2.Mul(normInv)}, nil
}

// frobeniusOnce applies the p-th power Frobenius map directly (no
// iteration), used as the generator that FrobeniusPower composes.
func (z Fq6) frobeniusOnce() Fq6 {
	return Fq6{
		C0: z.C0.Conjugate(),
		C1: z.C1.Conjugate().Mul(fq6FrobC1),
		C2: z.C2.Conjugate().Mul(fq6FrobC2),
	}
}

// FrobeniusPower returns z^(p^power) for power in [0,5], computed by
// composing the single p-th-power map power times: Frobenius is a ring
// automorphism, so iterating it k times realizes x^(p^k) exactly, without
// needing a separately-derived constant for every power.
func (z Fq6) FrobeniusPower(power int) Fq6 {
	power = ((power % 6) + 6) % 6
	result := z
	for i := 0; i < power; i++ {
		result = result.frobeniusOnce()
	}
	return result
}
