package field

// Fq2 is an element of Fq[u]/(u^2+1), represented as c0 + c1*u.
type Fq2 struct {
	C0, C1 Fq
}

// Fq2Zero returns the additive identity of Fq2.
func Fq2Zero() Fq2 { return Fq2{} }

// Fq2One returns the multiplicative identity of Fq2.
func Fq2One() Fq2 { return Fq2{C0: One()} }

// NewFq2 builds an Fq2 element from its two coefficients.
func NewFq2(c0, c1 Fq) Fq2 { return Fq2{C0: c0, C1: c1} }

// IsZero reports whether z is the additive identity.
func (z Fq2) IsZero() bool { return z.C0.IsZero() && z.C1.IsZero() }

// Equal reports whether z and other represent the same element.
func (z Fq2) Equal(other Fq2) bool { return z.C0.Equal(other.C0) && z.C1.Equal(other.C1) }

// Add returns z+other.
func (z Fq2) Add(other Fq2) Fq2 {
	return Fq2{C0: z.C0.Add(other.C0), C1: z.C1.Add(other.C1)}
}

// Sub returns z-other.
func (z Fq2) Sub(other Fq2) Fq2 {
	return Fq2{C0: z.C0.Sub(other.C0), C1: z.C1.Sub(other.C1)}
}

// Neg returns -z.
func (z Fq2) Neg() Fq2 {
	return Fq2{C0: z.C0.Neg(), C1: z.C1.Neg()}
}

// Conjugate returns the Fq2/Fq Galois conjugate c0 - c1*u, which coincides
// with z raised to the p-th power since p ≡ 3 (mod 4).
func (z Fq2) Conjugate() Fq2 {
	return Fq2{C0: z.C0, C1: z.C1.Neg()}
}

// Mul returns z*other: (a0+a1 u)(b0+b1 u) = (a0 b0 - a1 b1) + (a0 b1 + a1 b0) u.
func (z Fq2) Mul(other Fq2) Fq2 {
	a0b0 := z.C0.Mul(other.C0)
	a1b1 := z.C1.Mul(other.C1)
	a0b1 := z.C0.Mul(other.C1)
	a1b0 := z.C1.Mul(other.C0)
	return Fq2{C0: a0b0.Sub(a1b1), C1: a0b1.Add(a1b0)}
}

// Square returns z*z.
func (z Fq2) Square() Fq2 {
	a0a1 := z.C0.Mul(z.C1)
	sum := z.C0.Add(z.C1)
	diff := z.C0.Sub(z.C1)
	return Fq2{C0: sum.Mul(diff), C1: a0a1.Add(a0a1)}
}

// MulByFq multiplies every coefficient of z by a base-field scalar.
func (z Fq2) MulByFq(c Fq) Fq2 {
	return Fq2{C0: z.C0.Mul(c), C1: z.C1.Mul(c)}
}

// Inverse returns z^-1 using (a0+a1 u)^-1 = (a0-a1 u) / (a0^2+a1^2).
func (z Fq2) Inverse() (Fq2, error) {
	if z.IsZero() {
		return Fq2{}, ErrNotInvertible
	}
	norm := z.C0.Square().Add(z.C1.Square())
	normInv, err := norm.Inverse()
	if err != nil {
		return Fq2{}, err
	}
	return Fq2{C0: z.C0.Mul(normInv), C1: z.C1.Neg().Mul(normInv)}, nil
}

// FrobeniusPower returns z^(p^power). On Fq2 this is conjugation for odd
// powers and the identity for even powers, since conjugation has order 2.
func (z Fq2) FrobeniusPower(power int) Fq2 {
	if power%2 == 0 {
		return z
	}
	return z.Conjugate()
}
