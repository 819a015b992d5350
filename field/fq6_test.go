package field

import (
	"math/big"
	"math/rand"
	"testing"
)

func rndFq6(r *rand.Rand) Fq6 {
	return Fq6{C0: rndFq2(r), C1: rndFq2(r), C2: rndFq2(r)}
}

// fq6Pow computes z^e by repeated squaring, for cross-checking
// FrobeniusPower against direct exponentiation by p^k.
func fq6Pow(z Fq6, e *big.Int) Fq6 {
	result := Fq6One()
	base := z
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
	}
	return result
}

func TestFq6MulInverse(t *testing.T) {
	r := rand.New(rand.NewSource(20))
	for i := 0; i < 50; i++ {
		a := rndFq6(r)
		if a.IsZero() {
			continue
		}
		inv, err := a.Inverse()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !a.Mul(inv).Equal(Fq6One()) {
			t.Errorf("a*a^-1 != 1 in Fq6")
		}
	}
}

func TestFq6SquareMatchesMul(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for i := 0; i < 50; i++ {
		a := rndFq6(r)
		if !a.Square().Equal(a.Mul(a)) {
			t.Errorf("a.Square() != a.Mul(a)")
		}
	}
}

func TestFq6Distributive(t *testing.T) {
	r := rand.New(rand.NewSource(22))
	for i := 0; i < 30; i++ {
		a, b, c := rndFq6(r), rndFq6(r), rndFq6(r)
		lhs := a.Mul(b.Add(c))
		rhs := a.Mul(b).Add(a.Mul(c))
		if !lhs.Equal(rhs) {
			t.Errorf("a*(b+c) != a*b+a*c in Fq6")
		}
	}
}

func TestFq6FrobeniusOrderSix(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	a := rndFq6(r)
	if !a.FrobeniusPower(0).Equal(a) {
		t.Errorf("frobenius power 0 must be identity")
	}
	if !a.FrobeniusPower(6).Equal(a) {
		t.Errorf("frobenius power 6 must return to identity")
	}
	// applying it once six times must match the direct power-6 call
	b := a
	for i := 0; i < 6; i++ {
		b = b.frobeniusOnce()
	}
	if !b.Equal(a) {
		t.Errorf("six iterations of frobeniusOnce must be identity")
	}
}

// TestFq6FrobeniusIsHomomorphism checks π(a)·π(b) = π(a·b) across several
// powers.
func TestFq6FrobeniusIsHomomorphism(t *testing.T) {
	r := rand.New(rand.NewSource(24))
	for i := 0; i < 20; i++ {
		a, b := rndFq6(r), rndFq6(r)
		for power := 1; power <= 5; power++ {
			lhs := a.FrobeniusPower(power).Mul(b.FrobeniusPower(power))
			rhs := a.Mul(b).FrobeniusPower(power)
			if !lhs.Equal(rhs) {
				t.Errorf("power %d: pi(a)*pi(b) != pi(a*b)", power)
			}
		}
	}
}

// TestFq6FrobeniusMatchesDirectExponentiation cross-checks FrobeniusPower
// against literal exponentiation by p and p^2.
func TestFq6FrobeniusMatchesDirectExponentiation(t *testing.T) {
	r := rand.New(rand.NewSource(25))
	p := Modulus()
	p2 := new(big.Int).Mul(p, p)
	a := rndFq6(r)
	if !a.FrobeniusPower(1).Equal(fq6Pow(a, p)) {
		t.Errorf("frobenius power 1 != a^p")
	}
	if !a.FrobeniusPower(2).Equal(fq6Pow(a, p2)) {
		t.Errorf("frobenius power 2 != a^(p^2)")
	}
}
