package pairing

import (
	"fmt"

	"github.com/openzktool/groth16bn254/curve"
	"github.com/openzktool/groth16bn254/field"
)

// Pair computes the optimal ate pairing e(p, q) in Fq12. e(infinity, Q) and
// e(P, infinity) are both defined to be 1.
func Pair(p curve.G1Affine, q curve.G2Affine) (field.Fq12, error) {
	if p.Infinity || q.Infinity {
		return field.Fq12One(), nil
	}
	f := millerLoop(p.X, p.Y, q.X, q.Y)
	result, err := finalExponentiation(f)
	if err != nil {
		return field.Fq12{}, fmt.Errorf("pairing: final exponentiation: %v", err)
	}
	return result, nil
}

// MultiPairingCheck reports whether prod_i e(ps[i], qs[i]) == 1 in Fq12,
// which is the multi-pairing product form the Groth16 verification equation
// reduces to. It returns an error only on a malformed input (mismatched
// slice lengths or a degenerate final exponentiation), never for a pairing
// product that is simply not 1 — that case is a normal "false" result.
func MultiPairingCheck(ps []curve.G1Affine, qs []curve.G2Affine) (bool, error) {
	if len(ps) != len(qs) {
		return false, fmt.Errorf("pairing: mismatched point counts: %d G1 points, %d G2 points", len(ps), len(qs))
	}
	acc := field.Fq12One()
	for i := range ps {
		if ps[i].Infinity || qs[i].Infinity {
			continue
		}
		acc = acc.Mul(millerLoop(ps[i].X, ps[i].Y, qs[i].X, qs[i].Y))
	}
	result, err := finalExponentiation(acc)
	if err != nil {
		return false, fmt.Errorf("pairing: final exponentiation: %v", err)
	}
	return result.Equal(field.Fq12One()), nil
}
