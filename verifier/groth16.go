// Package verifier implements Groth16 proof verification over BN254: the
// public-input linear combination in G1 followed by the four-pairing
// product check e(-A,B)*e(alpha,beta)*e(L,gamma)*e(C,delta) = 1.
//
// Verify never panics and never propagates an error for a malformed or
// forged proof: every precondition failure and every failed pairing check
// collapses to the same {Valid: false} verdict, matching a contract
// verifier's call boundary, where an untrusted caller's bad input must
// never abort the transaction.
package verifier

import (
	"fmt"
	"math/big"

	"github.com/openzktool/groth16bn254/curve"
	"github.com/openzktool/groth16bn254/pairing"
)

// VerifyingKey is a Groth16 verifying key for a fixed circuit: Alpha, Beta
// and the Gamma/Delta pairing bases, plus one G1 point per public input
// (IC[0] is the constant term).
type VerifyingKey struct {
	Alpha curve.G1Affine
	Beta  curve.G2Affine
	Gamma curve.G2Affine
	Delta curve.G2Affine
	IC    []curve.G1Affine
}

// Proof is a Groth16 proof: A, C in G1 and B in G2.
type Proof struct {
	A curve.G1Affine
	B curve.G2Affine
	C curve.G1Affine
}

// Result is the outcome of one Verify call.
type Result struct {
	Valid bool
}

// Verify checks a Groth16 proof against vk and publicInputs. It returns
// {Valid: false} for any malformed input (wrong public-input count,
// non-canonical scalar, a point failing its curve/subgroup check) as well
// as for a well-formed but unsatisfying proof; it returns a non-nil error
// only if the pairing computation itself cannot complete (which well-formed,
// subgroup-checked inputs never trigger).
func Verify(vk VerifyingKey, proof Proof, publicInputs []*big.Int) (Result, error) {
	if len(publicInputs)+1 != len(vk.IC) {
		return Result{Valid: false}, nil
	}
	if !proof.A.IsOnCurve() || !proof.C.IsOnCurve() || !vk.Alpha.IsOnCurve() {
		return Result{Valid: false}, nil
	}
	if !proof.B.IsOnCurve() || !proof.B.IsInSubgroup() {
		return Result{Valid: false}, nil
	}
	if !vk.Beta.IsOnCurve() || !vk.Beta.IsInSubgroup() {
		return Result{Valid: false}, nil
	}
	if !vk.Gamma.IsOnCurve() || !vk.Gamma.IsInSubgroup() {
		return Result{Valid: false}, nil
	}
	if !vk.Delta.IsOnCurve() || !vk.Delta.IsInSubgroup() {
		return Result{Valid: false}, nil
	}
	for _, ic := range vk.IC {
		if !ic.IsOnCurve() {
			return Result{Valid: false}, nil
		}
	}

	r := curve.GroupOrder()
	for _, x := range publicInputs {
		if x.Sign() < 0 || x.Cmp(r) >= 0 {
			return Result{Valid: false}, nil
		}
	}

	l := linearCombination(vk.IC, publicInputs)

	ok, err := pairing.MultiPairingCheck(
		[]curve.G1Affine{proof.A.Neg(), vk.Alpha, l, proof.C},
		[]curve.G2Affine{proof.B, vk.Beta, vk.Gamma, vk.Delta},
	)
	if err != nil {
		return Result{Valid: false}, fmt.Errorf("verifier: pairing check: %v", err)
	}
	return Result{Valid: ok}, nil
}

// linearCombination computes L = IC[0] + sum_i publicInputs[i]*IC[i+1].
func linearCombination(ic []curve.G1Affine, publicInputs []*big.Int) curve.G1Affine {
	l := ic[0]
	for i, x := range publicInputs {
		l = l.Add(ic[i+1].ScalarMul(x))
	}
	return l
}
