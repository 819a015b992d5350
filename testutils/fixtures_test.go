package testutils

import (
	"math/big"
	"testing"

	"github.com/openzktool/groth16bn254/verifier"
)

// TestGenerateSquareFixtureVerifies is the cross-check this whole package
// exists for: a proof gnark itself accepts must also be accepted by this
// module's from-scratch verifier.
func TestGenerateSquareFixtureVerifies(t *testing.T) {
	fixture, err := GenerateSquareFixture(9, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := verifier.Verify(fixture.VK, fixture.Proof, fixture.PublicInputs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected a genuine gnark-generated proof to verify")
	}
}

// TestGenerateSquareFixtureRejectsWrongPublicInput confirms the proof is
// bound to its public input: swapping in a different claimed X must fail.
func TestGenerateSquareFixtureRejectsWrongPublicInput(t *testing.T) {
	fixture, err := GenerateSquareFixture(9, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tampered := append([]*big.Int{}, fixture.PublicInputs...)
	tampered[0] = big.NewInt(16)

	result, err := verifier.Verify(fixture.VK, fixture.Proof, tampered)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Fatalf("expected proof to be rejected against a mismatched public input")
	}
}
