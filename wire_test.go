package groth16bn254

import (
	"math/big"
	"testing"

	"github.com/openzktool/groth16bn254/curve"
	"github.com/openzktool/groth16bn254/registry"
	"github.com/openzktool/groth16bn254/verifier"
)

func TestVerifyingKeyRoundTrip(t *testing.T) {
	vk := verifier.VerifyingKey{
		Alpha: curve.G1Generator(),
		Beta:  curve.G2Generator(),
		Gamma: curve.G2Generator(),
		Delta: curve.G2Generator(),
		IC:    []curve.G1Affine{curve.G1Generator(), curve.G1Generator().ScalarMul(big.NewInt(7))},
	}
	encoded := EncodeVerifyingKey(vk)
	decoded, err := encoded.Decode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decoded.Alpha.Equal(vk.Alpha) || !decoded.Beta.Equal(vk.Beta) ||
		!decoded.Gamma.Equal(vk.Gamma) || !decoded.Delta.Equal(vk.Delta) {
		t.Fatalf("round-tripped base points do not match")
	}
	if len(decoded.IC) != len(vk.IC) {
		t.Fatalf("expected %d IC points, got %d", len(vk.IC), len(decoded.IC))
	}
	for i := range vk.IC {
		if !decoded.IC[i].Equal(vk.IC[i]) {
			t.Errorf("IC[%d] did not round-trip", i)
		}
	}
}

func TestProofRoundTrip(t *testing.T) {
	proof := verifier.Proof{
		A: curve.G1Generator(),
		B: curve.G2Generator(),
		C: curve.G1Generator().ScalarMul(big.NewInt(3)),
	}
	commitment := registry.Bytes32{1, 2, 3}
	nullifier := registry.Bytes32{4, 5, 6}
	publicInputs := []*big.Int{big.NewInt(1), big.NewInt(42)}

	encoded := EncodeProof(commitment, nullifier, proof, publicInputs)
	decodedProof, decodedInputs, err := encoded.Decode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if encoded.Commitment != commitment || encoded.Nullifier != nullifier {
		t.Fatalf("commitment/nullifier did not round-trip")
	}
	if !decodedProof.A.Equal(proof.A) || !decodedProof.B.Equal(proof.B) || !decodedProof.C.Equal(proof.C) {
		t.Fatalf("proof points did not round-trip")
	}
	if len(decodedInputs) != len(publicInputs) {
		t.Fatalf("expected %d public inputs, got %d", len(publicInputs), len(decodedInputs))
	}
	for i := range publicInputs {
		if decodedInputs[i].Cmp(publicInputs[i]) != 0 {
			t.Errorf("public input %d did not round-trip: got %v, want %v", i, decodedInputs[i], publicInputs[i])
		}
	}
}

func TestProofDecodeRejectsOffCurvePoint(t *testing.T) {
	pb := ProofBytes{
		PiA: G1PointBytes{X: [32]byte{31: 1}, Y: [32]byte{31: 1}}, // (1,1) is not on y^2=x^3+3
		PiB: G2PointBytes{},
		PiC: G1PointBytes{},
	}
	if _, _, err := pb.Decode(); err == nil {
		t.Errorf("expected an error decoding an off-curve point")
	}
}

func TestProofDecodeAcceptsInfinityEncoding(t *testing.T) {
	pb := ProofBytes{}
	proof, inputs, err := pb.Decode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !proof.A.Infinity || !proof.B.Infinity || !proof.C.Infinity {
		t.Errorf("expected all-zero wire encoding to decode to infinity points")
	}
	if len(inputs) != 0 {
		t.Errorf("expected no public inputs")
	}
}
