// Package testutils generates genuine Groth16/BN254 fixtures with
// gnark/gnark-crypto for this module's own tests: a real proof over a real
// circuit, produced by an off-chain prover, for cross-checking the verifier
// against something it did not generate itself.
//
// Every fixture is re-parsed through this module's own curve package before
// use, rather than trusted as-is from gnark-crypto's encoding: the point of
// a from-scratch verifier is to not simply defer to an upstream library's
// notion of "on curve" and "in subgroup".
package testutils

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark/backend/groth16"
	groth16bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/openzktool/groth16bn254/curve"
	"github.com/openzktool/groth16bn254/verifier"
)

// SquareCircuit proves knowledge of Y such that Y*Y == X, with X the sole
// public input. It exists only to give the Groth16 setup/prove pipeline
// something to compile; its shape is otherwise arbitrary.
type SquareCircuit struct {
	X frontend.Variable `gnark:",public"`
	Y frontend.Variable
}

// Define implements frontend.Circuit.
func (c *SquareCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(api.Mul(c.Y, c.Y), c.X)
	return nil
}

// Fixture bundles a verifying key, a proof, and the public inputs it was
// generated against, already converted into this module's own types.
type Fixture struct {
	VK           verifier.VerifyingKey
	Proof        verifier.Proof
	PublicInputs []*big.Int
}

// GenerateSquareFixture compiles SquareCircuit, runs a real Groth16 setup
// (the proving/verifying keys are generated entirely from the circuit
// itself, with no external SRS), proves y*y == x, and converts the result
// into this module's own verifier types. It returns an error if gnark itself
// would reject the resulting proof, which would indicate a fixture bug
// rather than anything about this module's verifier.
func GenerateSquareFixture(x, y int64) (*Fixture, error) {
	var circuit SquareCircuit
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		return nil, fmt.Errorf("testutils: compiling circuit: %v", err)
	}

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, fmt.Errorf("testutils: groth16 setup: %v", err)
	}

	assignment := SquareCircuit{X: x, Y: y}
	witness, err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("testutils: building witness: %v", err)
	}

	proof, err := groth16.Prove(ccs, pk, witness)
	if err != nil {
		return nil, fmt.Errorf("testutils: proving: %v", err)
	}

	publicWitness, err := witness.Public()
	if err != nil {
		return nil, fmt.Errorf("testutils: extracting public witness: %v", err)
	}
	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		return nil, fmt.Errorf("testutils: gnark rejected its own proof: %v", err)
	}

	ourVK, err := convertVerifyingKey(vk)
	if err != nil {
		return nil, fmt.Errorf("testutils: converting verifying key: %v", err)
	}
	ourProof, err := convertProof(proof)
	if err != nil {
		return nil, fmt.Errorf("testutils: converting proof: %v", err)
	}

	return &Fixture{VK: ourVK, Proof: ourProof, PublicInputs: []*big.Int{big.NewInt(x)}}, nil
}

// convertVerifyingKey type-asserts down to gnark's concrete BN254 Groth16
// verifying key and re-parses every point through curve.G1FromBytes/
// G2FromBytes.
func convertVerifyingKey(vk groth16.VerifyingKey) (verifier.VerifyingKey, error) {
	concrete, ok := vk.(*groth16bn254.VerifyingKey)
	if !ok {
		return verifier.VerifyingKey{}, fmt.Errorf("testutils: unexpected verifying key type %T", vk)
	}

	alpha, err := convertG1(concrete.G1.Alpha)
	if err != nil {
		return verifier.VerifyingKey{}, fmt.Errorf("alpha: %v", err)
	}
	beta, err := convertG2(concrete.G2.Beta)
	if err != nil {
		return verifier.VerifyingKey{}, fmt.Errorf("beta: %v", err)
	}
	gamma, err := convertG2(concrete.G2.Gamma)
	if err != nil {
		return verifier.VerifyingKey{}, fmt.Errorf("gamma: %v", err)
	}
	delta, err := convertG2(concrete.G2.Delta)
	if err != nil {
		return verifier.VerifyingKey{}, fmt.Errorf("delta: %v", err)
	}

	ic := make([]curve.G1Affine, len(concrete.G1.K))
	for i, p := range concrete.G1.K {
		point, err := convertG1(p)
		if err != nil {
			return verifier.VerifyingKey{}, fmt.Errorf("ic[%d]: %v", i, err)
		}
		ic[i] = point
	}

	return verifier.VerifyingKey{Alpha: alpha, Beta: beta, Gamma: gamma, Delta: delta, IC: ic}, nil
}

func convertProof(proof groth16.Proof) (verifier.Proof, error) {
	concrete, ok := proof.(*groth16bn254.Proof)
	if !ok {
		return verifier.Proof{}, fmt.Errorf("testutils: unexpected proof type %T", proof)
	}

	a, err := convertG1(concrete.Ar)
	if err != nil {
		return verifier.Proof{}, fmt.Errorf("a: %v", err)
	}
	b, err := convertG2(concrete.Bs)
	if err != nil {
		return verifier.Proof{}, fmt.Errorf("b: %v", err)
	}
	c, err := convertG1(concrete.Krs)
	if err != nil {
		return verifier.Proof{}, fmt.Errorf("c: %v", err)
	}
	return verifier.Proof{A: a, B: b, C: c}, nil
}

// convertG1 re-parses a gnark-crypto bn254 G1 point's raw (uncompressed)
// big-endian encoding through this module's own curve package.
func convertG1(p bn254.G1Affine) (curve.G1Affine, error) {
	raw := p.RawBytes()
	var x, y [32]byte
	copy(x[:], raw[0:32])
	copy(y[:], raw[32:64])
	return curve.G1FromBytes(x, y)
}

// convertG2 re-parses a gnark-crypto bn254 G2 point, whose raw encoding
// concatenates X.A1, X.A0, Y.A1, Y.A0 (c1 before c0, the reverse of this
// module's own wire convention), so each coordinate's two limbs are put back
// into c0-then-c1 order here.
func convertG2(p bn254.G2Affine) (curve.G2Affine, error) {
	raw := p.RawBytes()
	var x0, x1, y0, y1 [32]byte
	copy(x1[:], raw[0:32])
	copy(x0[:], raw[32:64])
	copy(y1[:], raw[64:96])
	copy(y0[:], raw[96:128])
	return curve.G2FromBytes(x0, x1, y0, y1)
}
