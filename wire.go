package groth16bn254

import (
	"math/big"

	"github.com/openzktool/groth16bn254/curve"
	"github.com/openzktool/groth16bn254/registry"
	"github.com/openzktool/groth16bn254/verifier"
)

// G1PointBytes is a G1 point on the wire: two concatenated 32-byte
// big-endian coordinates. An all-zero encoding decodes to the point at
// infinity.
type G1PointBytes struct {
	X, Y [32]byte
}

// G2PointBytes is a G2 point on the wire: an X and a Y coordinate, each a
// pair of 32-byte big-endian Fq2 limbs, c0 (real) before c1 (imaginary).
type G2PointBytes struct {
	X0, X1, Y0, Y1 [32]byte
}

// ProofBytes is a Groth16 proof plus its application-level commitment and
// nullifier tags, in the fixed-width big-endian layout this module sends
// and receives on the wire.
type ProofBytes struct {
	Commitment   registry.Bytes32
	Nullifier    registry.Bytes32
	PiA          G1PointBytes
	PiB          G2PointBytes
	PiC          G1PointBytes
	PublicInputs [][32]byte
}

// VerifyingKeyBytes is a Groth16 verifying key in wire form: Alpha in G1,
// Beta/Gamma/Delta in G2, and one G1 point per public input (IC[0] is the
// constant term).
type VerifyingKeyBytes struct {
	Alpha G1PointBytes
	Beta  G2PointBytes
	Gamma G2PointBytes
	Delta G2PointBytes
	IC    []G1PointBytes
}

// decodeG1 parses a wire-format G1 point.
func decodeG1(p G1PointBytes) (curve.G1Affine, error) {
	return curve.G1FromBytes(p.X, p.Y)
}

// decodeG2 parses a wire-format G2 point.
func decodeG2(p G2PointBytes) (curve.G2Affine, error) {
	return curve.G2FromBytes(p.X0, p.X1, p.Y0, p.Y1)
}

// Decode parses pb into a verifier.Proof and its public inputs. Any
// malformed point (non-canonical coordinate, off-curve, off-subgroup) is
// reported as an error here; callers that need to treat a malformed proof
// as an ordinary rejection rather than a fatal error (see Contract.VerifyProof)
// must handle that at the call site, not here.
func (pb ProofBytes) Decode() (verifier.Proof, []*big.Int, error) {
	a, err := decodeG1(pb.PiA)
	if err != nil {
		return verifier.Proof{}, nil, err
	}
	b, err := decodeG2(pb.PiB)
	if err != nil {
		return verifier.Proof{}, nil, err
	}
	c, err := decodeG1(pb.PiC)
	if err != nil {
		return verifier.Proof{}, nil, err
	}
	inputs := make([]*big.Int, len(pb.PublicInputs))
	for i, x := range pb.PublicInputs {
		inputs[i] = new(big.Int).SetBytes(x[:])
	}
	return verifier.Proof{A: a, B: b, C: c}, inputs, nil
}

// Decode parses vkb into a verifier.VerifyingKey.
func (vkb VerifyingKeyBytes) Decode() (verifier.VerifyingKey, error) {
	alpha, err := decodeG1(vkb.Alpha)
	if err != nil {
		return verifier.VerifyingKey{}, err
	}
	beta, err := decodeG2(vkb.Beta)
	if err != nil {
		return verifier.VerifyingKey{}, err
	}
	gamma, err := decodeG2(vkb.Gamma)
	if err != nil {
		return verifier.VerifyingKey{}, err
	}
	delta, err := decodeG2(vkb.Delta)
	if err != nil {
		return verifier.VerifyingKey{}, err
	}
	ic := make([]curve.G1Affine, len(vkb.IC))
	for i, p := range vkb.IC {
		point, err := decodeG1(p)
		if err != nil {
			return verifier.VerifyingKey{}, err
		}
		ic[i] = point
	}
	return verifier.VerifyingKey{Alpha: alpha, Beta: beta, Gamma: gamma, Delta: delta, IC: ic}, nil
}

// EncodeVerifyingKey serializes vk into its wire form, the inverse of
// VerifyingKeyBytes.Decode.
func EncodeVerifyingKey(vk verifier.VerifyingKey) VerifyingKeyBytes {
	alphaX, alphaY := vk.Alpha.Bytes()
	betaX0, betaX1, betaY0, betaY1 := vk.Beta.Bytes()
	gammaX0, gammaX1, gammaY0, gammaY1 := vk.Gamma.Bytes()
	deltaX0, deltaX1, deltaY0, deltaY1 := vk.Delta.Bytes()

	ic := make([]G1PointBytes, len(vk.IC))
	for i, p := range vk.IC {
		x, y := p.Bytes()
		ic[i] = G1PointBytes{X: x, Y: y}
	}

	return VerifyingKeyBytes{
		Alpha: G1PointBytes{X: alphaX, Y: alphaY},
		Beta:  G2PointBytes{X0: betaX0, X1: betaX1, Y0: betaY0, Y1: betaY1},
		Gamma: G2PointBytes{X0: gammaX0, X1: gammaX1, Y0: gammaY0, Y1: gammaY1},
		Delta: G2PointBytes{X0: deltaX0, X1: deltaX1, Y0: deltaY0, Y1: deltaY1},
		IC:    ic,
	}
}

// EncodeProof serializes a verified proof plus its application tags back
// into wire form, the inverse of ProofBytes.Decode. Each public input is
// left-padded with zeros to 32 bytes; a value wider than 32 bytes makes
// big.Int.FillBytes panic.
func EncodeProof(commitment, nullifier registry.Bytes32, proof verifier.Proof,
	publicInputs []*big.Int) ProofBytes {

	aX, aY := proof.A.Bytes()
	bX0, bX1, bY0, bY1 := proof.B.Bytes()
	cX, cY := proof.C.Bytes()

	inputs := make([][32]byte, len(publicInputs))
	for i, x := range publicInputs {
		var b [32]byte
		x.FillBytes(b[:])
		inputs[i] = b
	}

	return ProofBytes{
		Commitment:   commitment,
		Nullifier:    nullifier,
		PiA:          G1PointBytes{X: aX, Y: aY},
		PiB:          G2PointBytes{X0: bX0, X1: bX1, Y0: bY0, Y1: bY1},
		PiC:          G1PointBytes{X: cX, Y: cY},
		PublicInputs: inputs,
	}
}
