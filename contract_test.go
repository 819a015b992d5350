package groth16bn254

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/openzktool/groth16bn254/curve"
	"github.com/openzktool/groth16bn254/registry"
	"github.com/openzktool/groth16bn254/setup"
	"github.com/openzktool/groth16bn254/verifier"
)

type fakeLedger struct {
	seq uint64
	ts  uint64
}

func (l *fakeLedger) Sequence() uint64  { return l.seq }
func (l *fakeLedger) Timestamp() uint64 { return l.ts }

// trivialVK mirrors the degenerate fixture used in verifier/groth16_test.go
// and registry/registry_test.go: zero public inputs, every base point the
// identity except Delta, which is a real generator. Paired with an
// all-infinity proof the verification equation degenerates to 1=1.
func trivialVK() verifier.VerifyingKey {
	return verifier.VerifyingKey{
		Alpha: curve.G1Identity(),
		Beta:  curve.G2Identity(),
		Gamma: curve.G2Identity(),
		Delta: curve.G2Generator(),
		IC:    []curve.G1Affine{curve.G1Identity()},
	}
}

func trivialProofBytes(commitment, nullifier registry.Bytes32) ProofBytes {
	p := verifier.Proof{A: curve.G1Identity(), B: curve.G2Identity(), C: curve.G1Identity()}
	return EncodeProof(commitment, nullifier, p, nil)
}

func TestContractEmbeddedVKEndToEnd(t *testing.T) {
	vk := trivialVK()
	c := New(setup.NewEmbedded(vk), zerolog.Nop())
	admin := registry.Bytes32{1}
	if err := c.Initialize(admin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ledger := &fakeLedger{seq: 10, ts: 100}
	commitment := registry.Bytes32{2}
	nullifier := registry.Bytes32{3}
	proof := trivialProofBytes(commitment, nullifier)

	result, err := c.VerifyProof(ledger, nil, proof, []byte("payload"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected trivial degenerate proof to verify")
	}
	if !c.IsNullifierUsed(nullifier) {
		t.Errorf("expected nullifier to be recorded")
	}
	block, ok := c.GetNullifierBlock(nullifier)
	if !ok || block != 10 {
		t.Errorf("expected nullifier block 10, got %d (ok=%v)", block, ok)
	}

	// replay is rejected
	result, err = c.VerifyProof(&fakeLedger{seq: 11, ts: 200}, nil, proof, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Errorf("expected replay to be rejected")
	}
}

func TestContractRejectsZeroCommitment(t *testing.T) {
	c := New(setup.NewEmbedded(trivialVK()), zerolog.Nop())
	if err := c.Initialize(registry.Bytes32{1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ledger := &fakeLedger{seq: 1, ts: 1}
	proof := trivialProofBytes(registry.Bytes32{}, registry.Bytes32{5})

	result, err := c.VerifyProof(ledger, nil, proof, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Errorf("expected zero commitment to be rejected")
	}
}

func TestContractPerCallRequiresVK(t *testing.T) {
	c := New(setup.NewPerCall(), zerolog.Nop())
	if err := c.Initialize(registry.Bytes32{1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ledger := &fakeLedger{seq: 1, ts: 1}
	proof := trivialProofBytes(registry.Bytes32{9}, registry.Bytes32{9})

	if _, err := c.VerifyProof(ledger, nil, proof, nil); err == nil {
		t.Errorf("expected an error when no VK is supplied to a PerCall contract")
	}

	vk := trivialVK()
	result, err := c.VerifyProof(ledger, &vk, proof, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected per-call VK to verify the trivial proof")
	}
}

func TestContractRegisterCredentialAdminGate(t *testing.T) {
	c := New(setup.NewEmbedded(trivialVK()), zerolog.Nop())
	admin := registry.Bytes32{1}
	other := registry.Bytes32{2}
	if err := c.Initialize(admin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ledger := &fakeLedger{seq: 1, ts: 777}
	commitment := registry.Bytes32{6}

	if err := c.RegisterCredential(ledger, other, commitment); err == nil {
		t.Errorf("expected non-admin registration to fail")
	}
	if c.HasCredential(commitment) {
		t.Errorf("credential must not be recorded after a rejected registration")
	}

	if err := c.RegisterCredential(ledger, admin, commitment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.HasCredential(commitment) {
		t.Errorf("expected credential to be recorded after admin registration")
	}
}
