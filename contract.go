// Package groth16bn254 ties the pure verifier (package verifier), the
// stateful nullifier/credential registry (package registry) and the wire
// format in wire.go into the single Contract type a host ledger embeds.
package groth16bn254

import (
	"github.com/rs/zerolog"

	"github.com/openzktool/groth16bn254/registry"
	"github.com/openzktool/groth16bn254/setup"
	"github.com/openzktool/groth16bn254/verifier"
)

// Contract is the deployable unit: a VKSource deciding how the verifying key
// is obtained, and the registry holding admin identity, nullifier set and
// credential commitments. The zero value is not ready for use; construct
// with New.
type Contract struct {
	vk       setup.VKSource
	registry *registry.Registry
}

// New returns a Contract backed by vkSource. Call Initialize before any
// other entry point.
func New(vkSource setup.VKSource, log zerolog.Logger) *Contract {
	return &Contract{vk: vkSource, registry: registry.New(log)}
}

// Initialize is the one-shot entry point that sets the admin identity.
func (c *Contract) Initialize(admin registry.Bytes32) error {
	return c.registry.Initialize(admin)
}

// VerifyProof is the `verify_proof` entry point. vk is the per-call
// verifying key; it is ignored if the Contract's VKSource is Embedded, and
// required (non-nil) if it is PerCall. Every malformed-input case (bad
// wire encoding, off-curve or off-subgroup point, non-canonical coordinate,
// zero commitment, reused nullifier, failed pairing check) resolves to
// {Valid: false}, never an error; only a VKSource misconfiguration or an
// uninitialized registry is reported as an error.
func (c *Contract) VerifyProof(ledger registry.Ledger, vk *verifier.VerifyingKey,
	proof ProofBytes, encryptedPayload []byte) (registry.VerificationResult, error) {

	resolvedVK, err := c.vk.Resolve(vk)
	if err != nil {
		return registry.VerificationResult{}, err
	}

	if proof.Commitment == (registry.Bytes32{}) {
		return registry.VerificationResult{Valid: false, Timestamp: ledger.Timestamp()}, nil
	}

	decodedProof, publicInputs, err := proof.Decode()
	if err != nil {
		return registry.VerificationResult{Valid: false, Timestamp: ledger.Timestamp()}, nil
	}

	return c.registry.VerifyAndConsume(ledger, resolvedVK, decodedProof, proof.Nullifier,
		publicInputs, encryptedPayload)
}

// IsNullifierUsed is the `is_nullifier_used` entry point.
func (c *Contract) IsNullifierUsed(nullifier registry.Bytes32) bool {
	return c.registry.IsNullifierUsed(nullifier)
}

// GetNullifierBlock is the `get_nullifier_block` entry point.
func (c *Contract) GetNullifierBlock(nullifier registry.Bytes32) (uint64, bool) {
	return c.registry.GetNullifierBlock(nullifier)
}

// RegisterCredential is the `register_credential` entry point.
func (c *Contract) RegisterCredential(ledger registry.Ledger, caller, commitment registry.Bytes32) error {
	return c.registry.RegisterCredential(ledger, caller, commitment)
}

// HasCredential is the `has_credential` entry point.
func (c *Contract) HasCredential(commitment registry.Bytes32) bool {
	return c.registry.HasCredential(commitment)
}
