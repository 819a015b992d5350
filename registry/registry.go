package registry

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/rs/zerolog"

	"github.com/openzktool/groth16bn254/verifier"
)

// Bytes32 is a 256-bit identifier: a nullifier, a credential commitment, or
// an admin address, matching the wire format's Bytes32 convention.
type Bytes32 [32]byte

// ErrAlreadyInitialized is returned by Initialize when the registry already
// has an admin. The second call to initialize a deployed contract is a
// programming or replay error, not a user-facing "invalid proof" outcome.
var ErrAlreadyInitialized = errors.New("registry: already initialized")

// ErrNotInitialized is returned by VerifyAndConsume and RegisterCredential
// before the one-shot initialize call has run. The read-only lookups return
// no error and report an empty registry.
var ErrNotInitialized = errors.New("registry: not initialized")

// ErrUnauthorized is returned by RegisterCredential when the caller does not
// match the stored admin. Per the contract's error model this aborts the
// call; it is never folded into a {valid: false} verdict.
var ErrUnauthorized = errors.New("registry: unauthorized")

// Ledger is the host-provided source of the two pieces of external state the
// registry needs but does not own: the current ledger sequence number (used
// as the nullifier's recorded "block") and the current wall-clock timestamp.
type Ledger interface {
	Sequence() uint64
	Timestamp() uint64
}

// VerificationResult is the outcome of verify_and_consume: whether the proof
// was accepted, and the timestamp at which the check was performed.
type VerificationResult struct {
	Valid     bool
	Timestamp uint64
}

// Registry holds the admin identity, the set of spent nullifiers, and the
// set of registered credential commitments. The zero value is not ready for
// use; construct with New.
type Registry struct {
	mu sync.Mutex

	initialized bool
	admin       Bytes32

	nullifiers  map[Bytes32]uint64
	credentials map[Bytes32]uint64

	log zerolog.Logger
}

// New returns an uninitialized Registry. Call Initialize before any other
// operation.
func New(log zerolog.Logger) *Registry {
	return &Registry{
		nullifiers:  make(map[Bytes32]uint64),
		credentials: make(map[Bytes32]uint64),
		log:         log.With().Str("component", "registry").Logger(),
	}
}

// Initialize sets the admin identity. It is one-shot: a second call returns
// ErrAlreadyInitialized and leaves the registry untouched.
func (r *Registry) Initialize(admin Bytes32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return fmt.Errorf("registry: initialize: %w", ErrAlreadyInitialized)
	}
	r.admin = admin
	r.initialized = true
	r.log.Info().Hex("admin", admin[:]).Msg("init")
	return nil
}

// VerifyAndConsume checks a Groth16 proof and, if it is valid and its
// nullifier has not been seen before, atomically records the nullifier
// against the ledger's current sequence and logs a verified event.
//
// A reused nullifier, a malformed input, or an unsatisfying pairing check
// all collapse to {Valid: false}, never an error: only a registry-level
// precondition (not yet initialized) or a genuine pairing-computation
// failure is reported as an error, per the three-outcome error model this
// wraps around verifier.Verify.
func (r *Registry) VerifyAndConsume(ledger Ledger, vk verifier.VerifyingKey,
	proof verifier.Proof, nullifier Bytes32, publicInputs []*big.Int,
	encryptedPayload []byte) (VerificationResult, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return VerificationResult{}, fmt.Errorf("registry: verify_and_consume: %w", ErrNotInitialized)
	}

	now := ledger.Timestamp()

	if nullifier == (Bytes32{}) {
		r.log.Info().Msg("verify_proof: rejected zero nullifier")
		return VerificationResult{Valid: false, Timestamp: now}, nil
	}
	if _, used := r.nullifiers[nullifier]; used {
		r.log.Info().Hex("nullifier", nullifier[:]).Msg("verify_proof: nullifier already used")
		return VerificationResult{Valid: false, Timestamp: now}, nil
	}

	result, err := verifier.Verify(vk, proof, publicInputs)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("registry: verify_and_consume: %v", err)
	}
	if !result.Valid {
		r.log.Info().Hex("nullifier", nullifier[:]).Msg("verify_proof: invalid proof")
		return VerificationResult{Valid: false, Timestamp: now}, nil
	}

	r.nullifiers[nullifier] = ledger.Sequence()
	r.log.Info().Hex("nullifier", nullifier[:]).Int("payload_len", len(encryptedPayload)).
		Msg("verified")
	return VerificationResult{Valid: true, Timestamp: now}, nil
}

// RegisterCredential records commitment as a recognized credential, stamped
// with the ledger's current timestamp. caller must equal the stored admin;
// any other caller returns ErrUnauthorized and leaves the registry
// untouched, matching the fatal-to-the-call authorization failure in the
// contract's error model.
func (r *Registry) RegisterCredential(ledger Ledger, caller, commitment Bytes32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return fmt.Errorf("registry: register_credential: %w", ErrNotInitialized)
	}
	if caller != r.admin {
		return fmt.Errorf("registry: register_credential: %w", ErrUnauthorized)
	}

	ts := ledger.Timestamp()
	r.credentials[commitment] = ts
	r.log.Info().Hex("commitment", commitment[:]).Uint64("timestamp", ts).Msg("cred_reg")
	return nil
}

// IsNullifierUsed reports whether nullifier has already been consumed.
func (r *Registry) IsNullifierUsed(nullifier Bytes32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, used := r.nullifiers[nullifier]
	return used
}

// GetNullifierBlock returns the ledger sequence at which nullifier was
// consumed, and false if it has not been used.
func (r *Registry) GetNullifierBlock(nullifier Bytes32) (uint64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seq, used := r.nullifiers[nullifier]
	return seq, used
}

// HasCredential reports whether commitment has been registered.
func (r *Registry) HasCredential(commitment Bytes32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.credentials[commitment]
	return ok
}
