package setup

import (
	"fmt"

	"github.com/openzktool/groth16bn254/verifier"
)

// Mode selects between the two ways a contract instance can obtain its
// Groth16 verifying key.
type Mode int

const (
	// PerCall requires the caller to supply a VerifyingKey with every
	// verify_proof call; Resolve validates it matches nothing in particular
	// (the verifier package itself validates the points) and simply passes
	// it through.
	PerCall Mode = iota
	// Embedded fixes the VerifyingKey once, at VKSource construction time;
	// Resolve ignores whatever (if anything) the caller supplies.
	Embedded
)

// VKSource decides, once per contract instance, whether the verifying key is
// supplied on every call or fixed at construction time. It carries no
// trusted-setup material of its own.
type VKSource struct {
	mode Mode
	vk   verifier.VerifyingKey
}

// NewPerCall returns a VKSource that requires the caller to supply a
// VerifyingKey with every call.
func NewPerCall() VKSource {
	return VKSource{mode: PerCall}
}

// NewEmbedded returns a VKSource that always resolves to vk, regardless of
// what (if anything) a caller supplies.
func NewEmbedded(vk verifier.VerifyingKey) VKSource {
	return VKSource{mode: Embedded, vk: vk}
}

// Mode reports which of the two selection modes s uses.
func (s VKSource) Mode() Mode { return s.mode }

// Resolve returns the VerifyingKey a call should use: s.vk if s is Embedded,
// or *provided if s is PerCall and provided is non-nil. It returns an error
// only for a genuine configuration mismatch (PerCall with no key supplied);
// a malformed key's points are rejected later by verifier.Verify itself as
// an ordinary invalid-proof outcome, not here.
func (s VKSource) Resolve(provided *verifier.VerifyingKey) (verifier.VerifyingKey, error) {
	switch s.mode {
	case Embedded:
		return s.vk, nil
	case PerCall:
		if provided == nil {
			return verifier.VerifyingKey{}, fmt.Errorf(
				"setup: per-call VK source requires a verifying key argument")
		}
		return *provided, nil
	default:
		return verifier.VerifyingKey{}, fmt.Errorf("setup: unknown VK source mode %d", s.mode)
	}
}
