/*
Package setup decides where a deployed contract's Groth16 verifying key comes
from: supplied by the caller on every invocation, or fixed once at deploy
time and reused for every subsequent call.

Both are legitimate, and the choice is left to the caller of this module: a
single-circuit deployment (one fixed statement, e.g. "prove membership in
this Merkle tree") usually wants the VK embedded once and never re-sent; a
multi-circuit or frequently upgraded deployment wants the VK supplied per
call, trading a few hundred extra bytes per transaction for not having to
redeploy when the circuit changes.

This module generates no verifying keys itself and runs no trusted-setup
ceremony. Groth16 has no universal SRS to distribute — each circuit's
proving and verifying keys come from a circuit-specific setup run entirely
off-chain, by external tooling (see testutils/fixtures.go, which plays that
off-chain role for this module's own tests via gnark). What is this
module's concern is only how the already-generated VerifyingKey reaches
Verify at call time, which is what VKSource selects between.
*/
package setup
