/*
Package registry wraps the pure Groth16 verifier with the stateful bookkeeping
a deployed verifier contract needs around it: a one-time admin assignment, a
nullifier ledger that turns "verify" into "verify, at most once", and an
admin-managed credential commitment set.

Every write path is guarded by a single mutex so that the check-then-write
sequence in VerifyAndConsume (is the nullifier already present? if not,
record it) is atomic against concurrent callers, matching the host ledger's
per-transaction isolation. The pure crypto packages (field, curve, pairing,
verifier) never take this lock and never log; Registry is the only place in
this module with shared mutable state, and the only place that emits
structured log events in place of the ledger host's event stream.
*/
package registry
