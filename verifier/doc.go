/*
Package verifier checks a Groth16 proof against a verifying key and a list
of public inputs, following the reduction of the pairing equation

	e(A, B) = e(alpha, beta) * e(L, gamma) * e(C, delta)

to the single multi-pairing product

	e(-A, B) * e(alpha, beta) * e(L, gamma) * e(C, delta) = 1

where L = IC[0] + sum_i publicInputs[i]*IC[i+1] is computed with the curve
package's G1 operations. Verify is the package's only entry point; it is a
pure function with no shared state, matching the stateless Idle ->
ReturnBool -> Idle lifecycle a single proof check follows.
*/
package verifier
