// Package sumcheck implements the non-interactive sumcheck protocol for
// multilinear polynomials over the BN254 scalar field.
//
// The sumcheck protocol reduces the claim
//
//	S = ∑_{x_j ∈ {0,1}, 1 ≤ j ≤ n} f((x_j)_{1 ≤ j ≤ n})
//
// for a multilinear f: 𝔽ⁿ -> 𝔽 to a single point-evaluation claim on f. It
// runs one round per variable: the prover sends the degree-1 round
// polynomial g_i given by the partial sums with the current first variable
// fixed to 0 and to 1, the verifier checks g_i(0) + g_i(1) against its
// running claim, and both sides fold the bound variable at a challenge r_i
// derived from a Fiat-Shamir transcript. After the last round the verifier
// queries an [Oracle] for f(r_1, ..., r_n) and compares it to the final
// claim.
//
// Basic usage:
//
//	poly := polynomial.FromEvals(evals)
//	stmt := sumcheck.Statement{NbVars: poly.NbVars, ClaimedSum: poly.Sum()}
//
//	proof, err := sumcheck.Prove(stmt, poly, fiatshamir.NewTranscript([]byte("my-protocol")))
//	// ...
//
//	oracle := sumcheck.NewPolyOracle(poly)
//	ok, err := sumcheck.Verify(stmt, proof, oracle, fiatshamir.NewTranscript([]byte("my-protocol")))
//
// Prover and verifier must agree out-of-band on the statement and on the
// transcript domain. The round polynomials here are always degree 1 since
// the protocol is specialized to multilinear polynomials; there is no
// batching and no zero-knowledge blinding.
package sumcheck
