// Package absence estimates the probability that a digit pattern does NOT
// occur within the first N digits of a uniformly random digit sequence.
//
// Pipeline:
//
//	Pattern ─► automaton.Build ─► markov.Build (m×m) ─► matrix.Pow(M, N)
//	        ─► e0ᵀ·M^N (row 0) ─► Σ = P(absent)
//
// The initial distribution puts all mass on state 0 (nothing matched yet), so
// the N-step distribution is row 0 of M^N and its sum is the probability of
// never having reached the absorbing "matched" state. Exponentiation by
// squaring keeps the cost at O(m³·log N): N = 10^10 needs 34 squarings.
//
// Entry points:
//   - NotFoundProbability / Estimate : float64 result in [0,1].
//   - Distribution                   : the full partial-match distribution.
//   - ExactNotFoundProbability       : big.Rat result for N <= MaxExactDigits.
//   - EstimateAll                    : many patterns in parallel.
//
// Every call builds its own automaton and matrices; nothing is cached or
// shared, so calls are safe to run concurrently.
package absence
