// SPDX-License-Identifier: MIT

package absence

import (
	"fmt"

	"github.com/katalvlaran/pichance/automaton"
	"github.com/katalvlaran/pichance/markov"
	"github.com/katalvlaran/pichance/matrix"
)

// NotFoundProbability returns the probability that p does not occur in the
// first n digits of a uniform i.i.d. digit sequence.
// Implementation:
//   - Stage 1: validate n >= 0 and build the m×m transient matrix M.
//   - Stage 2: P := M^n by binary exponentiation.
//   - Stage 3: y := e0ᵀ·P (row 0); return Σ y clamped into [0,1].
//
// Behavior highlights:
//   - n == 0 returns exactly 1.
//   - Pure: identical inputs give bit-identical results.
//   - Each row of M carries about 1e-16 of rounding error, which M^n
//     amplifies roughly n-fold. For long patterns at large n, 1-q can be
//     dominated by that drift rather than by the true match probability
//     (a 40-digit pattern at n = 10^10 reports 1-q ≈ 1e-6 against a true
//     value near 1e-30). Use ExactNotFoundProbability when that matters.
//
// Errors:
//   - ErrInvalidPattern for the empty pattern.
//   - ErrInvalidExponent for n < 0.
//
// Complexity:
//   - Time O(m³·log n), Space O(m²).
func NotFoundProbability(p automaton.Pattern, n int64) (float64, error) {
	dist, err := Distribution(p, n)
	if err != nil {
		return 0, err
	}

	return clampUnit(matrix.SumVec(dist)), nil
}

// FoundProbability returns 1 - NotFoundProbability(p, n).
func FoundProbability(p automaton.Pattern, n int64) (float64, error) {
	q, err := NotFoundProbability(p, n)
	if err != nil {
		return 0, err
	}

	return 1 - q, nil
}

// Estimate parses a digit-only string and returns NotFoundProbability.
//
// Errors: ErrInvalidPattern (empty or non-digit input), ErrInvalidExponent.
func Estimate(pattern string, n int64) (float64, error) {
	p, err := automaton.ParsePattern(pattern)
	if err != nil {
		return 0, fmt.Errorf("absence.Estimate: %w", err)
	}

	return NotFoundProbability(p, n)
}

// Distribution returns the length-m vector of probabilities of sitting in
// each partial-match state after n digits without the pattern having occurred.
//
// Errors: ErrInvalidPattern, ErrInvalidExponent.
func Distribution(p automaton.Pattern, n int64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("absence.Distribution: n=%d: %w", n, ErrInvalidExponent)
	}
	M, err := markov.Build(p)
	if err != nil {
		return nil, fmt.Errorf("absence.Distribution: %w", err)
	}
	P, err := matrix.Pow(M, uint64(n))
	if err != nil {
		return nil, fmt.Errorf("absence.Distribution: %w", err)
	}

	init := make([]float64, M.Rows())
	init[0] = 1 // nothing matched before the first digit
	dist, err := matrix.VecMul(init, P)
	if err != nil {
		return nil, fmt.Errorf("absence.Distribution: %w", err)
	}

	return dist, nil
}

// clampUnit folds accumulation drift (e.g. 1.0000000000000002) back into [0,1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
