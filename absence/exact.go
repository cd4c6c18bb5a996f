// SPDX-License-Identifier: MIT

package absence

import (
	"context"
	"fmt"
	"math/big"

	"github.com/katalvlaran/pichance/automaton"
	"github.com/katalvlaran/pichance/markov"
	"github.com/katalvlaran/pichance/matrix"
)

// MaxExactDigits caps n for ExactNotFoundProbability. Entries of M^n are
// numerators over 10^n, so each product works on numbers of about n digits.
const MaxExactDigits = 4096

// ExactNotFoundProbability is NotFoundProbability in exact arithmetic.
// Implementation:
//   - Stage 1: build M in tenths (markov.BuildExact).
//   - Stage 2: P := M^n by matrix.DecPow; numerators over 10^n, no gcd per step.
//   - Stage 3: return the reduced sum of row 0 of P.
//
// The result is reproducible bit for bit on every platform. ctx is checked
// between products.
//
// Errors:
//   - ErrInvalidPattern, ErrInvalidExponent.
//   - ErrExactLimit when n > MaxExactDigits.
//   - ctx.Err() when ctx is done before the power completes.
//
// Complexity: O(m³·log n) big.Int products on numbers of O(n) digits.
func ExactNotFoundProbability(ctx context.Context, p automaton.Pattern, n int64) (*big.Rat, error) {
	if n < 0 {
		return nil, fmt.Errorf("absence.ExactNotFoundProbability: n=%d: %w", n, ErrInvalidExponent)
	}
	if n > MaxExactDigits {
		return nil, fmt.Errorf("absence.ExactNotFoundProbability: n=%d > %d: %w", n, MaxExactDigits, ErrExactLimit)
	}
	M, err := markov.BuildExact(p)
	if err != nil {
		return nil, fmt.Errorf("absence.ExactNotFoundProbability: %w", err)
	}
	P, err := matrix.DecPow(ctx, M, uint64(n))
	if err != nil {
		return nil, fmt.Errorf("absence.ExactNotFoundProbability: %w", err)
	}

	// e0ᵀ·P is row 0; its sum is the absence probability.
	sum, err := P.RowSum(0)
	if err != nil {
		return nil, fmt.Errorf("absence.ExactNotFoundProbability: %w", err)
	}

	return sum, nil
}
