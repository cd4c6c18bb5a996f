// SPDX-License-Identifier: MIT

// Package markov turns a digit-pattern automaton into the transition matrix
// of its transient states.
//
// Every digit has probability 1/10. For each transient state s and digit d,
// the successor t = next(s,d) receives 1/10 at entry [s][t] when t < m. Moves
// into the absorbing state m add nothing: that mass is the per-step chance of
// completing the pattern, so rows sum to at most 1 (sub-stochastic) and the
// matrix stays m×m instead of (m+1)×(m+1).
//
// Floating-point accumulation of 0.1 drifts by about 1e-15 per row; BuildExact
// produces the same matrix in exact tenths when exact values are required.
package markov

import (
	"fmt"

	"github.com/katalvlaran/pichance/automaton"
	"github.com/katalvlaran/pichance/matrix"
)

// DigitProbability is the chance of any single digit under the uniform model.
const DigitProbability = 1.0 / automaton.Alphabet

// Tolerance bounds the accumulated drift of DigitProbability sums in a row.
const Tolerance = 1e-12

// Build returns the m×m transient transition matrix of p.
//
// Errors: automaton.ErrInvalidPattern for the empty pattern.
// Complexity: O(m·10) time, O(m²) space.
func Build(p automaton.Pattern) (*matrix.Dense, error) {
	a, err := automaton.Build(p)
	if err != nil {
		return nil, fmt.Errorf("markov.Build: %w", err)
	}

	return FromAutomaton(a)
}

// FromAutomaton returns the m×m transient transition matrix of a.
// Implementation:
//   - Stage 1: allocate m×m zeros.
//   - Stage 2: for s in 0..m-1, d in 0..9: t := next(s,d); if t < m then M[s][t] += 0.1.
//
// Errors: matrix.ErrNilMatrix when a is nil.
func FromAutomaton(a *automaton.Automaton) (*matrix.Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("markov.FromAutomaton: %w", matrix.ErrNilMatrix)
	}
	m := a.Transient()
	M, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, fmt.Errorf("markov.FromAutomaton: %w", err)
	}

	err = forEachTransient(a, func(s, t int) error {
		return M.Accumulate(s, t, DigitProbability)
	})
	if err != nil {
		return nil, fmt.Errorf("markov.FromAutomaton: %w", err)
	}

	return M, nil
}

// BuildExact returns the transient transition matrix of p as exact decimals
// with scale 1: every digit adds one tenth.
//
// Errors: automaton.ErrInvalidPattern.
func BuildExact(p automaton.Pattern) (*matrix.DecDense, error) {
	a, err := automaton.Build(p)
	if err != nil {
		return nil, fmt.Errorf("markov.BuildExact: %w", err)
	}
	m := a.Transient()
	M, err := matrix.NewDecDense(m, m, 1)
	if err != nil {
		return nil, fmt.Errorf("markov.BuildExact: %w", err)
	}

	err = forEachTransient(a, func(s, t int) error {
		return M.Accumulate(s, t, 1)
	})
	if err != nil {
		return nil, fmt.Errorf("markov.BuildExact: %w", err)
	}

	return M, nil
}

// Deficits returns, per transient state, the probability of completing the
// pattern on the next digit (DigitProbability × completions). It equals
// 1 - rowSum for the matrix built from the same automaton.
func Deficits(a *automaton.Automaton) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("markov.Deficits: %w", matrix.ErrNilMatrix)
	}
	out := make([]float64, a.Transient())
	for s := range out {
		c, err := a.Completions(s)
		if err != nil {
			return nil, fmt.Errorf("markov.Deficits: %w", err)
		}
		out[s] = float64(c) * DigitProbability
	}

	return out, nil
}

// forEachTransient calls fn(s, t) for every digit moving transient state s to
// transient state t, in fixed s→d order.
func forEachTransient(a *automaton.Automaton, fn func(s, t int) error) error {
	m := a.Transient()
	var s, d, t int
	var err error
	for s = 0; s < m; s++ {
		for d = 0; d < automaton.Alphabet; d++ {
			if t, err = a.Next(s, d); err != nil {
				return err
			}
			if t < m {
				if err = fn(s, t); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
