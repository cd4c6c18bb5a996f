// SPDX-License-Identifier: MIT

package absence

import (
	"errors"

	"github.com/katalvlaran/pichance/automaton"
)

var (
	// ErrInvalidPattern aliases automaton.ErrInvalidPattern so callers of this
	// package can match it without importing automaton.
	ErrInvalidPattern = automaton.ErrInvalidPattern

	// ErrInvalidExponent indicates a negative digit count N.
	ErrInvalidExponent = errors.New("absence: digit count must be >= 0")

	// ErrExactLimit indicates an exact evaluation beyond MaxExactDigits.
	ErrExactLimit = errors.New("absence: digit count too large for exact evaluation")
)
