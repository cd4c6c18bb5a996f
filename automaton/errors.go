// SPDX-License-Identifier: MIT

package automaton

import "errors"

var (
	// ErrInvalidPattern indicates an empty pattern or a symbol outside 0..9.
	ErrInvalidPattern = errors.New("automaton: invalid pattern")

	// ErrStateOutOfRange indicates a state outside 0..m.
	ErrStateOutOfRange = errors.New("automaton: state out of range")

	// ErrInvalidDigit indicates a digit outside 0..9.
	ErrInvalidDigit = errors.New("automaton: invalid digit")
)
