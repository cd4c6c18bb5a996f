// SPDX-License-Identifier: MIT

package automaton

import (
	"fmt"
	"strings"
)

// ParsePattern converts a string of ASCII digits into a Pattern.
//
// Errors:
//   - ErrInvalidPattern when s is empty or contains anything but '0'..'9'
//     (letters must be encoded by the caller first, see package phrase).
//
// Complexity: O(len(s)).
func ParsePattern(s string) (Pattern, error) {
	if len(s) == 0 {
		return Pattern{}, fmt.Errorf("ParsePattern: empty: %w", ErrInvalidPattern)
	}
	digits := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Pattern{}, fmt.Errorf("ParsePattern: symbol %q at %d: %w", c, i, ErrInvalidPattern)
		}
		digits[i] = c - '0'
	}

	return Pattern{digits: digits}, nil
}

// NewPattern builds a Pattern from digit values (0..9, not ASCII).
// The input slice is copied.
//
// Errors:
//   - ErrInvalidPattern when digits is empty or holds a value above 9.
func NewPattern(digits []byte) (Pattern, error) {
	if len(digits) == 0 {
		return Pattern{}, fmt.Errorf("NewPattern: empty: %w", ErrInvalidPattern)
	}
	cp := make([]byte, len(digits))
	for i, d := range digits {
		if d >= Alphabet {
			return Pattern{}, fmt.Errorf("NewPattern: value %d at %d: %w", d, i, ErrInvalidPattern)
		}
		cp[i] = d
	}

	return Pattern{digits: cp}, nil
}

// MustParsePattern is like ParsePattern but panics on error.
// Intended for tests and package-level literals only.
func MustParsePattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}

	return p
}

// Len returns the pattern length m.
func (p Pattern) Len() int { return len(p.digits) }

// IsZero reports whether p is the empty zero value.
func (p Pattern) IsZero() bool { return len(p.digits) == 0 }

// At returns the digit at position i. It panics if i is out of range,
// like indexing a slice.
func (p Pattern) At(i int) byte { return p.digits[i] }

// Digits returns a copy of the digit values.
func (p Pattern) Digits() []byte {
	out := make([]byte, len(p.digits))
	copy(out, p.digits)

	return out
}

// String renders the pattern as ASCII digits.
func (p Pattern) String() string {
	var sb strings.Builder
	sb.Grow(len(p.digits))
	for _, d := range p.digits {
		sb.WriteByte('0' + d)
	}

	return sb.String()
}

// validate rejects the zero value for functions that accept a Pattern directly.
func (p Pattern) validate(op string) error {
	if p.IsZero() {
		return fmt.Errorf("%s: empty: %w", op, ErrInvalidPattern)
	}

	return nil
}
