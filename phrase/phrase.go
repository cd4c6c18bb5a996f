// SPDX-License-Identifier: MIT

package phrase

import (
	"fmt"
	"strings"
)

// Sanitize truncates input to maxLen characters and then drops everything the
// mode does not accept. maxLen <= 0 disables truncation.
// Implementation:
//   - Stage 1: cut to the first maxLen runes.
//   - Stage 2: keep ASCII digits (Digits) or ASCII letters (Letters).
//
// Truncation happens before filtering, so "ab-cd" with maxLen 3 yields "ab".
func Sanitize(input string, mode Mode, maxLen int) string {
	if maxLen > 0 {
		n := 0
		for i := range input {
			if n == maxLen {
				input = input[:i]
				break
			}
			n++
		}
	}

	var sb strings.Builder
	sb.Grow(len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case mode == Digits && isDigit(c):
			sb.WriteByte(c)
		case mode == Letters && isLetter(c):
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

// Encode turns every ASCII letter of phrase into its two-digit code; other
// characters are dropped. Case is ignored.
//
// Errors:
//   - ErrInvalidBase for an unknown base.
//   - ErrNoLetters when nothing was encoded.
func Encode(phrase string, base Base) (string, error) {
	if !base.valid() {
		return "", fmt.Errorf("Encode: base=%d: %w", base, ErrInvalidBase)
	}
	var sb strings.Builder
	sb.Grow(2 * len(phrase))
	for i := 0; i < len(phrase); i++ {
		c := upper(phrase[i])
		if c < 'A' || c > 'Z' {
			continue
		}
		code := int(c-'A') + int(base)
		sb.WriteByte(byte('0' + code/10))
		sb.WriteByte(byte('0' + code%10))
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("Encode(%q): %w", phrase, ErrNoLetters)
	}

	return sb.String(), nil
}

// Decode reads digits two at a time and replaces every pair that is a letter
// code with its letter. Pairs that are not codes are copied unchanged; a
// trailing single digit is looked up as "0d" and copied if that fails too.
// An unknown base decodes nothing.
func Decode(digits string, base Base) string {
	var sb strings.Builder
	for i := 0; i < len(digits); i += 2 {
		end := i + 2
		if end > len(digits) {
			end = len(digits)
		}
		pair := digits[i:end]
		key := pair
		if len(pair) == 1 {
			key = "0" + pair
		}
		if l, ok := letterOf(key, base); ok {
			sb.WriteByte(l)
		} else {
			sb.WriteString(pair)
		}
	}

	return sb.String()
}

// Pattern converts raw input into the digit pattern to estimate.
// Implementation:
//   - Stage 1: Sanitize(input, mode, maxLen).
//   - Stage 2: Digits mode returns the result; Letters mode encodes it.
//
// Errors: ErrInvalidMode, ErrInvalidBase, ErrNoLetters, ErrEmptyInput.
func Pattern(input string, mode Mode, base Base, maxLen int) (string, error) {
	clean := Sanitize(input, mode, maxLen)
	switch mode {
	case Digits:
		if clean == "" {
			return "", fmt.Errorf("Pattern(%q): %w", input, ErrEmptyInput)
		}
		return clean, nil
	case Letters:
		return Encode(clean, base)
	}

	return "", fmt.Errorf("Pattern: mode=%q: %w", mode, ErrInvalidMode)
}

// letterOf maps a two-digit key to its letter under base.
func letterOf(key string, base Base) (byte, bool) {
	if len(key) != 2 || !base.valid() || !isDigit(key[0]) || !isDigit(key[1]) {
		return 0, false
	}
	code := int(key[0]-'0')*10 + int(key[1]-'0') - int(base)
	if code < 0 || code > 25 {
		return 0, false
	}

	return byte('A' + code), true
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}

	return c
}
