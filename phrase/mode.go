// SPDX-License-Identifier: MIT

package phrase

import (
	"fmt"
	"strconv"
	"strings"
)

// Base selects the letter-to-code table.
type Base int

const (
	// ZeroBased encodes A as 00 and Z as 25.
	ZeroBased Base = 0
	// OneBased encodes A as 01 and Z as 26.
	OneBased Base = 1
)

// String returns "0" or "1".
func (b Base) String() string { return strconv.Itoa(int(b)) }

func (b Base) valid() bool { return b == ZeroBased || b == OneBased }

// ParseBase accepts "0"/"zero" and "1"/"one".
//
// Errors: ErrInvalidBase.
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "zero":
		return ZeroBased, nil
	case "1", "one":
		return OneBased, nil
	}

	return 0, fmt.Errorf("ParseBase(%q): %w", s, ErrInvalidBase)
}

// Mode selects which characters of raw input are kept.
type Mode string

const (
	// Digits keeps 0-9 and uses the input as the pattern directly.
	Digits Mode = "digits"
	// Letters keeps A-Z/a-z and encodes them with a Base.
	Letters Mode = "letters"
)

// ParseMode accepts "digits" or "letters" in any case.
//
// Errors: ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Digits:
		return Digits, nil
	case Letters:
		return Letters, nil
	}

	return "", fmt.Errorf("ParseMode(%q): %w", s, ErrInvalidMode)
}
