// SPDX-License-Identifier: MIT

// Package phrase maps letter phrases onto digit patterns and back.
//
// Each letter becomes a two-digit code in one of two tables:
//
//	ZeroBased: A=00, B=01, … Z=25
//	OneBased:  A=01, B=02, … Z=26
//
// The resulting digit string is what the absence estimator consumes. Decode
// inverts the mapping for display; pairs that are not codes are kept verbatim.
package phrase
