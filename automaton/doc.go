// Package automaton builds the digit-pattern automaton used by the
// absence-probability estimator.
//
// What & Why:
//
//	A Pattern is a short, immutable sequence of decimal digits. The Automaton
//	tracks, while digits are consumed one by one, the length of the longest
//	suffix of the input that is also a prefix of the pattern. States are
//	0..m (m = pattern length); state m means "pattern seen" and is absorbing.
//
// Algorithm Outline:
//  1. Failure function (KMP): fail[i] = length of the longest proper prefix of
//     p[0..i] that is also its suffix, via the two-pointer fallback.
//  2. Transition table over the alphabet {0..9} for every transient state s:
//     next(s,d) = s+1            if d == p[s]
//     next(s,d) = next(fail[s-1],d) if s > 0
//     next(s,d) = 0              otherwise
//     Rows are filled in increasing s, so the fallback row is always ready.
//
// Complexity:
//
//	Time   = O(m·10)
//	Memory = O(m·10)
//
// Errors:
//   - ErrInvalidPattern  : empty pattern or a non-digit symbol.
//   - ErrStateOutOfRange : Next called with a state outside 0..m.
//   - ErrInvalidDigit    : Next called with a digit outside 0..9.
package automaton
