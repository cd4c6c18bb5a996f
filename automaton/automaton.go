// SPDX-License-Identifier: MIT

package automaton

import "fmt"

// FailureFunction returns the KMP failure values of p.
//
// fail[i] is the length of the longest proper prefix of p[0..i] that is also a
// suffix of it. Candidate length j falls back through fail[j-1] on mismatch.
// The zero-value Pattern yields an empty slice.
//
// Complexity: O(m) amortized.
func FailureFunction(p Pattern) []int {
	m := p.Len()
	fail := make([]int, m)
	j := 0 // current candidate length
	for i := 1; i < m; i++ {
		for j > 0 && p.digits[i] != p.digits[j] {
			j = fail[j-1]
		}
		if p.digits[i] == p.digits[j] {
			j++
			fail[i] = j
		}
	}

	return fail
}

// Build constructs the transition table of p.
// Implementation:
//   - Stage 1: reject the empty pattern.
//   - Stage 2: compute the failure function.
//   - Stage 3: for s = 0..m-1 and d = 0..9, extend on match, otherwise copy
//     the successor of the fallback state fail[s-1] (already filled), or 0.
//
// Errors:
//   - ErrInvalidPattern for the zero-value Pattern.
//
// Complexity:
//   - Time O(m·10), Space O(m·10).
func Build(p Pattern) (*Automaton, error) {
	if err := p.validate("Build"); err != nil {
		return nil, err
	}

	m := p.Len()
	fail := FailureFunction(p)
	table := make([][Alphabet]int, m)

	var s, d int
	for s = 0; s < m; s++ {
		for d = 0; d < Alphabet; d++ {
			switch {
			case byte(d) == p.digits[s]:
				table[s][d] = s + 1
			case s > 0:
				table[s][d] = table[fail[s-1]][d]
			default:
				table[s][d] = 0
			}
		}
	}

	return &Automaton{pattern: p, fail: fail, table: table}, nil
}

// Pattern returns the pattern the automaton was built from.
func (a *Automaton) Pattern() Pattern { return a.pattern }

// States returns the number of states including the absorbing one (m+1).
func (a *Automaton) States() int { return len(a.table) + 1 }

// Transient returns the number of transient states (m).
func (a *Automaton) Transient() int { return len(a.table) }

// Absorbing returns the index of the absorbing "matched" state (m).
func (a *Automaton) Absorbing() int { return len(a.table) }

// Next returns the successor of state on digit d.
// The absorbing state maps to itself on every digit.
//
// Errors:
//   - ErrStateOutOfRange when state is outside 0..m.
//   - ErrInvalidDigit when d is outside 0..9.
func (a *Automaton) Next(state, d int) (int, error) {
	if state < 0 || state > a.Absorbing() {
		return 0, fmt.Errorf("Next(%d,%d): %w", state, d, ErrStateOutOfRange)
	}
	if d < 0 || d >= Alphabet {
		return 0, fmt.Errorf("Next(%d,%d): %w", state, d, ErrInvalidDigit)
	}
	if state == a.Absorbing() {
		return state, nil
	}

	return a.table[state][d], nil
}

// Failure returns a copy of the failure function.
func (a *Automaton) Failure() []int {
	out := make([]int, len(a.fail))
	copy(out, a.fail)

	return out
}

// Table returns a copy of the transient transition table (m rows).
func (a *Automaton) Table() [][Alphabet]int {
	out := make([][Alphabet]int, len(a.table))
	copy(out, a.table)

	return out
}

// Completions returns how many digits move state straight into the absorbing
// state. Only state m-1 can complete a match, so the result is 1 there and 0
// for every other transient state; the absorbing state reports 0.
//
// Errors: ErrStateOutOfRange.
func (a *Automaton) Completions(state int) (int, error) {
	if state < 0 || state > a.Absorbing() {
		return 0, fmt.Errorf("Completions(%d): %w", state, ErrStateOutOfRange)
	}
	if state == a.Absorbing() {
		return 0, nil
	}
	n := 0
	for _, next := range a.table[state] {
		if next == a.Absorbing() {
			n++
		}
	}

	return n, nil
}

// Run feeds digits (values 0..9) through the automaton starting from state 0
// and returns the final state. It reports the absorbing state as soon as the
// pattern has been seen.
//
// Errors: ErrInvalidDigit.
func (a *Automaton) Run(digits []byte) (int, error) {
	state := 0
	var err error
	for _, d := range digits {
		if state, err = a.Next(state, int(d)); err != nil {
			return 0, err
		}
	}

	return state, nil
}
