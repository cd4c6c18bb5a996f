// SPDX-License-Identifier: MIT

package automaton

// Alphabet is the number of distinct symbols a digit can take (0..9).
const Alphabet = 10

// Pattern is an immutable sequence of digit values in 0..9.
//
// The zero value is an empty (invalid) pattern; build one with ParsePattern
// or NewPattern. Pattern values are safe to copy and to share between
// goroutines: nothing mutates the backing slice after construction.
type Pattern struct {
	digits []byte // digit values 0..9, never ASCII
}

// Automaton is the deterministic transition table of a Pattern.
//
//   - table[s][d] is the successor of transient state s on digit d, in 0..m.
//   - fail[i] is the KMP failure value of position i.
//   - State m is absorbing and has no row in table.
type Automaton struct {
	pattern Pattern
	fail    []int
	table   [][Alphabet]int
}
