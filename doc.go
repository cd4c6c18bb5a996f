// Package pichance estimates how likely a short digit pattern (or a phrase
// encoded as digits) is to appear within the first N digits of a sequence of
// independent, uniformly distributed decimal digits, π being the motivating
// example.
//
// 🚀 What is pichance?
//
//	A small, zero-state library and CLI that brings together:
//		• Automaton: KMP failure function + full digit transition table
//		• Markov: the m×m sub-stochastic matrix of the transient states
//		• Matrix: dense float64 and exact decimal kernels, binary power
//		• Absence: P(pattern absent in N digits) for N up to 10^10 and beyond
//		• Phrase: A=00/A=01 letter encodings and their inverse
//
// ✨ Why choose pichance?
//
//   - O(m³·log N): 10^10 digits cost 34 squarings, not 10^10 steps
//   - Exact mode: bit-identical rationals for N <= 4096
//   - Pure functions – no globals, no caches, safe for concurrent use
//
// Layout:
//
//	automaton/      Pattern, FailureFunction, Build, Next
//	markov/         Build / BuildExact transition matrices
//	matrix/         Dense, DecDense, Mul, VecMul, Pow, DecPow
//	absence/        NotFoundProbability, Distribution, EstimateAll
//	phrase/         Sanitize, Encode, Decode
//	cmd/pichance/   cobra CLI with YAML/env configuration
//	examples/       runnable scenarios
//
// Quick start:
//
//	q, err := absence.Estimate("0704111114", 10_000_000_000) // "HELLO"
//	if err != nil { … }
//	fmt.Printf("found: %.4f%%\n", (1-q)*100)
package pichance
