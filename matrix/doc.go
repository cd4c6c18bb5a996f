// Package matrix provides the small dense linear-algebra kernel used by the
// absence-probability estimator.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors.
//   - Mul (i→k→j with zero-skip), VecMul (row vector × matrix) and RowSums.
//   - NewIdentity and Pow, exponentiation by squaring in O(n³·log k).
//   - DecDense with DecMul/DecPow, the same kernels over exact decimals
//     (big.Int numerators over a shared 10^scale) for bit-reproducible results.
//   - Validators (square, multiplication compatibility, sub-stochastic rows).
//
// Matrices here are small (tens of rows) and short-lived: every estimator
// call allocates its own and nothing is shared between calls.
//
// See the examples in this package for usage patterns.
package matrix
