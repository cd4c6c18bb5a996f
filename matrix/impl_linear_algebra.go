// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, row-vector × matrix products and row sums.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Every kernel fast-paths *Dense operands (flat-slice loops) and falls back
//     to At/Set for any other Matrix implementation.
//   - Loop orders are fixed, so results are bit-identical across calls.

package matrix

import "fmt"

// ZeroSum is the initial value for every accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul      = "Mul"
	opVecMul   = "VecMul"
	opRowSums  = "RowSums"
	opPow      = "Pow"
	opIdentity = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies;
//     transition matrices of digit automata are mostly zeros off the first column.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// VecMul computes the row-vector product y = xᵀ × M.
// This is how a probability distribution over states advances: y[j] = Σ_k x[k]·M[k,j].
//
// Implementation:
//   - Stage 1: validate M non-nil and len(x) == Rows(M).
//   - Stage 2: accumulate row k of M scaled by x[k], skipping zero weights.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func VecMul(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, rows); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}

	y := make([]float64, cols)
	var (
		j, k int
		v    float64
		err  error
	)
	if d, ok := m.(*Dense); ok {
		for k = 0; k < rows; k++ {
			if x[k] == 0 {
				continue
			}
			row := d.data[k*cols : (k+1)*cols]
			for j = 0; j < cols; j++ {
				y[j] += x[k] * row[j]
			}
		}

		return y, nil
	}

	for k = 0; k < rows; k++ {
		if x[k] == 0 {
			continue
		}
		for j = 0; j < cols; j++ {
			if v, err = m.At(k, j); err != nil {
				return nil, matrixErrorf(opVecMul, err)
			}
			y[j] += x[k] * v
		}
	}

	return y, nil
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Complexity: O(rc).
//
// Used by Markov sub-stochastic checks: 1 - r[i] is the mass leaving the transient states.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// SumVec returns Σ x[i] with a fixed left-to-right order.
// Complexity: O(n).
func SumVec(x []float64) float64 {
	s := ZeroSum
	for _, v := range x {
		s += v
	}

	return s
}
