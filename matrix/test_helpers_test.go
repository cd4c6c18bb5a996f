// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pichance/matrix"
)

// tol is the absolute tolerance for float comparisons in kernel tests.
const tol = 1e-12

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustSet WRITES v into (i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// MustAt READS (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Prefer for small exact-equality tests.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// SubStochasticFill FILLS an n×n Dense with deterministic non-negative values
// whose rows sum to `mass` (<= 1), mimicking a transient transition matrix.
func SubStochasticFill(t testing.TB, n int, mass float64, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := MustDense(t, n, n)
	row := make([]float64, n)
	var i, j int
	var s float64
	for i = 0; i < n; i++ {
		s = 0
		for j = 0; j < n; j++ {
			row[j] = rng.Float64()
			s += row[j]
		}
		for j = 0; j < n; j++ {
			MustSet(t, d, i, j, row[j]/s*mass)
		}
	}

	return d
}

// RequireClose FAILS unless a and b share shape and |a-b| <= eps element-wise.
func RequireClose(t testing.TB, a, b matrix.Matrix, eps float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > eps {
				t.Fatalf("at [%d,%d]: %g vs %g (eps %g)", i, j, av, bv, eps)
			}
		}
	}
}

// NaivePow MULTIPLIES m by itself k times (I when k == 0); reference for Pow.
func NaivePow(t testing.TB, m matrix.Matrix, k int) matrix.Matrix {
	t.Helper()
	res, err := matrix.NewIdentity(m.Rows())
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	var out matrix.Matrix = res
	for i := 0; i < k; i++ {
		if out, err = matrix.Mul(out, m); err != nil {
			t.Fatalf("Mul: %v", err)
		}
	}

	return out
}
