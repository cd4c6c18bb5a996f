// SPDX-License-Identifier: MIT

// Package matrix - exact decimal storage (row-major) & kernels.
//
// Purpose:
//   - Mirror Dense/Mul/Pow exactly so results are bit-exact and independent
//     of the platform's floating-point behavior.
//   - Serve as a reference oracle for the float64 kernels in tests.
//
// Representation:
//   - Every entry is an integer numerator over the shared denominator
//     10^scale. Products add scales, so M^k of a matrix with scale s has
//     scale k·s and no entry ever needs a gcd reduction.
//   - Reduction to lowest terms happens only when a value leaves the matrix
//     (At, RowSum, String).

package matrix

import (
	"context"
	"fmt"
	"math/big"
	"strings"
)

const (
	opDecMul = "DecMul"
	opDecPow = "DecPow"
)

// DecDense is a row-major matrix of exact decimals num/10^scale.
type DecDense struct {
	r, c  int
	scale uint
	data  []big.Int // numerators, len == r*c
}

// NewDecDense creates an r×c zero matrix with denominator 10^scale.
// Errors: ErrInvalidDimensions when rows<=0 or cols<=0.
// Complexity: O(r*c).
func NewDecDense(rows, cols int, scale uint) (*DecDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &DecDense{r: rows, c: cols, scale: scale, data: make([]big.Int, rows*cols)}, nil
}

// NewDecIdentity returns the n×n exact identity (scale 0).
func NewDecIdentity(n int) (*DecDense, error) {
	I, err := NewDecDense(n, n, 0)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i].SetInt64(1)
	}

	return I, nil
}

// Rows returns the row count.
func (m *DecDense) Rows() int { return m.r }

// Cols returns the column count.
func (m *DecDense) Cols() int { return m.c }

// Scale returns the decimal exponent of the shared denominator.
func (m *DecDense) Scale() uint { return m.scale }

func (m *DecDense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// denominator returns 10^scale.
func (m *DecDense) denominator() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(m.scale)), nil)
}

// At returns the value at (row, col) reduced to lowest terms.
// Errors: ErrOutOfRange.
func (m *DecDense) At(row, col int) (*big.Rat, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, fmt.Errorf("DecDense.At(%d,%d): %w", row, col, err)
	}

	return new(big.Rat).SetFrac(&m.data[off], m.denominator()), nil
}

// Accumulate adds units/10^scale to the value at (row, col).
// Errors: ErrOutOfRange.
func (m *DecDense) Accumulate(row, col int, units int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return fmt.Errorf("DecDense.Accumulate(%d,%d): %w", row, col, err)
	}
	m.data[off].Add(&m.data[off], big.NewInt(units))

	return nil
}

// RowSum returns the exact sum of row i.
// Errors: ErrOutOfRange.
func (m *DecDense) RowSum(i int) (*big.Rat, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("DecDense.RowSum(%d): %w", i, ErrOutOfRange)
	}
	num := new(big.Int)
	for j := 0; j < m.c; j++ {
		num.Add(num, &m.data[i*m.c+j])
	}

	return new(big.Rat).SetFrac(num, m.denominator()), nil
}

// Clone returns a deep copy.
func (m *DecDense) Clone() *DecDense {
	out := &DecDense{r: m.r, c: m.c, scale: m.scale, data: make([]big.Int, len(m.data))}
	for i := range m.data {
		out.data[i].Set(&m.data[i])
	}

	return out
}

// Float converts the matrix to a Dense, rounding every entry to the nearest float64.
func (m *DecDense) Float() (*Dense, error) {
	d, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, err
	}
	den := m.denominator()
	var q big.Rat
	for i := range m.data {
		d.data[i], _ = q.SetFrac(&m.data[i], den).Float64()
	}

	return d, nil
}

// String renders entries as reduced fractions ("a/b"), row per line.
func (m *DecDense) String() string {
	var sb strings.Builder
	den := m.denominator()
	var q big.Rat
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(q.SetFrac(&m.data[i*m.c+j], den).RatString())
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// DecMul computes C = A × B with the same i→k→j order and zero-skip as the
// Dense fast path of Mul. Numerators multiply and scales add.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c) big.Int multiply-adds, no gcd.
func DecMul(a, b *DecDense) (*DecDense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opDecMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opDecMul, ErrDimensionMismatch)
	}
	res, err := NewDecDense(a.r, b.c, a.scale+b.scale)
	if err != nil {
		return nil, matrixErrorf(opDecMul, err)
	}

	var (
		i, j, k int
		av, bv  *big.Int
		prod    big.Int
	)
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			av = &a.data[i*a.c+k]
			if av.Sign() == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				bv = &b.data[k*b.c+j]
				if bv.Sign() == 0 {
					continue
				}
				prod.Mul(av, bv)
				res.data[i*b.c+j].Add(&res.data[i*b.c+j], &prod)
			}
		}
	}

	return res, nil
}

// DecPow raises a square decimal matrix to the k-th power by binary
// exponentiation, with the control flow of Pow. ctx is checked before every
// product, so a cancelled ctx stops the loop within one multiplication.
//
// Errors: ErrNilMatrix, ErrNonSquare, ctx.Err().
// Complexity: O(n³·log k) products on numerators of O(k·scale) digits.
func DecPow(ctx context.Context, m *DecDense, k uint64) (*DecDense, error) {
	if m == nil {
		return nil, matrixErrorf(opDecPow, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, matrixErrorf(opDecPow, ErrNonSquare)
	}
	result, err := NewDecIdentity(m.r)
	if err != nil {
		return nil, matrixErrorf(opDecPow, err)
	}

	base := m.Clone()
	for k > 0 {
		if k&1 == 1 {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			if result, err = DecMul(result, base); err != nil {
				return nil, matrixErrorf(opDecPow, err)
			}
		}
		k >>= 1
		if k > 0 {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			if base, err = DecMul(base, base); err != nil {
				return nil, matrixErrorf(opDecPow, err)
			}
		}
	}

	return result, nil
}
