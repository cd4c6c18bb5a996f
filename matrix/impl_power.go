// SPDX-License-Identifier: MIT

package matrix

// Pow raises a square matrix to the k-th power by binary exponentiation.
// Implementation:
//   - Stage 1: validate m square; accumulator := I, base := clone(m).
//   - Stage 2: while k > 0: if k&1 == 1 then acc = acc × base; k >>= 1;
//     if k > 0 then base = base × base.
//
// Behavior highlights:
//   - k == 0 returns a fresh identity.
//   - The input is never mutated; every product allocates a new Dense.
//   - The trailing square after the highest bit is skipped; it would never be used.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare; allocation errors from NewDense.
//
// Determinism:
//   - The sequence of multiplications depends only on the bits of k.
//
// Complexity:
//   - Time O(n³·log k), Space O(n²).
func Pow(m Matrix, k uint64) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	acc, err := NewIdentity(m.Rows())
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	var (
		result Matrix = acc
		base          = m.Clone()
	)
	for k > 0 {
		if k&1 == 1 {
			if result, err = Mul(result, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}

	return result, nil
}
