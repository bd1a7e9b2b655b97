// SPDX-License-Identifier: MIT
// Package matrix: matrix product and transpose.
//
// Purpose:
//   - Mul forms C = A × B with plain, sequential dot-product accumulation.
//   - MulInPlace is the `*=` form: the receiver adopts the product only on success.
//   - Transpose materializes Aᵀ; it always succeeds for a non-nil input.

package matrix

import "fmt"

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: allocate C (A.Rows × B.Cols) with A's numeric policy.
//   - Stage 3: for each (i, j) accumulate Σ_k A[i,k]*B[k,j] in fixed k order.
//
// Behavior highlights:
//   - No zero-skipping: NaN/Inf in either operand propagate as IEEE-754 dictates.
//   - Inputs are never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAllocationFailure,
//     ErrNaNInf (non-finite cell under the policy).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := newResult(a.r, b.c, a.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		rowA, rowR int
		sum        float64
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for j = 0; j < b.c; j++ {
			sum = 0
			for k = 0; k < a.c; k++ {
				sum += a.data[rowA+k] * b.data[k*b.c+j]
			}
			if res.validateNaNInf && isNonFinite(sum) {
				return nil, matrixErrorf(opMul, fmt.Errorf("cell (%d,%d): %w", i, j, ErrNaNInf))
			}
			res.data[rowR+j] = sum
		}
	}

	return res, nil
}

// MulInPlace performs m *= b and returns m for chaining.
// m takes the product's shape (m.Rows × b.Cols). On error m is unchanged.
func (m *Dense) MulInPlace(b *Dense) (*Dense, error) {
	res, err := Mul(m, b)
	if err != nil {
		return m, err
	}
	m.r, m.c, m.data = res.r, res.c, res.data

	return m, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The empty state transposes to the empty state; a degenerate r×0 becomes 0×r.
// Errors: ErrNilMatrix only.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := newResult(m.c, m.r, m.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}
