// SPDX-License-Identifier: MIT
// Package matrix: element-wise and scalar kernels.
//
// Purpose:
//   - Add/Sub/Scale return fresh results; operands are never mutated.
//   - AddInPlace/SubInPlace/ScaleInPlace mutate the receiver only on success
//     and return it for chaining.
//   - Equal compares cell by cell with an absolute tolerance (DefaultTolerance
//     unless WithTolerance is given).
//
// Notes:
//   - All kernels validate through validators.go and wrap with matrixErrorf(op, err).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opEqual     = "Equal"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMinor     = "Minor"
	opDet       = "Determinant"
	opCofactor  = "Cofactor"
	opAdjugate  = "Adjugate"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1} into a fresh Dense.
// Shapes must already be validated by the caller.
// Result inherits a's numeric policy; a non-finite sum under the policy is rejected.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	res, err := newResult(a.r, a.c, a.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	var v float64
	for idx := range res.data {
		v = a.data[idx] + sign*b.data[idx]
		if res.validateNaNInf && isNonFinite(v) {
			return nil, matrixErrorf(opTag, fmt.Errorf("offset %d: %w", idx, ErrNaNInf))
		}
		res.data[idx] = v
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return addSub(a, b, +1, opAdd)
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: nil and shape checks (ErrNilMatrix, ErrDimensionMismatch).
//   - Stage 2: storage check on both operands (ErrUninitialized).
//   - Stage 3: single flat loop.
//
// Behavior highlights:
//   - Unlike Add, two empty operands are rejected: subtraction distinguishes
//     "never allocated" from "wrong shape".
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateAllocated(a, ErrUninitialized); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateAllocated(b, ErrUninitialized); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return addSub(a, b, -1, opSub)
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The empty state scales to the empty state.
// Errors: ErrNilMatrix; ErrNaNInf when the policy is on and a product is non-finite.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Copy()
	if err := res.Apply(func(_, _ int, v float64) float64 { return v * alpha }); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and every pair of cells
// differs by at most the tolerance (absolute difference).
// MAIN DESCRIPTION:
//   - Tolerance-based, not bitwise. Defaults to DefaultTolerance (1e-7).
//
// Implementation:
//   - Stage 1: nil checks, then storage checks on both operands. This also
//     rejects comparing an empty matrix with itself.
//   - Stage 2: identical pointers with storage are trivially equal.
//   - Stage 3: shape mismatch yields (false, nil), not an error.
//   - Stage 4: flat scan, stops at the first cell outside tolerance.
//
// Errors:
//   - ErrNilMatrix, ErrUninitialized.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal(a, b *Dense, opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateAllocated(a, ErrUninitialized); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateAllocated(b, ErrUninitialized); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a == b {
		return true, nil
	}
	if a.r != b.r || a.c != b.c {
		return false, nil
	}
	tol := gatherOptions(opts...).tol
	for idx := range a.data {
		if !scalar.EqualWithinAbs(a.data[idx], b.data[idx], tol) {
			return false, nil
		}
	}

	return true, nil
}

// AddInPlace performs m += b and returns m for chaining.
// On error m is unchanged.
func (m *Dense) AddInPlace(b *Dense) (*Dense, error) {
	res, err := Add(m, b)
	if err != nil {
		return m, err
	}
	m.data = res.data

	return m, nil
}

// SubInPlace performs m -= b and returns m for chaining.
// On error m is unchanged.
func (m *Dense) SubInPlace(b *Dense) (*Dense, error) {
	res, err := Sub(m, b)
	if err != nil {
		return m, err
	}
	m.data = res.data

	return m, nil
}

// ScaleInPlace performs m *= alpha and returns m for chaining.
// The only failure is a policy violation (ErrNaNInf); m is then unchanged.
func (m *Dense) ScaleInPlace(alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return m, matrixErrorf(opScale, err)
	}
	if err := m.Apply(func(_, _ int, v float64) float64 { return v * alpha }); err != nil {
		return m, matrixErrorf(opScale, err)
	}

	return m, nil
}
