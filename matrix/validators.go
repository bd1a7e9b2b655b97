// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/storage checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Storage),
//    which fixes the error priority documented in errors.go.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is treated as nil too.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateAllocated ensures m owns storage, i.e. is not in the empty state.
// Degenerate shapes own a zero-length buffer and pass.
// The sentinel is chosen by the caller (ErrUninitialized for Sub/Equal,
// ErrEmptyMatrix for the determinant family).
func ValidateAllocated(m *Dense, sentinel error) error {
	if m == nil {
		return validatorErrorf("ValidateAllocated", ErrNilMatrix)
	}
	if m.data == nil {
		return validatorErrorf("ValidateAllocated", sentinel)
	}

	return nil
}

// ValidateShape checks a requested (rows, cols) pair for construction.
//
// Accepted: rows ≥ 1 && cols ≥ 1, or exactly one of them zero with the other
// positive (degenerate). Rejected with ErrInvalidDimensions: any negative value
// and 0×0. Rejected with ErrAllocationFailure: rows*cols overflowing int or
// exceeding MaxElements.
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 || (rows == 0 && cols == 0) {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}
	if rows == 0 || cols == 0 {
		return nil
	}
	if rows > MaxElements/cols {
		return validatorErrorf("ValidateShape", ErrAllocationFailure)
	}

	return nil
}
