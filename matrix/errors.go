// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on a user-triggered error condition.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so that wrapped chains such as
// "Inverse: matrix: singular matrix" stay greppable. Operations wrap with
// matrixErrorf(op, ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/dimension -> storage -> size-specific -> numeric (singular).

var (
	// ErrInvalidDimensions indicates that requested rows/cols are < 1 outside the
	// tolerated degenerate shapes (exactly one dimension zero).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrUninitialized indicates that Sub or Equal received an operand that owns
	// no storage (the canonical empty state).
	ErrUninitialized = errors.New("matrix: operand owns no storage")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrEmptyMatrix signals that an algebraic operation needs cells but the
	// matrix is in the empty state.
	ErrEmptyMatrix = errors.New("matrix: matrix is empty")

	// ErrUndefinedForSize1 is returned by Cofactor for a 1×1 input.
	ErrUndefinedForSize1 = errors.New("matrix: cofactor matrix undefined for 1x1")

	// ErrSingular is returned by Inverse when |det| is below the tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAllocationFailure is returned when the element count of a requested
	// shape overflows int or exceeds MaxElements.
	ErrAllocationFailure = errors.New("matrix: cannot allocate storage")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was written into a matrix whose
	// numeric policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
