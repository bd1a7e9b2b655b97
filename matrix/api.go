// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Avoid logic duplication: each facade delegates to exactly one kernel.

package matrix

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n < 1.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	if n < 1 {
		return nil, validatorErrorf("NewIdentity", ErrInvalidDimensions)
	}
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I with dimension Rows(m); requires a square, non-empty m.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.r)
}

// FromMatrix copies any Matrix implementation into a fresh *Dense.
func FromMatrix(src Matrix) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf("FromMatrix", err)
	}
	if d, ok := src.(*Dense); ok {
		return d.Copy(), nil
	}
	rows, cols := src.Rows(), src.Cols()
	res, err := newResult(rows, cols, DefaultValidateNaNInf)
	if err != nil {
		return nil, matrixErrorf("FromMatrix", err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, matrixErrorf("FromMatrix", err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// ---------- Linear Algebra facades ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Dense) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a - b.
func Diff(a, b *Dense) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Dense) (*Dense, error) { return Mul(a, b) }

// T is a short alias for Transpose.
func T(m *Dense) (*Dense, error) { return Transpose(m) }

// ScaleBy is an alias for Scale.
func ScaleBy(m *Dense, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// Det is a short alias for Determinant.
func Det(m *Dense) (float64, error) { return Determinant(m) }

// Adj is a short alias for Adjugate.
func Adj(m *Dense) (*Dense, error) { return Adjugate(m) }

// InverseOf is an alias for Inverse.
func InverseOf(m *Dense, opts ...Option) (*Dense, error) { return Inverse(m, opts...) }

// AllClose is Equal under an explicit absolute tolerance.
func AllClose(a, b *Dense, tol float64) (bool, error) {
	return Equal(a, b, WithTolerance(tol))
}
