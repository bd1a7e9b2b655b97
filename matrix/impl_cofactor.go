// SPDX-License-Identifier: MIT
// Package matrix: minors, determinant (Laplace expansion), cofactor/adjugate
// matrices and the classical-adjoint inverse.
//
// Purpose:
//   - Determinant expands along the first row recursively:
//     det(A) = Σ_j (-1)^j · A[0,j] · det(minor(A, 0, j)), with det([[a]]) = a.
//   - Cofactor sets C[i,j] = (-1)^(i+j) · det(minor(A, i, j)).
//   - Inverse = adj(A) / det(A), with adj(A) = Cofactor(A)ᵀ.
//
// Determinism & Performance:
//   - The recursion is the textbook O(n!) expansion. Minors are addressed
//     through row/column index lists over the original buffer instead of
//     being materialized at every level; the arithmetic (order of products,
//     additions and subtractions) is identical to materializing them.
//   - Minor is still exported for callers that want the submatrix itself.

package matrix

import "math"

// Minor returns the (r-1)×(c-1) matrix obtained by deleting row `row` and
// column `col` from m. A 1×1 input returns a copy of itself.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix (no storage), ErrOutOfRange (row/col outside m).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Minor(m *Dense, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateAllocated(m, ErrEmptyMatrix); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if _, err := m.indexOf(row, col); err != nil {
		return nil, matrixErrorf(opMinor, denseErrorf(opMinor, row, col, err))
	}
	if m.r == 1 && m.c == 1 {
		return m.Copy(), nil
	}
	res, err := newResult(m.r-1, m.c-1, m.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	var i, j, dst int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.data[dst] = m.data[i*m.c+j]
			dst++
		}
	}

	return res, nil
}

// Determinant computes det(m) by recursive Laplace expansion along the first row.
// MAIN DESCRIPTION:
//   - 1×1: the single element. n×n: alternating-sign sum over the first row of
//     element × determinant of the complementary minor.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEmptyMatrix.
//
// Complexity:
//   - Time O(n!), Space O(n²) for the index lists along one recursion path.
func Determinant(m *Dense) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if err := ValidateAllocated(m, ErrEmptyMatrix); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return laplace(m, sequence(m.r), sequence(m.c)), nil
}

// laplace expands the square submatrix of m selected by rows × cols along its
// first selected row. len(rows) == len(cols) ≥ 1.
func laplace(m *Dense, rows, cols []int) float64 {
	if len(rows) == 1 {
		return m.data[rows[0]*m.c+cols[0]]
	}

	head := rows[0] * m.c
	subRows := rows[1:]
	var det, minorDet float64
	for j, c := range cols {
		minorDet = laplace(m, subRows, without(cols, j))
		if j%2 == 0 {
			det += m.data[head+c] * minorDet
		} else {
			det -= m.data[head+c] * minorDet
		}
	}

	return det
}

// Cofactor returns the matrix of cofactors C[i,j] = (-1)^(i+j) · det(minor(m, i, j)).
// Implementation:
//   - Stage 1: nil → square → storage → size checks.
//   - Stage 2: for every (i, j) expand the minor that skips row i and column j.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEmptyMatrix, ErrUndefinedForSize1 (1×1 input).
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Cofactor(m *Dense) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if err := ValidateAllocated(m, ErrEmptyMatrix); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if m.r == 1 {
		return nil, matrixErrorf(opCofactor, ErrUndefinedForSize1)
	}
	n := m.r
	res, err := newResult(n, n, m.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	all := sequence(n)
	var i, j int
	var minorDet float64
	for i = 0; i < n; i++ {
		rows := without(all, i)
		for j = 0; j < n; j++ {
			minorDet = laplace(m, rows, without(all, j))
			if (i+j)%2 == 0 {
				res.data[i*n+j] = minorDet
			} else {
				res.data[i*n+j] = -minorDet
			}
		}
	}

	return res, nil
}

// Adjugate returns adj(m) = Cofactor(m)ᵀ. Same error contract as Cofactor.
func Adjugate(m *Dense) (*Dense, error) {
	cof, err := Cofactor(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse computes m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Classical adjoint inverse built on Determinant, Cofactor and Transpose.
//
// Implementation:
//   - Stage 1: nil → square → storage checks.
//   - Stage 2: d = det(m); |d| < tolerance ⇒ ErrSingular.
//   - Stage 3: 1×1 ⇒ [[1/m00]]; otherwise Cofactor → Transpose → divide by d.
//
// Inputs:
//   - opts: WithTolerance overrides the singularity threshold (DefaultTolerance).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEmptyMatrix, ErrSingular,
//     ErrNaNInf (non-finite entry under the policy).
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
//
// Notes:
//   - No pivoting or conditioning; the fixed absolute tolerance is the only guard.
func Inverse(m *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateAllocated(m, ErrEmptyMatrix); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	det := laplace(m, sequence(m.r), sequence(m.c))
	if math.Abs(det) < o.tol {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	if m.r == 1 {
		res, err := newResult(1, 1, m.validateNaNInf)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		res.data[0] = 1.0 / m.data[0]

		return res, nil
	}

	adj, err := Adjugate(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = adj.Apply(func(_, _ int, v float64) float64 { return v / det }); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return adj, nil
}

// sequence returns [0, 1, ..., n-1].
func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}

// without returns a fresh copy of idx with position pos removed.
func without(idx []int, pos int) []int {
	out := make([]int, 0, len(idx)-1)
	out = append(out, idx[:pos]...)

	return append(out, idx[pos+1:]...)
}
