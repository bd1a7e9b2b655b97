// Package matrix offers a dense, real-valued matrix value type.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix that exclusively owns its buffer, with
//     explicit lifecycle operations (Copy/CopyFrom, Move/MoveFrom, SetRows,
//     SetCols, Reset) and bounds-checked At/Set.
//   - Element-wise and scalar kernels: Add, Sub, Scale, Equal (absolute
//     tolerance, 1e-7 by default) and their in-place forms.
//   - Mul and Transpose.
//   - Minor, Determinant (recursive Laplace expansion), Cofactor, Adjugate and
//     Inverse (adjugate divided by the determinant).
//
// Every failure is reported as a sentinel error from errors.go, wrapped with
// the name of the operation that detected it; match with errors.Is.
//
// The determinant family is the textbook O(n!) cofactor expansion and is meant
// for small matrices, not as a replacement for LU-based solvers.
package matrix
