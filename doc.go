// Package densemat is a small, self-contained dense matrix value type with
// classical linear algebra on top of it.
//
// Everything lives in the matrix subpackage:
//
//	matrix/   Dense storage & lifecycle (copy, move, resize, reset),
//	          element-wise and scalar arithmetic, tolerance-based equality,
//	          product and transpose, minors, Laplace determinant,
//	          cofactor/adjugate matrices and the adjugate inverse.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 5, 7}, {6, 3, 4}, {5, -2, -3}})
//	inv, err := matrix.Inverse(a) // adj(A) / det(A)
//
// The determinant family is the textbook cofactor expansion (factorial in
// the order of the matrix) and is meant for small matrices.
//
//	go get github.com/katalvlaran/densemat
package densemat
