// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// testTol is the tolerance used when a test compares computed inverses.
const testTol = 1e-6

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(tb testing.TB, grid [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(grid)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// requireClose asserts got has the shape of want and every cell is within tol.
func requireClose(t *testing.T, want [][]float64, got *matrix.Dense, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	if len(want) > 0 {
		require.Equal(t, len(want[0]), got.Cols(), "cols")
	}
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, want[i][j], v, tol, "cell (%d,%d)", i, j)
		}
	}
}

// requireEqual asserts Equal(a, b) holds under the default tolerance.
func requireEqual(t *testing.T, a, b *matrix.Dense) {
	t.Helper()
	ok, err := matrix.Equal(a, b)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\n%s\nvs\n%s", a, b)
}

// fillDenseRand fills m with values in [-1, 1) from a fixed seed.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// diagDominant returns a random n×n matrix made invertible by a heavy diagonal.
func diagDominant(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	m := mustDense(tb, n, n)
	fillDenseRand(tb, m, seed)
	for i := 0; i < n; i++ {
		v, _ := m.At(i, i)
		_ = m.Set(i, i, v+float64(n))
	}

	return m
}
