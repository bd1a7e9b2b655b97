package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// TestMulKnown checks a 2×3 by 3×2 product against hand-computed values.
func TestMulKnown(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, got.Grid())

	got, err = matrix.Product(b, a)
	require.NoError(t, err)
	require.Equal(t, 3, got.Rows())
	require.Equal(t, 3, got.Cols())
}

func TestMulDimensionMismatch(t *testing.T) {
	_, err := matrix.Mul(mustDense(t, 2, 3), mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(mustDense(t, 2, 3), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulIdentity(t *testing.T) {
	a := mustDense(t, 4, 4)
	fillDenseRand(t, a, 7)
	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)

	left, err := matrix.Mul(I, a)
	require.NoError(t, err)
	requireEqual(t, a, left)

	right, err := matrix.Mul(a, I)
	require.NoError(t, err)
	requireEqual(t, a, right)
}

func TestMulDegenerateInner(t *testing.T) {
	a, err := matrix.NewDense(2, 0)
	require.NoError(t, err)
	b, err := matrix.NewDense(0, 3)
	require.NoError(t, err)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, got.Grid())
}

func TestMulInPlace(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	got, err := a.MulInPlace(b)
	require.NoError(t, err)
	require.Same(t, a, got)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, a.Grid())

	// failed multiply must not corrupt the left operand
	_, err = a.MulInPlace(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, a.Grid())
}

func TestTranspose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at.Grid())

	att, err := matrix.T(at)
	require.NoError(t, err)
	requireEqual(t, a, att)
}

func TestTransposeInvolution(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {3, 7}, {6, 6}} {
		a := mustDense(t, shape[0], shape[1])
		fillDenseRand(t, a, int64(shape[0]*31+shape[1]))

		at, err := matrix.Transpose(a)
		require.NoError(t, err)
		att, err := matrix.Transpose(at)
		require.NoError(t, err)
		requireEqual(t, a, att)
	}
}

func TestTransposeEmptyAndDegenerate(t *testing.T) {
	got, err := matrix.Transpose(matrix.NewEmpty())
	require.NoError(t, err)
	require.True(t, got.IsEmpty())

	d, err := matrix.NewDense(3, 0)
	require.NoError(t, err)
	got, err = matrix.Transpose(d)
	require.NoError(t, err)
	require.Equal(t, 0, got.Rows())
	require.Equal(t, 3, got.Cols())

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
