// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions for the Matrix kernels.
//   • Keep all data finite and well-formed so tolerance checks stay meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixplus/matrix"
)

// tol is the comparison tolerance shared by all numeric assertions.
const tol = matrix.Epsilon

// MustFromRows BUILDS a matrix from literal rows or fails the test.
// Implementation:
//   - Stage 1: matrix.FromRows(rows).
//   - Stage 2: require.NoError to abort early on ragged fixtures.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err, "FromRows fixture must be rectangular")

	return m
}

// RandFilled RETURNS a new r×c matrix filled with deterministic U(-1,1) by seed.
// Determinism:
//   - Same seed ⇒ same matrix.
func RandFilled(t testing.TB, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := matrix.NewDense(r, c)
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
	}))

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES m[i,j]=v or fails the test.
func MustSet(t testing.TB, m *matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// RequireRows ASSERTS shape and every element of m against want within tol.
// Notes:
//   - Element messages carry coordinates so failures point at the cell.
func RequireRows(t testing.TB, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "Rows")
	var i, j int
	for i = 0; i < len(want); i++ {
		require.Equal(t, len(want[i]), m.Cols(), "Cols at row %d", i)
		for j = 0; j < len(want[i]); j++ {
			require.InDelta(t, want[i][j], MustAt(t, m, i, j), tol, "m[%d,%d]", i, j)
		}
	}
}

// RequireIdentity ASSERTS m ≈ I_n within tol.
func RequireIdentity(t testing.TB, m *matrix.Matrix) {
	t.Helper()
	require.Equal(t, m.Rows(), m.Cols(), "identity must be square")
	require.True(t, m.Equal(matrix.NewIdentity(m.Rows())), "want identity, got:\n%s", m)
}

// wellConditioned RETURNS A = MᵀM + n·I for a random M: symmetric positive
// definite, so Inverse never trips the singular guard.
func wellConditioned(t testing.TB, n int, seed int64) *matrix.Matrix {
	t.Helper()
	M := RandFilled(t, n, n, seed)
	A, err := matrix.Product(M.Transpose(), M)
	require.NoError(t, err)
	require.NoError(t, A.Add(matrix.ScaleBy(matrix.NewIdentity(n), float64(n))))

	return A
}
