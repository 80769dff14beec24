// Package matrix_test contains unit tests for the Matrix storage, value
// semantics and accessors.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixplus/matrix"
)

// TestNewDefault verifies the default constructor yields a 1×1 zero matrix.
func TestNewDefault(t *testing.T) {
	m := matrix.New()
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 1, m.Cols())
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))
}

// TestNewDenseZeroFilled verifies shape and zero initialization.
func TestNewDenseZeroFilled(t *testing.T) {
	m := matrix.NewDense(3, 4) // 3x4 matrix
	rows, cols := m.Shape()
	require.Equal(t, 3, rows)
	require.Equal(t, 4, cols)
	m.Do(func(i, j int, v float64) bool {
		require.Equal(t, 0.0, v, "m[%d,%d]", i, j)
		return true
	})
}

// TestNewDenseClamp ensures non-positive dimensions clamp to 1×1 instead of failing.
func TestNewDenseClamp(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"negative cols", 2, -1},
		{"zero rows", 0, 5},
		{"both negative", -3, -3},
		{"zero both", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := matrix.NewDense(tc.rows, tc.cols)
			require.Equal(t, 1, m.Rows())
			require.Equal(t, 1, m.Cols())
			require.Equal(t, 0.0, MustAt(t, m, 0, 0))
		})
	}
}

// TestFromRows covers the literal constructor and its shape checks.
func TestFromRows(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	RequireRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	_, err := matrix.FromRows(nil) // empty
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]float64{{}}) // empty row
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}}) // ragged
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestFromRowsCopiesInput ensures the caller's slices are not aliased.
func TestFromRowsCopiesInput(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m := MustFromRows(t, src)
	src[0][0] = 100 // mutate the source after construction
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestAtSetOutOfRange ensures At/Set/Ref return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := matrix.NewDense(2, 3)

	_, err := m.At(-1, 0) // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(2, 0) // row == rows
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 3) // col == cols
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56) // negative column
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Ref(5, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set followed by At on valid indices.
func TestSetGet(t *testing.T) {
	m := matrix.NewDense(2, 3)
	MustSet(t, m, 1, 2, 7.89)
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestRefIsMutable verifies the element reference writes through to storage.
func TestRefIsMutable(t *testing.T) {
	m := matrix.NewDense(2, 2)
	p, err := m.Ref(1, 0)
	require.NoError(t, err)

	*p = 4.5 // write through the reference
	require.Equal(t, 4.5, MustAt(t, m, 1, 0))

	MustSet(t, m, 1, 0, -2)
	require.Equal(t, -2.0, *p) // reads observe later writes
}

// TestCloneIndependence ensures Clone returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.True(t, clone.Equal(m))

	MustSet(t, clone, 0, 0, 3) // modify only the clone
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

// TestMoveLeavesSourceEmpty checks the moved-from state and ownership transfer.
func TestMoveLeavesSourceEmpty(t *testing.T) {
	src := MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	dst := src.Move()

	require.Equal(t, 0, src.Rows())
	require.Equal(t, 0, src.Cols())
	RequireRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, dst)

	_, err := src.At(0, 0) // moved-from matrix has no cells
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = src.Determinant()
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestMoveThenResizeRestores verifies a moved-from matrix is usable after Resize.
func TestMoveThenResizeRestores(t *testing.T) {
	src := matrix.NewDense(2, 2)
	_ = src.Move()

	src.Resize(2, 3)
	require.Equal(t, 2, src.Rows())
	require.Equal(t, 3, src.Cols())
	MustSet(t, src, 1, 2, 9)
	require.Equal(t, 9.0, MustAt(t, src, 1, 2))
}

// TestAssign covers copy assignment, including self-assignment and independence.
func TestAssign(t *testing.T) {
	a := matrix.NewDense(1, 1)
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	a.Assign(b)
	RequireRows(t, [][]float64{{1, 2}, {3, 4}}, a)

	MustSet(t, b, 0, 0, 42) // a must not follow b
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))

	a.Assign(a) // self-assignment keeps contents
	RequireRows(t, [][]float64{{1, 2}, {3, 4}}, a)
}

// TestSetRowsSetCols exercises the narrow mutators in isolation: only the
// dimension fields change.
func TestSetRowsSetCols(t *testing.T) {
	m := matrix.NewDense(2, 2)
	m.SetRows(5)
	m.SetCols(7)
	require.Equal(t, 5, m.Rows())
	require.Equal(t, 7, m.Cols())
}

// TestDesynchronizedMatrixIsRejected verifies kernels refuse a matrix whose
// dimension fields no longer match its storage.
func TestDesynchronizedMatrixIsRejected(t *testing.T) {
	m := matrix.NewDense(2, 2)
	m.SetRows(3)

	err := m.Add(matrix.NewDense(3, 2))
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = m.Determinant()
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = m.At(2, 1) // row 2 is not backed by storage
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestResize verifies the atomic mutator keeps the overlapping block.
func TestResize(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	m.Resize(3, 2) // shrink cols, grow rows
	RequireRows(t, [][]float64{{1, 2}, {4, 5}, {0, 0}}, m)

	m.Resize(-1, 4) // clamp policy
	RequireRows(t, [][]float64{{1}}, m)
}

// TestToRows ensures the export is a deep copy.
func TestToRows(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	rows := m.ToRows()
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)

	rows[1][1] = 0
	require.Equal(t, 4.0, MustAt(t, m, 1, 1))
}

// TestDoEarlyStop ensures the visitor stops when f returns false.
func TestDoEarlyStop(t *testing.T) {
	m := matrix.NewDense(3, 3)
	visited := 0
	m.Do(func(_, _ int, _ float64) bool {
		visited++
		return visited < 4
	})
	require.Equal(t, 4, visited)
}

// TestStringOutput checks that String formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
