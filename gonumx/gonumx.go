// SPDX-License-Identifier: MIT

// Package gonumx converts between matrix.Matrix and gonum's mat.Dense and
// exposes LU-based determinant and inverse as an independent reference for
// the cofactor kernels in package matrix.
//
// Error policy follows package matrix: the same sentinels, the same Epsilon
// singularity threshold, no panics on user input (gonum panics are guarded
// by validating shapes first).
package gonumx

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matrixplus/matrix"
)

const (
	opToDense = "ToDense"
	opDet     = "Det"
	opInverse = "Inverse"
	opMul     = "Mul"
)

func gonumxErrorf(op string, err error) error {
	return fmt.Errorf("gonumx.%s: %w", op, err)
}

// ToDense copies m into a new row-major *mat.Dense.
// Empty (moved-from) matrices are rejected with matrix.ErrBadShape since
// gonum has no 0×0 Dense constructor; so are matrices whose storage no longer
// backs every cell after SetRows/SetCols.
func ToDense(m *matrix.Matrix) (*mat.Dense, error) {
	if m == nil {
		return nil, gonumxErrorf(opToDense, matrix.ErrNilMatrix)
	}
	r, c := m.Shape()
	if r <= 0 || c <= 0 {
		return nil, gonumxErrorf(opToDense, matrix.ErrBadShape)
	}

	data := make([]float64, r*c)
	// Apply validates storage against the shape before visiting.
	err := m.Apply(func(i, j int, v float64) float64 {
		data[i*c+j] = v
		return v
	})
	if err != nil {
		return nil, gonumxErrorf(opToDense, matrix.ErrBadShape)
	}

	return mat.NewDense(r, c, data), nil
}

// FromMatrix copies any gonum matrix (Dense, transposes, views) into a new Matrix.
func FromMatrix(a mat.Matrix) (*matrix.Matrix, error) {
	if a == nil {
		return nil, gonumxErrorf("FromMatrix", matrix.ErrNilMatrix)
	}
	r, c := a.Dims()
	if r <= 0 || c <= 0 {
		return nil, gonumxErrorf("FromMatrix", matrix.ErrBadShape)
	}
	out := matrix.NewDense(r, c)
	err := out.Apply(func(i, j int, _ float64) float64 { return a.At(i, j) })
	if err != nil {
		return nil, gonumxErrorf("FromMatrix", err)
	}

	return out, nil
}

// squareDense converts m and enforces the square-only contract.
func squareDense(op string, m *matrix.Matrix) (*mat.Dense, error) {
	d, err := ToDense(m)
	if err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return nil, gonumxErrorf(op, matrix.ErrNilMatrix)
		}
		return nil, gonumxErrorf(op, matrix.ErrBadShape)
	}
	if r, c := d.Dims(); r != c {
		return nil, gonumxErrorf(op, matrix.ErrNonSquare)
	}

	return d, nil
}

// Det returns det(m) computed through gonum's LU factorization.
func Det(m *matrix.Matrix) (float64, error) {
	d, err := squareDense(opDet, m)
	if err != nil {
		return 0, err
	}

	return mat.Det(d), nil
}

// Inverse returns m⁻¹ computed by gonum. A |det| below matrix.Epsilon is
// matrix.ErrSingular, matching Matrix.Inverse. A gonum condition warning on a
// non-singular input is not an error: the result is still returned.
func Inverse(m *matrix.Matrix) (*matrix.Matrix, error) {
	d, err := squareDense(opInverse, m)
	if err != nil {
		return nil, err
	}
	if math.Abs(mat.Det(d)) < matrix.Epsilon {
		return nil, gonumxErrorf(opInverse, matrix.ErrSingular)
	}

	var inv mat.Dense
	if err = inv.Inverse(d); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, gonumxErrorf(opInverse, matrix.ErrSingular)
		}
	}

	return FromMatrix(&inv)
}

// Mul returns a×b computed by gonum.
func Mul(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	da, err := ToDense(a)
	if err != nil {
		return nil, gonumxErrorf(opMul, errors.Unwrap(err))
	}
	db, err := ToDense(b)
	if err != nil {
		return nil, gonumxErrorf(opMul, errors.Unwrap(err))
	}
	if _, ac := da.Dims(); ac != b.Rows() {
		return nil, gonumxErrorf(opMul, matrix.ErrDimensionMismatch)
	}

	var out mat.Dense
	out.Mul(da, db)

	return FromMatrix(&out)
}
