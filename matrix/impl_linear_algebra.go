// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic of the Matrix value type: in-place
// element-wise addition and subtraction, scalar scaling, matrix
// multiplication, transpose, cofactor matrix, determinant and inverse.
// All kernels validate before their first write and return wrapped sentinels.
//
// Numeric policy:
//   - Determinant and cofactors use recursive Laplace expansion along the
//     first row. This is O(n!) and only practical for small matrices; it is
//     kept on purpose because decomposition-based methods round differently.
//   - Inverse is adjugate / determinant; |det| < Epsilon means singular.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes m = m + dir*o in place for dir ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and the flat loop.
//
// Implementation:
//   - Stage 1: validateSameShape(m, o); nothing is written on failure.
//   - Stage 2: single flat loop 0..n-1.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix) addSub(o *Matrix, dir float64, opTag string) error {
	if err := validateSameShape(m, o); err != nil {
		return matrixErrorf(opTag, err)
	}
	for idx := range m.data { // deterministic 0..n-1
		m.data[idx] += dir * o.data[idx]
	}

	return nil
}

// Add performs m += o element-wise.
// Errors: ErrNilMatrix, ErrBadShape, ErrDimensionMismatch (shapes differ).
// The receiver is unchanged when an error is returned.
func (m *Matrix) Add(o *Matrix) error { return m.addSub(o, +1, opAdd) }

// Sub performs m -= o element-wise.
// Errors: ErrNilMatrix, ErrBadShape, ErrDimensionMismatch (shapes differ).
// The receiver is unchanged when an error is returned.
func (m *Matrix) Sub(o *Matrix) error { return m.addSub(o, -1, opSub) }

// Scale multiplies every element by alpha in place. Always succeeds;
// a nil receiver is a no-op.
// Complexity: O(r*c).
func (m *Matrix) Scale(alpha float64) {
	if m == nil {
		return
	}
	for idx := range m.data {
		m.data[idx] *= alpha
	}
}

// Mul replaces m with the matrix product m × o.
// Implementation:
//   - Stage 1: validate inner dimensions (m.Cols == o.Rows).
//   - Stage 2: accumulate res[i,j] = Σ_k m[i,k]*o[k,j] into a fresh buffer
//     with the i→j→k order.
//   - Stage 3: swap the shape and buffer in one step; the old buffer is released.
//
// Behavior highlights:
//   - Safe when o == m (self-multiplication): reads never hit the new buffer.
//   - On error the receiver is untouched.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Matrix) Mul(o *Matrix) error {
	if err := validateMulCompatible(m, o); err != nil {
		return matrixErrorf(opMul, err)
	}

	rows, inner, cols := m.r, m.c, o.c
	res := make([]float64, rows*cols)
	var (
		i, j, k int
		acc     float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = ZeroSum
			for k = 0; k < inner; k++ {
				acc += m.data[i*inner+k] * o.data[k*cols+j]
			}
			res[i*cols+j] = acc
		}
	}
	m.c, m.data = cols, res

	return nil
}

// Transpose returns a new cols×rows matrix with res[i,j] = m[j,i].
// The receiver is never mutated. Always succeeds; on a desynchronized
// matrix the cells without storage read as zero.
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	res := &Matrix{r: m.c, c: m.r, data: make([]float64, max(m.r*m.c, 0))}
	m.Do(func(i, j int, v float64) bool {
		res.data[j*m.r+i] = v
		return true
	})

	return res
}

// minor returns the (n-1)×(n-1) matrix obtained by deleting row and col
// from the square matrix m. Caller guarantees n >= 2 and valid indices.
// Complexity: O(n^2).
func (m *Matrix) minor(row, col int) *Matrix {
	n := m.r
	res := &Matrix{r: n - 1, c: n - 1, data: make([]float64, 0, (n-1)*(n-1))}
	var i, j int
	for i = 0; i < n; i++ {
		if i == row {
			continue
		}
		for j = 0; j < n; j++ {
			if j == col {
				continue
			}
			res.data = append(res.data, m.data[i*n+j])
		}
	}

	return res
}

// sign returns (-1)^p.
func sign(p int) float64 {
	if p%2 == 0 {
		return 1
	}

	return -1
}

// det is the recursive Laplace expansion over a validated square matrix.
//   - 1×1: the single element.
//   - 2×2: ad − bc.
//   - n×n: Σ_j (−1)^j · a[0,j] · det(minor(0,j)).
func (m *Matrix) det() float64 {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	sum := ZeroSum
	for j := 0; j < m.c; j++ {
		sum += sign(j) * m.data[j] * m.minor(0, j).det()
	}

	return sum
}

// Determinant computes det(m) by cofactor expansion along the first row.
// MAIN DESCRIPTION:
//   - Exact recursive definition; no pivoting, no decomposition.
//
// Errors:
//   - ErrNonSquare when Rows != Cols; ErrBadShape on an empty matrix.
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level.
func (m *Matrix) Determinant() (float64, error) {
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.det(), nil
}

// cofactors builds the matrix of signed minor determinants of a validated
// square matrix. For 1×1 the conventional cofactor [[1]] is returned.
func (m *Matrix) cofactors() *Matrix {
	n := m.r
	res := NewDense(n, n)
	if n == 1 {
		res.data[0] = 1
		return res
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = sign(i+j) * m.minor(i, j).det()
		}
	}

	return res
}

// Cofactors returns the matrix of cofactors C with C[i,j] = (−1)^(i+j)·det(minor(i,j)).
// The result is NOT transposed; the adjugate is Cofactors().Transpose().
//
// Errors:
//   - ErrNonSquare, ErrBadShape.
//
// Complexity:
//   - Time O(n^2 · (n-1)!).
func (m *Matrix) Cofactors() (*Matrix, error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	return m.cofactors(), nil
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// Implementation:
//   - Stage 1: validate square; compute det; |det| < Epsilon → ErrSingular.
//   - Stage 2: 1×1 → [[1/det]].
//   - Stage 3: cofactors of mᵀ (equal to the adjugate), scaled by 1/det.
//
// Errors:
//   - ErrNonSquare, ErrBadShape, ErrSingular.
//
// Complexity:
//   - Dominated by the cofactor matrix, O(n^2 · (n-1)!).
func (m *Matrix) Inverse() (*Matrix, error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d := m.det()
	if math.Abs(d) < Epsilon {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	if m.r == 1 {
		res := New()
		res.data[0] = 1 / d
		return res, nil
	}
	adj := m.Transpose().cofactors()
	adj.Scale(1 / d)

	return adj, nil
}
