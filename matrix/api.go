// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide value-returning counterparts of the in-place methods, one per
//     arithmetic operator: Sum (+), Diff (-), Product (*), ScaleBy / ScalarMul
//     (scalar *, both operand orders) and Equal (==).
//   - Provide intention-revealing constructors (NewIdentity, ZerosLike, IdentityLike).
//
// Determinism & Policy:
//   - Facades never touch their operands: they clone the left operand and run
//     the in-place kernel on the clone, so error semantics are identical.
//
// Compound assignment maps onto the methods directly:
//
//	a += b  →  a.Add(b)
//	a -= b  →  a.Sub(b)
//	a *= b  →  a.Mul(b)
//	a *= s  →  a.Scale(s)
//	a = b   →  a.Assign(b)

package matrix

// ---------- Constructors & Utilities ----------

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// A non-positive n clamps to the 1×1 identity like NewDense.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) *Matrix {
	I := NewDense(n, n)
	for i := 0; i < I.r; i++ {
		I.data[i*I.c+i] = 1.0
	}

	return I
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Returns ErrNilMatrix or ErrBadShape for unusable input.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := validateOperand(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.r, m.c), nil
}

// IdentityLike returns the identity with dimension Rows(m); requires a square m.
//
// AI-Hints: handy to check A·A⁻¹ ≈ I.
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.r), nil
}

// ---------- Operators (value-returning; operands untouched) ----------

// Sum returns a + b as a new matrix.
// Errors: ErrNilMatrix, ErrBadShape, ErrDimensionMismatch.
func Sum(a, b *Matrix) (*Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := a.Clone()
	if err := res.Add(b); err != nil {
		return nil, err
	}

	return res, nil
}

// Diff returns a − b as a new matrix.
// Errors: ErrNilMatrix, ErrBadShape, ErrDimensionMismatch.
func Diff(a, b *Matrix) (*Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := a.Clone()
	if err := res.Sub(b); err != nil {
		return nil, err
	}

	return res, nil
}

// Product returns the matrix product a × b as a new matrix.
// Errors: ErrNilMatrix, ErrBadShape, ErrDimensionMismatch (a.Cols != b.Rows).
func Product(a, b *Matrix) (*Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := a.Clone()
	if err := res.Mul(b); err != nil {
		return nil, err
	}

	return res, nil
}

// ScaleBy returns m * alpha as a new matrix. A nil m yields nil.
func ScaleBy(m *Matrix, alpha float64) *Matrix {
	if m == nil {
		return nil
	}
	res := m.Clone()
	res.Scale(alpha)

	return res
}

// ScalarMul returns alpha * m as a new matrix (scalar on the left).
func ScalarMul(alpha float64, m *Matrix) *Matrix { return ScaleBy(m, alpha) }

// Equal is the free-function form of a.Equal(b).
func Equal(a, b *Matrix) bool { return a.Equal(b) }
