// SPDX-License-Identifier: MIT

// Package matrix implements a dense, arbitrary-size float64 matrix value type.
//
// What & Why:
//
//	Matrix owns a row-major flat buffer and exposes element access with bounds
//	checking, in-place arithmetic (Add, Sub, Scale, Mul), Transpose, the
//	cofactor matrix, the determinant and the inverse. Determinant and inverse
//	follow their textbook definitions (Laplace expansion, adjugate over
//	determinant); there is no pivoting and no decomposition, so they are meant
//	for small matrices.
//
// Value semantics:
//
//	Every Matrix exclusively owns its storage. Clone deep-copies, Assign
//	overwrites the receiver with a deep copy, Move hands the storage to a new
//	Matrix and leaves the source 0×0. Constructors never fail: a non-positive
//	dimension produces a 1×1 zero matrix.
//
// Errors:
//
//	Failures are sentinels (ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare,
//	ErrSingular, ErrBadShape, ErrNilMatrix) wrapped with the operation name;
//	match them with errors.Is. In-place operations validate before writing, so
//	a failed call leaves the receiver untouched.
//
// Complexity:
//
//	At/Set/Ref O(1); Add/Sub/Scale/Equal/Transpose O(r*c); Mul O(r*n*c);
//	Determinant O(n!); Cofactors and Inverse O(n^2·(n-1)!).
//
// A Matrix is not safe for concurrent mutation; synchronize externally.
package matrix
