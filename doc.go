// SPDX-License-Identifier: MIT

// Package matrixplus is a dense, row-major float64 matrix toolkit.
//
// Packages:
//
//	matrix/           the Matrix value type: construction with clamp policy,
//	                    copy and move semantics, bounds-checked access, in-place
//	                    arithmetic, transpose, Laplace determinant, cofactors,
//	                    adjugate inverse and tolerance equality.
//	matrixio/         YAML / JSON(C) document codec: {rows: [[...], ...]}.
//	gonumx/           conversion to and from gonum's mat.Dense plus LU-based
//	                    reference determinant and inverse.
//	internal/config/  TOML + MATCALC_* environment settings for the CLI.
//	internal/cli/     cobra command tree of cmd/matcalc.
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]float64{{5, 3}, {1, 6}})
//	inv, _ := a.Inverse()
//	id, _ := matrix.Product(a, inv) // ≈ I within matrix.Epsilon
//
// Errors are sentinel values (matrix.ErrOutOfRange, ErrDimensionMismatch,
// ErrNonSquare, ErrSingular, ...) wrapped with context; match them with errors.Is.
package matrixplus
