// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for precondition checks.
//  - Keep kernels minimal by delegating nil/storage/shape checks here.
//  - Return sentinels wrapped with the validator tag so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Storage → Shape).
//  - Every in-place kernel validates BEFORE its first write.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the matrix pointer is non-nil.
func validateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateStorage ensures the buffer backs exactly Rows()*Cols() cells.
// Detects matrices desynchronized through SetRows/SetCols.
// Complexity: O(1).
func validateStorage(m *Matrix) error {
	if m.r < 0 || m.c < 0 || len(m.data) != m.r*m.c {
		return validatorErrorf("validateStorage", ErrBadShape)
	}

	return nil
}

// validateOperand runs NotNil → Storage on a single operand.
func validateOperand(m *Matrix) error {
	if err := validateNotNil(m); err != nil {
		return err
	}

	return validateStorage(m)
}

// validateSameShape ensures a and b are usable and have equal dimensions.
// Used by Add/Sub.
func validateSameShape(a, b *Matrix) error {
	if err := validateOperand(a); err != nil {
		return err
	}
	if err := validateOperand(b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf("validateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("validateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// validateMulCompatible ensures inner dimensions agree (a.Cols == b.Rows).
func validateMulCompatible(a, b *Matrix) error {
	if err := validateOperand(a); err != nil {
		return err
	}
	if err := validateOperand(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("validateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// validateSquare ensures m is a non-empty square matrix.
// Errors: ErrBadShape for the empty (moved-from) matrix, ErrNonSquare otherwise.
func validateSquare(m *Matrix) error {
	if err := validateOperand(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("validateSquare", ErrNonSquare)
	}
	if m.r == 0 {
		return validatorErrorf("validateSquare", ErrBadShape)
	}

	return nil
}
