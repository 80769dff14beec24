// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matrixplus/matrix"
	"github.com/katalvlaran/matrixplus/matrixio"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitGeneral = 1
	ExitUsage   = 2 // bad flags, arguments or configuration
	ExitInput   = 3 // unreadable or malformed matrix document
	ExitMath    = 4 // dimension, shape or singularity failure
	ExitVerify  = 5 // --verify found a disagreement
)

var (
	// ErrUsage marks argument and configuration errors.
	ErrUsage = errors.New("usage")

	// ErrVerifyMismatch is returned when the gonum reference disagrees.
	ErrVerifyMismatch = errors.New("verification mismatch")
)

func usageErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w", ErrUsage, fmt.Errorf(format, args...))
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrVerifyMismatch):
		return ExitVerify
	case errors.Is(err, matrixio.ErrDecode), errors.Is(err, matrixio.ErrEmptyDocument),
		errors.Is(err, matrixio.ErrUnsupported), errors.Is(err, matrixio.ErrEncode):
		return ExitInput
	case errors.Is(err, matrix.ErrDimensionMismatch), errors.Is(err, matrix.ErrNonSquare),
		errors.Is(err, matrix.ErrSingular), errors.Is(err, matrix.ErrBadShape),
		errors.Is(err, matrix.ErrOutOfRange):
		return ExitMath
	}

	return ExitGeneral
}
