// SPDX-License-Identifier: MIT

package matrixio

import "errors"

// Sentinel errors of the document codec. Matrix-level failures (ragged rows)
// surface as matrix.ErrBadShape wrapped under ErrDecode.
var (
	// ErrUnknownFormat is returned for an unrecognized format name.
	ErrUnknownFormat = errors.New("matrixio: unknown format")

	// ErrUnsupported is returned when a format cannot serve the requested direction.
	ErrUnsupported = errors.New("matrixio: unsupported format for operation")

	// ErrEmptyDocument is returned when the payload carries no rows.
	ErrEmptyDocument = errors.New("matrixio: document has no rows")

	// ErrDecode wraps parser and shape failures.
	ErrDecode = errors.New("matrixio: decode failed")

	// ErrEncode wraps serializer failures (e.g. NaN in JSON).
	ErrEncode = errors.New("matrixio: encode failed")
)
