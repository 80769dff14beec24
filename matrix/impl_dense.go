// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Keep value semantics explicit: Clone copies, Move transfers, Assign overwrites.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ref: O(1); Clone/Assign: O(r*c); Move: O(1); Resize: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxRef   = "Ref"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Matrix.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols); both are >= 1 after construction,
//     and 0 only in the moved-from state.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j),
//     exclusively owned by this instance.
//
// The zero value is the empty (moved-from) matrix; use New or NewDense.
type Matrix struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New returns the default 1×1 matrix holding a single 0.0.
// Complexity: O(1).
func New() *Matrix {
	return NewDense(1, 1)
}

// NewDense creates a rows×cols zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with the clamp policy: a non-positive rows or cols
//     yields a 1×1 zero matrix instead of an error.
//
// Implementation:
//   - Stage 1: normalize the shape via clampShape.
//   - Stage 2: allocate a zero-filled buffer.
//
// Behavior highlights:
//   - Never fails; NewDense(2, -1) is a 1×1 zero matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) *Matrix {
	rows, cols = clampShape(rows, cols)

	// make() zero-fills the buffer deterministically.
	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// clampShape forces both dimensions to 1 when either one is non-positive.
func clampShape(rows, cols int) (int, int) {
	if rows <= 0 || cols <= 0 {
		return 1, 1
	}

	return rows, cols
}

// FromRows builds a matrix from a slice of equally long rows (deep copy).
// Returns ErrBadShape when rows is empty, a row is empty, or rows are ragged.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m := &Matrix{r: r, c: c, data: make([]float64, 0, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrBadShape)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// SetRows overwrites the row count WITHOUT touching the storage.
// MAIN DESCRIPTION:
//   - Narrow, low-level mutator. After SetRows the dimension no longer matches
//     the buffer until the caller restores it; use Resize to change both at once.
//
// Behavior highlights:
//   - Accessors stay bounds-safe on a desynchronized matrix (ErrOutOfRange) and
//     kernels refuse it with ErrBadShape, so misuse never panics.
func (m *Matrix) SetRows(rows int) { m.r = rows }

// SetCols overwrites the column count WITHOUT touching the storage.
// Same caveat as SetRows.
func (m *Matrix) SetCols(cols int) { m.c = cols }

// Resize changes dimensions and storage together.
// MAIN DESCRIPTION:
//   - Atomic shape change; the overlapping top-left block is preserved and
//     new cells are zero. Non-positive arguments clamp to 1×1 like NewDense.
//
// Implementation:
//   - Stage 1: clamp, allocate the new buffer.
//   - Stage 2: copy min(r,r')×min(c,c') from the old buffer (only the part that
//     is actually backed when the matrix was desynchronized).
//   - Stage 3: swap dims and buffer in one step.
//
// Complexity:
//   - Time O(r'*c'), Space O(r'*c').
func (m *Matrix) Resize(rows, cols int) {
	rows, cols = clampShape(rows, cols)
	buf := make([]float64, rows*cols)

	keepR, keepC := min(rows, m.r), min(cols, m.c)
	var i, src int
	for i = 0; i < keepR && keepC > 0; i++ {
		src = i * m.c
		if src+keepC > len(m.data) {
			break // rest of the old rows are not backed by storage
		}
		copy(buf[i*cols:i*cols+keepC], m.data[src:src+keepC])
	}
	m.r, m.c, m.data = rows, cols, buf
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col and verify it is backed by the buffer
//     (SetRows/SetCols may have desynchronized the two).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}
	off := row*m.c + col
	if off >= len(m.data) {
		return 0, ErrOutOfRange
	}

	return off, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Ref returns a pointer to the stored value at (row, col), the mutable
// element reference of the matrix.
// MAIN DESCRIPTION:
//   - *p = v writes straight into the buffer; reads observe later writes.
//
// Behavior highlights:
//   - The pointer is valid until the next operation that replaces the buffer
//     (Mul, Resize, Assign, Move). Do not hold it across those.
//
// Errors:
//   - ErrOutOfRange when out of bounds.
func (m *Matrix) Ref(row, col int) (*float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return &m.data[off], nil
}

// Clone returns a deep copy with identical shape and data.
// Mutations of either copy never affect the other. Clone of nil is nil.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// Move transfers the storage and shape into a new Matrix in O(1).
// MAIN DESCRIPTION:
//   - The receiver is left in the moved-from state: 0×0, nil storage.
//     Element access on it fails with ErrOutOfRange and shape-dependent
//     kernels fail with ErrBadShape until Resize or Assign restores it.
func (m *Matrix) Move() *Matrix {
	dst := &Matrix{r: m.r, c: m.c, data: m.data}
	m.r, m.c, m.data = 0, 0, nil

	return dst
}

// Assign overwrites the receiver with a deep copy of src (copy assignment).
// Self-assignment is a no-op. A nil src resets the receiver to the empty state.
// Complexity: O(r*c).
func (m *Matrix) Assign(src *Matrix) {
	if m == src {
		return
	}
	if src == nil {
		m.r, m.c, m.data = 0, 0, nil
		return
	}
	cp := make([]float64, len(src.data))
	copy(cp, src.data)
	m.r, m.c, m.data = src.r, src.c, cp
}

// ToRows returns the contents as freshly allocated rows (deep copy).
// Complexity: O(r*c).
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
	}
	m.Do(func(i, j int, v float64) bool {
		out[i][j] = v
		return true
	})

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Matrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			v, _ := m.At(i, j) // bounds-safe even when desynchronized
			b.WriteString(fmt.Sprintf("%g", v))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Cells not backed by storage are skipped.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if base+j >= len(m.data) {
				return
			}
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, in row-major order.
// Returns ErrBadShape (and writes nothing) when storage and shape disagree.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix) Apply(f func(i, j int, v float64) float64) error {
	if err := validateStorage(m); err != nil {
		return fmt.Errorf("Matrix.%s: %w", ctxApply, err)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}

	return nil
}
