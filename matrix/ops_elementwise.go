// SPDX-License-Identifier: MIT
// Package matrix: tolerance-based comparison helpers.
//
// Purpose:
//   - Single source of truth for the absolute tolerance used by Equal and by
//     the singularity guard of Inverse.
//
// Policy:
//   - Two values are equal iff |a-b| < Epsilon. NaN never compares equal.

package matrix

import "math"

// Epsilon is the absolute tolerance of every floating-point comparison in the package.
const Epsilon = 1e-6

// almostEqual reports |a-b| < tol. NaN on either side yields false.
func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// Equal reports whether m and o have identical dimensions and every pair of
// corresponding elements differs by less than Epsilon.
// Implementation:
//   - Stage 1: nil and dimension checks short-circuit to false.
//   - Stage 2: flat loop; first violation returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix) Equal(o *Matrix) bool {
	return m.EqualWithin(o, Epsilon)
}

// EqualWithin is Equal with a caller-chosen absolute tolerance (|tol| is used).
// Matrices whose storage disagrees with their shape never compare equal.
func (m *Matrix) EqualWithin(o *Matrix, tol float64) bool {
	if m == nil || o == nil {
		return false
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	if len(m.data) != len(o.data) || validateStorage(m) != nil {
		return false
	}
	tol = math.Abs(tol)
	for idx := range m.data {
		if !almostEqual(m.data[idx], o.data[idx], tol) {
			return false // early-exit on first violation
		}
	}

	return true
}
