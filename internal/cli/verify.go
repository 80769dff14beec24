// SPDX-License-Identifier: MIT

package cli

import (
	"math"

	"github.com/katalvlaran/matrixplus/matrix"
)

// agrees reports |got-ref| < Epsilon·max(1,|ref|), the --verify rule for scalars.
func agrees(got, ref float64) bool {
	return math.Abs(got-ref) < matrix.Epsilon*math.Max(1, math.Abs(ref))
}

// matricesAgree applies the same rule to every element, scaled by the largest
// magnitude in ref: near-singular inputs have inverse entries far above 1.
func matricesAgree(got, ref *matrix.Matrix) bool {
	scale := 1.0
	ref.Do(func(_, _ int, v float64) bool {
		scale = math.Max(scale, math.Abs(v))
		return true
	})

	return got.EqualWithin(ref, matrix.Epsilon*scale)
}
