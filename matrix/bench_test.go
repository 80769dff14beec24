// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matrixplus/matrix"
)

// benchSizes are the matrix sizes for the polynomial kernels.
var benchSizes = []int{16, 64, 128}

// expansionSizes are kept small: Laplace expansion is factorial.
var expansionSizes = []int{4, 6, 8}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilled(b, n, n, 1337)
			B := RandFilled(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sum(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilled(b, n, n, 5)
			B := RandFilled(b, n, n, 6)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Product(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilled(b, n, n+8, 7) // rectangular
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Transpose()
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range expansionSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilled(b, n, n, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := A.Determinant()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range expansionSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := wellConditioned(b, n, 13)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Inverse()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
