// Package matrix_test provides benchmarks for the matrix-vector kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsolve/matrix"
	"github.com/katalvlaran/lvsolve/parallel"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 512, 2048}

// sinks to defeat dead-code elimination
var sinkV []float64

func BenchmarkMatVecInto(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			x := randVec(n, 4242)
			y := make([]float64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.MatVecInto(y, A, x); err != nil {
					b.Fatal(err)
				}
			}
			sinkV = y
		})
	}
}

func BenchmarkMatVecParallel(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, w := range []int{2, 4, 8} {
			b.Run(fmt.Sprintf("n=%d/w=%d", n, w), func(b *testing.B) {
				A := mustDense(b, n, n)
				fillDenseRand(b, A, 1337)
				x := randVec(n, 4242)
				y := make([]float64, n)
				p, err := parallel.New(parallel.Config{Workers: w})
				if err != nil {
					b.Fatal(err)
				}
				defer p.Close()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err = matrix.MatVecParallel(p, y, A, x); err != nil {
						b.Fatal(err)
					}
				}
				sinkV = y
			})
		}
	}
}
