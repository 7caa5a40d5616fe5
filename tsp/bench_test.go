// Package tsp_test: benchmarks for Solve.
// Policy:
//   - Inputs are built outside the timer; only the search is measured.
//   - Fixed seeds; sizes small enough for exact search on CI.
package tsp_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtour/tsp"
)

// BenchmarkSolve_Uniform measures the worst pruning case: every tour ties.
func BenchmarkSolve_Uniform(b *testing.B) {
	for _, n := range []int{6, 8} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := mkComplete(b, n, 1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := tsp.Solve(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSolve_RandomDense measures a dense random instance where the
// bound prunes effectively.
func BenchmarkSolve_RandomDense(b *testing.B) {
	rng := rand.New(rand.NewSource(seedDet))
	g := mkRandom(b, rng, 10, 1.0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}
