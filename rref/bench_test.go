package rref_test

import (
	"math/rand"
	"testing"

	"github.com/matkit/matkit/mat2"
	"github.com/matkit/matkit/rref"
)

// BenchmarkReduce measures full Gauss-Jordan reduction of a random
// 100×100 matrix. Complexity: O(rows·cols·min(rows,cols)).
func BenchmarkReduce(b *testing.B) {
	const n = 100
	rng := rand.New(rand.NewSource(42))
	src, err := mat2.NewWith(n, n, func(_, _ int) float64 { return rng.Float64()*10 - 5 })
	if err != nil {
		b.Fatalf("setup NewWith failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := src.Clone()
		b.StartTimer()
		rref.Reduce(m)
	}
}

// BenchmarkIsRREF measures validation of a 100×100 identity matrix.
func BenchmarkIsRREF(b *testing.B) {
	const n = 100
	m, err := mat2.NewWith(n, n, func(i, j int) float64 {
		if i == j {
			return 1
		}
		return 0
	})
	if err != nil {
		b.Fatalf("setup NewWith failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rref.IsRREF(m)
	}
}
