package mat2_test

import (
	"testing"

	"github.com/matkit/matkit/mat2"
)

// BenchmarkAppendColumn measures column growth on a 1000×10 matrix.
func BenchmarkAppendColumn(b *testing.B) {
	const n = 1000
	col := make([]float64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m, err := mat2.New[float64](n, 10)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		b.StartTimer()
		_ = m.AppendColumn(col)
	}
}

// BenchmarkAddScaledRow measures one elimination step on a wide row.
func BenchmarkAddScaledRow(b *testing.B) {
	m, err := mat2.NewWith(2, 10000, func(i, j int) float64 { return float64(i + j) })
	if err != nil {
		b.Fatalf("setup NewWith failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mat2.AddScaledRow(m, 1, 0, -0.5)
	}
}
