package mat_test

import (
	"testing"

	"github.com/helmgren/tessel/mat"
)

// benchMatrix builds an n×n matrix with predictable values.
func benchMatrix(b *testing.B, n int) *mat.Matrix {
	b.Helper()
	m, err := mat.FromFunc(n, n, func(i, j int) float64 { return float64(i*n + j) })
	if err != nil {
		b.Fatalf("FromFunc failed: %v", err)
	}

	return m
}

func BenchmarkAdd_256(b *testing.B) {
	x := benchMatrix(b, 256)
	y := benchMatrix(b, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Add(y); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}

func BenchmarkTranspose_256(b *testing.B) {
	x := benchMatrix(b, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Transpose()
	}
}

func BenchmarkNorm_256(b *testing.B) {
	x := benchMatrix(b, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Norm()
	}
}
