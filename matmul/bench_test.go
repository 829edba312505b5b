package matmul_test

import (
	"testing"

	"github.com/helmgren/tessel/mat"
	"github.com/helmgren/tessel/matmul"
)

// benchmarkMultiply runs one strategy on n×n operands.
func benchmarkMultiply(b *testing.B, n int, opts matmul.Options) {
	b.Helper()
	x, err := mat.FromFunc(n, n, func(i, j int) float64 { return float64(i - j) })
	if err != nil {
		b.Fatalf("FromFunc failed: %v", err)
	}
	y, err := mat.FromFunc(n, n, func(i, j int) float64 { return float64(i + j) })
	if err != nil {
		b.Fatalf("FromFunc failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matmul.Multiply(x, y, opts); err != nil {
			b.Fatalf("Multiply failed: %v", err)
		}
	}
}

func BenchmarkMultiply_Sequential_128(b *testing.B) {
	opts := matmul.DefaultOptions()
	opts.BlockSize = 32
	benchmarkMultiply(b, 128, opts)
}

func BenchmarkMultiply_Sequential_256(b *testing.B) {
	opts := matmul.DefaultOptions()
	opts.BlockSize = 32
	benchmarkMultiply(b, 256, opts)
}

func BenchmarkMultiply_Parallel_256(b *testing.B) {
	opts := matmul.DefaultOptions()
	opts.Algorithm = matmul.Parallel
	opts.BlockSize = 32
	benchmarkMultiply(b, 256, opts)
}

func BenchmarkMultiply_Strassen_256(b *testing.B) {
	opts := matmul.DefaultOptions()
	opts.Algorithm = matmul.Strassen
	opts.StrassenThreshold = 64
	benchmarkMultiply(b, 256, opts)
}

func BenchmarkPolyEval_Degree4_64(b *testing.B) {
	x, err := mat.FromFunc(64, 64, func(i, j int) float64 { return float64(i*j) / 4096 })
	if err != nil {
		b.Fatalf("FromFunc failed: %v", err)
	}
	coeffs := []float64{1, -2, 0, 3, 1}
	opts := matmul.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matmul.PolyEval(x, coeffs, opts); err != nil {
			b.Fatalf("PolyEval failed: %v", err)
		}
	}
}
