package matmul_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helmgren/tessel/mat"
	"github.com/helmgren/tessel/matmul"
)

func TestDefaultOptions(t *testing.T) {
	opts := matmul.DefaultOptions()
	require.Equal(t, matmul.Sequential, opts.Algorithm)
	require.Equal(t, matmul.DefaultBlockSize, opts.BlockSize)
	require.Equal(t, matmul.DefaultStrassenThreshold, opts.StrassenThreshold)
	require.GreaterOrEqual(t, opts.Parallelism, 1, "default parallelism is clamped to at least 1")
}

func TestDefaultPolyOptions_FavorsParallel(t *testing.T) {
	require.Equal(t, matmul.Parallel, matmul.DefaultPolyOptions().Algorithm)
}

// TestValidation_RejectsNonPositive: explicit non-positive configuration is
// an error, never silently clamped.
func TestValidation_RejectsNonPositive(t *testing.T) {
	a, err := mat.Identity(2)
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*matmul.Options)
		want   error
	}{
		{"zero block size", func(o *matmul.Options) { o.BlockSize = 0 }, matmul.ErrBlockSize},
		{"negative block size", func(o *matmul.Options) { o.BlockSize = -4 }, matmul.ErrBlockSize},
		{"zero threshold", func(o *matmul.Options) { o.StrassenThreshold = 0 }, matmul.ErrThreshold},
		{"zero parallelism", func(o *matmul.Options) { o.Parallelism = 0 }, matmul.ErrParallelism},
		{"negative parallelism", func(o *matmul.Options) { o.Parallelism = -1 }, matmul.ErrParallelism},
		{"unknown algorithm", func(o *matmul.Options) { o.Algorithm = matmul.Algorithm(42) }, matmul.ErrUnknownAlgorithm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := matmul.DefaultOptions()
			tc.mutate(&opts)
			_, err := matmul.Multiply(a, a, opts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAlgorithmString(t *testing.T) {
	require.Equal(t, "sequential", matmul.Sequential.String())
	require.Equal(t, "parallel", matmul.Parallel.String())
	require.Equal(t, "strassen", matmul.Strassen.String())
	require.Equal(t, "algorithm(42)", matmul.Algorithm(42).String())
}
