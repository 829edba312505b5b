package matmul

import (
	"github.com/helmgren/tessel/mat"
)

// Multiply computes a·b using the strategy named by opts.Algorithm.
//
// Stage 1 (Validate): configuration fields, then the inner-dimension match
// a.Cols == b.Rows — both fail before any output is allocated.
// Stage 2 (Dispatch): a single exhaustive switch on opts.Algorithm. Matrix
// sizes are never inspected to override the caller's choice.
//
// Inputs are never mutated. On any error the result is nil.
func Multiply(a, b *mat.Matrix, opts Options) (*mat.Matrix, error) {
	opts = opts.normalize()
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if a.Cols() != b.Rows() {
		return nil, mat.ErrDimensionMismatch
	}

	// The single dispatch point: strictly configuration-driven.
	switch opts.Algorithm {
	case Sequential:
		return multiplySequential(a, b, opts)
	case Parallel:
		return multiplyParallel(a, b, opts)
	case Strassen:
		return multiplyStrassen(a, b, opts)
	default:
		// validateOptions admitted only the three members above.
		return nil, ErrUnknownAlgorithm
	}
}
