// Package matmul multiplies dense matrices through one dispatcher and
// three interchangeable strategies, plus Horner-scheme polynomial
// evaluation built on top of it.
//
// 🚀 What is matmul?
//
//	The strategy layer of the engine:
//	  • Sequential — cache-friendly blocked O(n³) multiply; the reference
//	    result and the Strassen base case
//	  • Parallel — same decomposition, one bounded task per output block,
//	    private accumulation, single disjoint write, no locks
//	  • Strassen — recursive divide-and-conquer with power-of-two padding
//	    and trimming, O(n^2.807)
//	  • PolyEval — aₙ·Aⁿ + … + a₁·A + a₀·I via Horner's scheme
//
// ✨ Key guarantees:
//   - The algorithm is always the caller's explicit configuration. The
//     dispatcher never inspects matrix sizes to override the choice.
//   - Sequential and Parallel produce bit-identical results: every output
//     element is accumulated in the same order by the same kernel.
//   - Strassen matches Sequential within a numeric tolerance only; its
//     extra additions introduce rounding.
//   - Fail-fast — the first error inside any parallel task aborts the whole
//     call; no partial result is ever returned.
//
// ⚙️ Usage:
//
//	opts := matmul.DefaultOptions()
//	opts.Algorithm = matmul.Parallel
//	opts.BlockSize = 32
//
//	c, err := matmul.Multiply(a, b, opts)
//
// Errors: configuration errors (ErrUnknownAlgorithm, ErrBlockSize,
// ErrThreshold, ErrParallelism), shape errors (mat.ErrDimensionMismatch,
// ErrStrassenShape) and polynomial errors (ErrNoCoefficients,
// ErrPolySquare). All surface synchronously at the violated precondition.
//
// Performance: Sequential/Parallel O(n³) time, O(blockSize²) extra memory
// per task; Strassen O(n^2.807) time, O(n²) extra memory for padding.
package matmul
