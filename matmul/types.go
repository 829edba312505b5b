// Package matmul defines the algorithm enumeration, options, and sentinel
// errors for the multiply dispatcher.
package matmul

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for matmul configuration and shape preconditions.
var (
	// ErrUnknownAlgorithm indicates an Algorithm value outside the closed enum.
	ErrUnknownAlgorithm = errors.New("matmul: unknown multiplication algorithm")
	// ErrBlockSize indicates a non-positive BlockSize.
	ErrBlockSize = errors.New("matmul: block size must be positive")
	// ErrThreshold indicates a non-positive StrassenThreshold.
	ErrThreshold = errors.New("matmul: strassen threshold must be positive")
	// ErrParallelism indicates a non-positive Parallelism.
	ErrParallelism = errors.New("matmul: parallelism must be positive")
	// ErrStrassenShape indicates Strassen operands that are not square and equal-sized.
	ErrStrassenShape = errors.New("matmul: strassen requires square operands of equal size")
	// ErrNoCoefficients indicates an empty polynomial coefficient list.
	ErrNoCoefficients = errors.New("matmul: polynomial needs at least one coefficient")
	// ErrPolySquare indicates polynomial evaluation on a non-square matrix.
	ErrPolySquare = errors.New("matmul: polynomial evaluation requires a square matrix")
)

// Algorithm selects the multiplication strategy. It is a closed enumeration;
// values outside it are rejected during validation, never silently mapped.
type Algorithm int

const (
	// Sequential is the cache-friendly blocked O(n³) multiply with
	// deterministic accumulation order. The reference strategy.
	Sequential Algorithm = iota
	// Parallel is the same blocked decomposition with one bounded task per
	// output block; results are bit-identical to Sequential.
	Parallel
	// Strassen is the recursive divide-and-conquer multiply; results match
	// Sequential within a numeric tolerance only.
	Strassen
)

// String implements fmt.Stringer for diagnostics.
func (a Algorithm) String() string {
	switch a {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	case Strassen:
		return "strassen"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Default configuration values. DefaultOptions is the single source of truth;
// explicit non-positive fields are a configuration error, never clamped.
const (
	// DefaultBlockSize is the tile edge used when the caller does not choose one.
	DefaultBlockSize = 64
	// DefaultStrassenThreshold is the size at or below which Strassen
	// delegates to the sequential blocked multiply.
	DefaultStrassenThreshold = 64
)

// Options configures a multiply call.
//
// Fields:
//   - Algorithm         — which strategy runs; always explicit, never size-derived.
//   - BlockSize         — tile edge for the blocked strategies; > 0.
//   - StrassenThreshold — recursion cutoff for Strassen; > 0.
//   - Parallelism       — concurrent task cap for Parallel; > 0.
//   - Ctx               — optional cancellation context; nil means Background.
//
// Options has value semantics; the engine never mutates the caller's copy.
type Options struct {
	Algorithm         Algorithm
	BlockSize         int
	StrassenThreshold int
	Parallelism       int
	Ctx               context.Context
}

// DefaultOptions returns Sequential with the default block size and
// threshold, and Parallelism clamped to [1, number of CPUs]. This clamp is
// the one place a parallelism value is adjusted rather than rejected.
func DefaultOptions() Options {
	p := runtime.GOMAXPROCS(0)
	if p < 1 {
		p = 1
	}

	return Options{
		Algorithm:         Sequential,
		BlockSize:         DefaultBlockSize,
		StrassenThreshold: DefaultStrassenThreshold,
		Parallelism:       p,
	}
}

// DefaultPolyOptions returns DefaultOptions with the Parallel strategy
// selected: polynomial evaluation repeats multiplies on one (often large)
// matrix, where the bounded fan-out pays off. Any Options value is accepted
// by PolyEval; this is only the favored default.
func DefaultPolyOptions() Options {
	opts := DefaultOptions()
	opts.Algorithm = Parallel

	return opts
}

// normalize fills optional fields without touching the caller's copy.
func (o Options) normalize() Options {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return o
}

// validateOptions verifies every configuration field.
//
// Stage 1: Algorithm must be a member of the closed enum.
// Stage 2: BlockSize, StrassenThreshold, Parallelism must all be positive —
// explicit non-positive values are rejected, never clamped.
// Complexity: O(1).
func validateOptions(o Options) error {
	switch o.Algorithm {
	case Sequential, Parallel, Strassen:
	default:
		return ErrUnknownAlgorithm
	}
	if o.BlockSize <= 0 {
		return ErrBlockSize
	}
	if o.StrassenThreshold <= 0 {
		return ErrThreshold
	}
	if o.Parallelism <= 0 {
		return ErrParallelism
	}

	return nil
}
