package matmul

import (
	"golang.org/x/sync/errgroup"

	"github.com/helmgren/tessel/mat"
)

// multiplyParallel runs the blocked multiply with one task per output block,
// admission bounded by opts.Parallelism.
//
// Each task accumulates its full block into a private buffer through the
// same kernel as the sequential strategy, then performs a single write into
// its disjoint region of the shared flat result. No locks: correctness rests
// on index-range disjointness, not mutual exclusion.
//
// Failure semantics are fail-fast: the first error cancels the group
// context, pending siblings observe it at their checkpoint, and the call
// returns nil — no partial result is ever exposed. The call is synchronous
// from the caller's view; Wait joins every task before returning.
//
// Complexity: O(m·k·n) work, O(Parallelism·blockSize²) extra memory.
func multiplyParallel(a, b *mat.Matrix, opts Options) (*mat.Matrix, error) {
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	rowSpans, colSpans, innerSpans, err := multiplySpans(m, k, n, opts.BlockSize)
	if err != nil {
		return nil, err
	}

	af, bf := a.Flat(), b.Flat()
	out := make([]float64, m*n)

	// errgroup.SetLimit is the counting admission limiter; WithContext gives
	// fail-fast cancellation of siblings on the first error.
	g, ctx := errgroup.WithContext(opts.Ctx)
	g.SetLimit(opts.Parallelism)
	for _, rs := range rowSpans {
		for _, cs := range colSpans {
			rs, cs := rs, cs
			g.Go(func() error {
				// Checkpoint before the heavy loop: a cancelled sibling or
				// caller context aborts without touching the result.
				if err := ctx.Err(); err != nil {
					return err
				}
				buf := make([]float64, rs.Len*cs.Len)
				accumulateBlock(af, bf, k, n, rs, cs, innerSpans, buf)
				writeBlock(out, n, rs, cs, buf)

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mat.FromFlat(m, n, out)
}
