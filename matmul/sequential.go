package matmul

import (
	"github.com/helmgren/tessel/block"
	"github.com/helmgren/tessel/mat"
)

// multiplySequential is the cache-friendly blocked multiply and the
// reference strategy: every output element is accumulated over shared-
// dimension blocks in ascending order, so its result is the one the other
// strategies are compared against.
//
// Steps:
//  1. Split the row, column, and shared axes into block spans.
//  2. For each output block (bi, bj), accumulate into a private buffer via
//     the shared kernel, then write the buffer into its disjoint region of
//     the flat result.
//
// Complexity: O(m·k·n) time, O(blockSize²) extra memory.
func multiplySequential(a, b *mat.Matrix, opts Options) (*mat.Matrix, error) {
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	rowSpans, colSpans, innerSpans, err := multiplySpans(m, k, n, opts.BlockSize)
	if err != nil {
		return nil, err
	}

	af, bf := a.Flat(), b.Flat()
	out := make([]float64, m*n)
	for _, rs := range rowSpans {
		for _, cs := range colSpans {
			buf := make([]float64, rs.Len*cs.Len)
			accumulateBlock(af, bf, k, n, rs, cs, innerSpans, buf)
			writeBlock(out, n, rs, cs, buf)
		}
	}

	return mat.FromFlat(m, n, out)
}

// multiplySpans splits the three multiply axes under one block size.
func multiplySpans(m, k, n, blockSize int) (rowSpans, colSpans, innerSpans []block.Span, err error) {
	if rowSpans, err = block.Spans(m, blockSize); err != nil {
		return nil, nil, nil, err
	}
	if colSpans, err = block.Spans(n, blockSize); err != nil {
		return nil, nil, nil, err
	}
	if innerSpans, err = block.Spans(k, blockSize); err != nil {
		return nil, nil, nil, err
	}

	return rowSpans, colSpans, innerSpans, nil
}

// accumulateBlock adds the (rs × cs) output block of a·b into buf, which
// must be zeroed and of length rs.Len*cs.Len. aCols and bCols are the flat
// strides of the operands.
//
// The accumulation order is fixed: shared-dimension spans ascending, then
// offsets within each span ascending. Sequential and Parallel both
// accumulate through this kernel, which is what makes their results
// bit-identical rather than merely close. Every term is accumulated, zero
// factors included, so non-finite operands propagate exactly as in a plain
// triple loop (0·Inf contributes NaN, never silently nothing).
func accumulateBlock(a, b []float64, aCols, bCols int, rs, cs block.Span, inner []block.Span, buf []float64) {
	for _, ks := range inner {
		for i := 0; i < rs.Len; i++ {
			row := buf[i*cs.Len : (i+1)*cs.Len]
			for kk := 0; kk < ks.Len; kk++ {
				av := a[(rs.Start+i)*aCols+ks.Start+kk]
				brow := b[(ks.Start+kk)*bCols+cs.Start:]
				for j := range row {
					row[j] += av * brow[j]
				}
			}
		}
	}
}

// writeBlock copies a finished block buffer into its disjoint region of the
// flat result with stride cols. The single write per block is what lets the
// parallel strategy share the result without locks.
func writeBlock(out []float64, cols int, rs, cs block.Span, buf []float64) {
	for i := 0; i < rs.Len; i++ {
		dst := (rs.Start+i)*cols + cs.Start
		copy(out[dst:dst+cs.Len], buf[i*cs.Len:(i+1)*cs.Len])
	}
}
