package outofcore

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/helmgren/tessel/block"
	"github.com/helmgren/tessel/mat"
)

// Matrix is a purely logical matrix addressed through a Storage: 64-bit
// logical dimensions, a block shape, and the backend holding the blocks.
// It never materializes the whole value; Materialize exists for tests and
// small results only.
type Matrix struct {
	totalRows, totalCols int64
	blockRows, blockCols int
	store                Storage
}

// NewMatrix builds a logical block matrix over store.
// All dimensions must be positive and store non-nil.
func NewMatrix(totalRows, totalCols int64, blockRows, blockCols int, store Storage) (*Matrix, error) {
	if totalRows <= 0 || totalCols <= 0 || blockRows <= 0 || blockCols <= 0 {
		return nil, ErrShape
	}
	if store == nil {
		return nil, ErrNilStorage
	}

	return &Matrix{
		totalRows: totalRows, totalCols: totalCols,
		blockRows: blockRows, blockCols: blockCols,
		store: store,
	}, nil
}

// Dims returns the logical dimensions. Complexity: O(1).
func (m *Matrix) Dims() (rows, cols int64) { return m.totalRows, m.totalCols }

// BlockShape returns the block dimensions. Complexity: O(1).
func (m *Matrix) BlockShape() (rows, cols int) { return m.blockRows, m.blockCols }

// GridRows returns ceil(totalRows/blockRows). Complexity: O(1).
func (m *Matrix) GridRows() int { return ceilDiv(m.totalRows, m.blockRows) }

// GridCols returns ceil(totalCols/blockCols). Complexity: O(1).
func (m *Matrix) GridCols() int { return ceilDiv(m.totalCols, m.blockCols) }

// Storage returns the backend the matrix reads from.
func (m *Matrix) Storage() Storage { return m.store }

func ceilDiv(total int64, size int) int {
	return int((total + int64(size) - 1) / int64(size))
}

// blockRowDim returns the effective height of block row bi; the trailing
// block row carries the remainder.
func (m *Matrix) blockRowDim(bi int) int {
	if rem := m.totalRows - int64(bi)*int64(m.blockRows); rem < int64(m.blockRows) {
		return int(rem)
	}

	return m.blockRows
}

// blockColDim returns the effective width of block column bj.
func (m *Matrix) blockColDim(bj int) int {
	if rem := m.totalCols - int64(bj)*int64(m.blockCols); rem < int64(m.blockCols) {
		return int(rem)
	}

	return m.blockCols
}

// Mul multiplies m by other, writing output blocks to result and returning
// the logical product matrix over result.
//
// Steps:
//  1. Validate: totalCols == other.totalRows (ErrDimensionMismatch),
//     blockCols == other.blockRows (ErrBlockAlign), parallelism > 0,
//     result non-nil.
//  2. One bounded task per output block: read the corresponding row strip
//     of m and column strip of other — an absent block contributes zero and
//     is skipped — accumulate into a private dense buffer, write once to
//     result.
//  3. Join all tasks; the first error cancels the group and aborts the call
//     with no partial result matrix.
//
// progress, if non-nil, fires once per completed output block with the
// completed and total counts; there is no ordering guarantee across blocks.
//
// Complexity: O(outR·outC·inner) block reads, O(parallelism·blockArea)
// extra memory.
func (m *Matrix) Mul(ctx context.Context, other *Matrix, parallelism int, result Storage, progress func(done, total int)) (*Matrix, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if m.totalCols != other.totalRows {
		return nil, ErrDimensionMismatch
	}
	if m.blockCols != other.blockRows {
		return nil, ErrBlockAlign
	}
	if parallelism <= 0 {
		return nil, ErrParallelism
	}
	if result == nil {
		return nil, ErrNilStorage
	}

	outR, outC := m.GridRows(), other.GridCols()
	inner := m.GridCols() // == other.GridRows() once shapes are aligned
	total := outR * outC

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for bi := 0; bi < outR; bi++ {
		for bj := 0; bj < outC; bj++ {
			bi, bj := bi, bj
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := m.mulBlock(gctx, other, bi, bj, inner, result); err != nil {
					return err
				}
				if progress != nil {
					progress(int(done.Add(1)), total)
				}

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewMatrix(m.totalRows, other.totalCols, m.blockRows, other.blockCols, result)
}

// mulBlock computes output block (bi, bj): a private accumulation over the
// shared-dimension strips followed by a single write to result.
func (m *Matrix) mulBlock(ctx context.Context, other *Matrix, bi, bj, inner int, result Storage) error {
	er, ec := m.blockRowDim(bi), other.blockColDim(bj)
	buf := make([]float64, er*ec)

	for bk := 0; bk < inner; bk++ {
		aBlk, ok, err := m.readChecked(ctx, bi, bk)
		if err != nil {
			return err
		}
		if !ok {
			continue // absent block: zero contribution
		}
		bBlk, ok, err := other.readChecked(ctx, bk, bj)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		// Shared extent of this strip pair; both were validated against
		// their own grids, so the widths agree. Every term is accumulated,
		// zero factors included, so non-finite block values propagate as a
		// plain triple loop would.
		for i := 0; i < aBlk.Rows; i++ {
			for kk := 0; kk < aBlk.Cols; kk++ {
				av := aBlk.Data[i*aBlk.Cols+kk]
				brow := bBlk.Data[kk*bBlk.Cols:]
				row := buf[i*ec : (i+1)*ec]
				for j := range row {
					row[j] += av * brow[j]
				}
			}
		}
	}

	out, err := NewBlock(bi, bj, er, ec, buf)
	if err != nil {
		return err
	}

	return result.Write(ctx, out)
}

// readChecked reads a block and validates its payload against the expected
// effective dimensions at that coordinate.
func (m *Matrix) readChecked(ctx context.Context, bi, bj int) (*Block, bool, error) {
	b, ok, err := m.store.Read(ctx, bi, bj)
	if err != nil || !ok {
		return nil, ok, err
	}
	if b.Rows != m.blockRowDim(bi) || b.Cols != m.blockColDim(bj) || len(b.Data) != b.Rows*b.Cols {
		return nil, false, fmt.Errorf("block (%d,%d): %w", bi, bj, ErrBlockData)
	}

	return b, true, nil
}

// FromDense loads a dense matrix into store block by block and returns the
// logical matrix over it. This is the ingest path for fixtures and the
// benchmark driver; it defeats the purpose for data that does not fit in
// memory.
func FromDense(ctx context.Context, src *mat.Matrix, blockRows, blockCols int, store Storage) (*Matrix, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if blockRows <= 0 || blockCols <= 0 {
		return nil, ErrShape
	}
	if store == nil {
		return nil, ErrNilStorage
	}

	rowSpans, err := block.Spans(src.Rows(), blockRows)
	if err != nil {
		return nil, err
	}
	colSpans, err := block.Spans(src.Cols(), blockCols)
	if err != nil {
		return nil, err
	}

	for bi, rs := range rowSpans {
		for bj, cs := range colSpans {
			sub, err := src.Slice(rs.Start, cs.Start, rs.Len, cs.Len)
			if err != nil {
				return nil, err
			}
			blk, err := NewBlock(bi, bj, rs.Len, cs.Len, sub.Flat())
			if err != nil {
				return nil, err
			}
			if err := store.Write(ctx, blk); err != nil {
				return nil, err
			}
		}
	}

	return NewMatrix(int64(src.Rows()), int64(src.Cols()), blockRows, blockCols, store)
}

// Materialize assembles the logical matrix into a dense one. Absent blocks
// materialize as zeros. The logical dimensions must fit the int-sized dense
// core.
func (m *Matrix) Materialize(ctx context.Context) (*mat.Matrix, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rows, cols := int(m.totalRows), int(m.totalCols)
	if int64(rows) != m.totalRows || int64(cols) != m.totalCols || rows*cols <= 0 {
		return nil, ErrShape
	}

	out := make([]float64, rows*cols)
	for bi := 0; bi < m.GridRows(); bi++ {
		for bj := 0; bj < m.GridCols(); bj++ {
			b, ok, err := m.readChecked(ctx, bi, bj)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue // absent block stays zero
			}
			rowOff, colOff := bi*m.blockRows, bj*m.blockCols
			for i := 0; i < b.Rows; i++ {
				dst := (rowOff+i)*cols + colOff
				copy(out[dst:dst+b.Cols], b.Data[i*b.Cols:(i+1)*b.Cols])
			}
		}
	}

	return mat.FromFlat(rows, cols, out)
}
