package block

import (
	"fmt"

	"github.com/helmgren/tessel/mat"
)

// Grid is a materialized rectangular grid of owned matrix blocks.
// Invariant: all blocks within a block row share the same height, and all
// blocks within a block column share the same width. NewGrid and Partition
// are the only constructors; both establish the invariant.
type Grid struct {
	blocks [][]*mat.Matrix
	rows   int // total assembled rows
	cols   int // total assembled columns
}

// NewGrid builds a Grid from nested block slices, validating rectangularity
// and the height/width invariants at construction.
// Complexity: O(blockRows·blockCols) checks, no element copies.
func NewGrid(blocks [][]*mat.Matrix) (*Grid, error) {
	if len(blocks) == 0 || len(blocks[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	blockCols := len(blocks[0])

	// Every block row must have the same number of blocks, every slot must
	// hold a block, and every block in a row must share its height with the
	// row's first block. Nil slots are rejected before any block is touched.
	totalRows := 0
	for bi, row := range blocks {
		if len(row) != blockCols {
			return nil, ErrRaggedGrid
		}
		for _, b := range row {
			if b == nil {
				return nil, fmt.Errorf("block row %d: %w", bi, ErrNilBlock)
			}
		}
		h := row[0].Rows()
		for _, b := range row {
			if b.Rows() != h {
				return nil, fmt.Errorf("block row %d: %w", bi, ErrRaggedGrid)
			}
		}
		totalRows += h
	}

	// Every block in a column must share its width with the column's first block.
	totalCols := 0
	for bj := 0; bj < blockCols; bj++ {
		w := blocks[0][bj].Cols()
		for bi := range blocks {
			if blocks[bi][bj].Cols() != w {
				return nil, fmt.Errorf("block column %d: %w", bj, ErrRaggedGrid)
			}
		}
		totalCols += w
	}

	return &Grid{blocks: blocks, rows: totalRows, cols: totalCols}, nil
}

// BlockRows returns the number of block rows. Complexity: O(1).
func (g *Grid) BlockRows() int { return len(g.blocks) }

// BlockCols returns the number of block columns. Complexity: O(1).
func (g *Grid) BlockCols() int { return len(g.blocks[0]) }

// Dims returns the total assembled dimensions. Complexity: O(1).
func (g *Grid) Dims() (rows, cols int) { return g.rows, g.cols }

// Block returns the owned block at grid coordinate (bi, bj).
func (g *Grid) Block(bi, bj int) (*mat.Matrix, error) {
	if bi < 0 || bi >= len(g.blocks) || bj < 0 || bj >= len(g.blocks[0]) {
		return nil, fmt.Errorf("Grid.Block(%d,%d): %w", bi, bj, mat.ErrIndexOutOfRange)
	}

	return g.blocks[bi][bj], nil
}

// Assemble reassembles the grid into one dense matrix.
// Complexity: O(rows·cols) of the assembled matrix.
func Assemble(g *Grid) (*mat.Matrix, error) {
	if g == nil || len(g.blocks) == 0 {
		return nil, ErrEmptyGrid
	}
	out := make([]float64, g.rows*g.cols)

	rowOff := 0
	for _, blockRow := range g.blocks {
		h := blockRow[0].Rows()
		colOff := 0
		for _, b := range blockRow {
			flat := b.Flat()
			w := b.Cols()
			for i := 0; i < h; i++ {
				dst := (rowOff+i)*g.cols + colOff
				copy(out[dst:dst+w], flat[i*w:(i+1)*w])
			}
			colOff += w
		}
		rowOff += h
	}

	return mat.FromFlat(g.rows, g.cols, out)
}
