// Package outofcore defines the Block payload, the Storage seam, and the
// sentinel errors of the out-of-core layer.
package outofcore

import (
	"context"
	"errors"
)

// Sentinel errors for outofcore operations.
var (
	// ErrShape indicates non-positive logical or block dimensions.
	ErrShape = errors.New("outofcore: invalid logical or block shape")
	// ErrDimensionMismatch indicates incompatible logical dimensions for multiply.
	ErrDimensionMismatch = errors.New("outofcore: dimension mismatch")
	// ErrBlockAlign indicates operand block shapes that do not line up on the
	// shared dimension.
	ErrBlockAlign = errors.New("outofcore: operand block shapes are not aligned")
	// ErrBlockBounds indicates a block coordinate outside the grid.
	ErrBlockBounds = errors.New("outofcore: block coordinate out of range")
	// ErrBlockData indicates a block payload inconsistent with its dimensions.
	ErrBlockData = errors.New("outofcore: block payload does not match its dimensions")
	// ErrNilStorage indicates a missing storage backend.
	ErrNilStorage = errors.New("outofcore: storage must not be nil")
	// ErrStoreClosed indicates an operation on a closed store.
	ErrStoreClosed = errors.New("outofcore: store is closed")
	// ErrBadHeader indicates an invalid or corrupted file store header.
	ErrBadHeader = errors.New("outofcore: invalid or corrupted store header")
	// ErrParallelism indicates a non-positive parallelism bound.
	ErrParallelism = errors.New("outofcore: parallelism must be positive")
)

// Block is the transferable payload at the storage boundary: one dense
// sub-matrix together with its grid coordinate. Data is row-major with
// len == Rows*Cols.
type Block struct {
	BlockRow, BlockCol int
	Rows, Cols         int
	Data               []float64
}

// NewBlock validates and builds a Block. The data slice is copied.
func NewBlock(blockRow, blockCol, rows, cols int, data []float64) (*Block, error) {
	if blockRow < 0 || blockCol < 0 {
		return nil, ErrBlockBounds
	}
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, ErrBlockData
	}
	payload := make([]float64, len(data))
	copy(payload, data)

	return &Block{BlockRow: blockRow, BlockCol: blockCol, Rows: rows, Cols: cols, Data: payload}, nil
}

// clone deep-copies a block so stores and callers never share payloads.
func (b *Block) clone() *Block {
	out := *b
	out.Data = make([]float64, len(b.Data))
	copy(out.Data, b.Data)

	return &out
}

// Storage is the seam between logical block matrices and any concrete
// persistence or network back-end. Implementations must be safe for
// concurrent use on distinct coordinates; concurrent access to the same
// coordinate is a caller error (last-write-wins).
type Storage interface {
	// Read returns the block stored at (blockRow, blockCol). The second
	// result reports presence: ok == false means no block is stored there,
	// and the caller MUST treat the coordinate as an all-zero block. Absence
	// is an explicit part of the contract — it is never conflated with an
	// error or an empty payload.
	Read(ctx context.Context, blockRow, blockCol int) (_ *Block, ok bool, _ error)

	// Write stores the block at its coordinate, overwriting any previous
	// block there.
	Write(ctx context.Context, b *Block) error
}
