// Package block defines core types and sentinel errors for block
// decomposition of dense matrices.
package block

import (
	"errors"
	"fmt"

	"github.com/helmgren/tessel/mat"
)

// Sentinel errors for block operations.
var (
	// ErrBlockSize indicates a non-positive block size.
	ErrBlockSize = errors.New("block: block size must be positive")
	// ErrEmptyGrid indicates a grid with no blocks.
	ErrEmptyGrid = errors.New("block: grid must have at least one block")
	// ErrNilBlock indicates a grid slot holding a nil matrix.
	ErrNilBlock = errors.New("block: grid contains a nil block")
	// ErrRaggedGrid indicates inconsistent block heights within a block row
	// or inconsistent block widths within a block column.
	ErrRaggedGrid = errors.New("block: inconsistent block heights or widths")
)

// Span is one block's index range along a single axis: elements
// [Start, Start+Len) of that axis.
type Span struct {
	Start, Len int
}

// Spans splits an axis of the given total length into consecutive block
// ranges of the given size. The final span carries the remainder when size
// does not divide total. Both arguments must be positive.
func Spans(total, size int) ([]Span, error) {
	if total <= 0 || size <= 0 {
		return nil, ErrBlockSize
	}
	n := (total + size - 1) / size // ceil(total/size)
	spans := make([]Span, n)
	for i := 0; i < n; i++ {
		start := i * size
		length := size
		if start+length > total {
			length = total - start
		}
		spans[i] = Span{Start: start, Len: length}
	}

	return spans, nil
}

// View is a non-owning, read-only window into a source matrix.
// It copies nothing until Materialize. Views are only constructed by
// PartitionView, which validates the window against the source.
type View struct {
	src            *mat.Matrix
	rowOff, colOff int
	rows, cols     int
}

// Rows returns the window height. Complexity: O(1).
func (v View) Rows() int { return v.rows }

// Cols returns the window width. Complexity: O(1).
func (v View) Cols() int { return v.cols }

// At retrieves element (i, j) of the window with bounds checking.
func (v View) At(i, j int) (float64, error) {
	if i < 0 || i >= v.rows || j < 0 || j >= v.cols {
		return 0, fmt.Errorf("View.At(%d,%d): %w", i, j, mat.ErrIndexOutOfRange)
	}

	return v.src.At(v.rowOff+i, v.colOff+j)
}

// Materialize copies the window into an owned matrix.
// Complexity: O(rows·cols) of the window.
func (v View) Materialize() *mat.Matrix {
	out, err := v.src.Slice(v.rowOff, v.colOff, v.rows, v.cols)
	if err != nil {
		// Views are validated at construction; a failure here is an
		// internal invariant break, not user input.
		panic(fmt.Sprintf("block: corrupt view: %v", err))
	}

	return out
}
