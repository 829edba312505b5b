// Package mat defines sentinel errors shared by Matrix and Vector operations.
package mat

import "errors"

// Sentinel errors for mat operations.
var (
	// ErrBadShape indicates non-positive dimensions, a flat slice whose length
	// does not equal rows*cols, or ragged row input.
	ErrBadShape = errors.New("mat: invalid shape")
	// ErrIndexOutOfRange indicates element access outside matrix or vector bounds.
	ErrIndexOutOfRange = errors.New("mat: index out of range")
	// ErrDimensionMismatch indicates incompatible shapes for a binary operation.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")
	// ErrNotVector indicates a matrix that is neither a single row nor a single column.
	ErrNotVector = errors.New("mat: matrix is not a single row or column")
)
