// Package mat - immutable 1-D Vector values and their Matrix conversions.
package mat

import (
	"fmt"
	"math"
)

// Vector is an immutable 1-D array of float64 values.
// Like Matrix, every operation returns a new instance.
type Vector struct {
	data []float64
}

// NewVector creates a Vector from a copy of data. An empty slice yields an
// empty vector; that is a valid value.
func NewVector(data []float64) *Vector {
	out := make([]float64, len(data))
	copy(out, data)

	return &Vector{data: out}
}

// VectorOf creates a length-n Vector with every element set to v.
func VectorOf(n int, v float64) (*Vector, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return &Vector{data: out}, nil
}

// Len returns the number of elements. Complexity: O(1).
func (v *Vector) Len() int { return len(v.data) }

// At retrieves element i with bounds checking. Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrIndexOutOfRange)
	}

	return v.data[i], nil
}

// Values returns a copy of the underlying elements.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Map returns a vector with f applied to every element.
func (v *Vector) Map(f func(float64) float64) *Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = f(x)
	}

	return &Vector{data: out}
}

// Reduce folds the vector left-to-right starting from init.
func (v *Vector) Reduce(init float64, f func(acc, x float64) float64) float64 {
	acc := init
	for _, x := range v.data {
		acc = f(acc, x)
	}

	return acc
}

// Zip combines v and other pairwise with f. Lengths must match.
func (v *Vector) Zip(other *Vector, f func(x, y float64) float64) (*Vector, error) {
	if len(v.data) != len(other.data) {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = f(v.data[i], other.data[i])
	}

	return &Vector{data: out}, nil
}

// Unzip splits every element into two via f, returning both halves.
func (v *Vector) Unzip(f func(x float64) (float64, float64)) (*Vector, *Vector) {
	left := make([]float64, len(v.data))
	right := make([]float64, len(v.data))
	for i, x := range v.data {
		left[i], right[i] = f(x)
	}

	return &Vector{data: left}, &Vector{data: right}
}

// Dot returns the inner product of v and other. Lengths must match.
func (v *Vector) Dot(other *Vector) (float64, error) {
	if len(v.data) != len(other.data) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i := range v.data {
		sum += v.data[i] * other.data[i]
	}

	return sum, nil
}

// Norm returns the Euclidean norm: Σx² then √.
func (v *Vector) Norm() float64 {
	var sum float64
	for _, x := range v.data {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// RowMatrix converts the vector into a 1×n Matrix.
func (v *Vector) RowMatrix() (*Matrix, error) {
	return FromFlat(1, len(v.data), v.data)
}

// ColMatrix converts the vector into an n×1 Matrix.
func (v *Vector) ColMatrix() (*Matrix, error) {
	return FromFlat(len(v.data), 1, v.data)
}

// VectorFromMatrix converts a single-row or single-column matrix into a
// Vector. Any other shape returns ErrNotVector.
func VectorFromMatrix(m *Matrix) (*Vector, error) {
	if m.rows != 1 && m.cols != 1 {
		return nil, ErrNotVector
	}

	return NewVector(m.data), nil
}
