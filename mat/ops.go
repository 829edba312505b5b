// Package mat - element-wise and structural operations on Matrix values.
//
// Every binary operation validates shapes first and fails before allocating
// the output. Operands are never mutated.
package mat

import "math"

// sameShape returns ErrDimensionMismatch unless a and b share dimensions.
func sameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// Add returns m + b. Shapes must match.
// Complexity: O(rows·cols).
func (m *Matrix) Add(b *Matrix) (*Matrix, error) {
	if err := sameShape(m, b); err != nil {
		return nil, err
	}
	out := newMatrix(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] + b.data[i]
	}

	return out, nil
}

// Sub returns m - b. Shapes must match.
// Complexity: O(rows·cols).
func (m *Matrix) Sub(b *Matrix) (*Matrix, error) {
	if err := sameShape(m, b); err != nil {
		return nil, err
	}
	out := newMatrix(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] - b.data[i]
	}

	return out, nil
}

// Scale returns alpha·m.
// Complexity: O(rows·cols).
func (m *Matrix) Scale(alpha float64) *Matrix {
	out := newMatrix(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = alpha * v
	}

	return out
}

// Transpose returns the cols×rows transpose of m.
// Complexity: O(rows·cols).
func (m *Matrix) Transpose() *Matrix {
	out := newMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}

	return out
}

// Map returns a matrix with f applied to every element.
// Complexity: O(rows·cols) calls to f.
func (m *Matrix) Map(f func(float64) float64) *Matrix {
	out := newMatrix(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = f(v)
	}

	return out
}

// Elementwise returns op applied pairwise to m and b. Shapes must match.
// Complexity: O(rows·cols) calls to op.
func (m *Matrix) Elementwise(b *Matrix, op func(x, y float64) float64) (*Matrix, error) {
	if err := sameShape(m, b); err != nil {
		return nil, err
	}
	out := newMatrix(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = op(m.data[i], b.data[i])
	}

	return out, nil
}

// Equal reports exact structural equality: same shape and bit-equal elements.
func (m *Matrix) Equal(b *Matrix) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports equality within absolute tolerance tol per element.
func (m *Matrix) EqualApprox(b *Matrix, tol float64) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for i := range m.data {
		if math.Abs(m.data[i]-b.data[i]) > tol {
			return false
		}
	}

	return true
}

// Norm returns the Frobenius norm: the square root of the sum of squared
// elements. Complexity: O(rows·cols).
func (m *Matrix) Norm() float64 {
	var sum float64
	for _, v := range m.data {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// Row returns row i as a Vector.
func (m *Matrix) Row(i int) (*Vector, error) {
	if i < 0 || i >= m.rows {
		return nil, matErrorf("Row", i, 0, ErrIndexOutOfRange)
	}

	return NewVector(m.data[i*m.cols : (i+1)*m.cols]), nil
}

// Col returns column j as a Vector.
func (m *Matrix) Col(j int) (*Vector, error) {
	if j < 0 || j >= m.cols {
		return nil, matErrorf("Col", 0, j, ErrIndexOutOfRange)
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+j]
	}

	return &Vector{data: out}, nil
}
