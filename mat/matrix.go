package mat

import (
	"fmt"
	"strings"
)

// Matrix is an immutable dense matrix of float64 values in row-major order.
// rows and cols are its dimensions; data holds rows*cols elements.
// No exported operation ever mutates a Matrix — they all return new instances.
type Matrix struct {
	rows, cols int       // number of rows and columns
	data       []float64 // flat backing storage, length == rows*cols
}

// matErrorf wraps an underlying error with Matrix method context.
func matErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// newMatrix allocates an uninitialized rows×cols matrix without validation.
// Callers must have validated rows > 0 and cols > 0 already.
func newMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Zeros creates a rows×cols matrix of all zeros.
// Complexity: O(rows·cols).
func Zeros(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return newMatrix(rows, cols), nil
}

// Ones creates a rows×cols matrix of all ones.
// Complexity: O(rows·cols).
func Ones(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	m := newMatrix(rows, cols)
	for i := range m.data {
		m.data[i] = 1
	}

	return m, nil
}

// Identity creates the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	m := newMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromFunc creates a rows×cols matrix whose element (i, j) is f(i, j).
// Complexity: O(rows·cols) calls to f.
func FromFunc(rows, cols int, f func(i, j int) float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	m := newMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i*cols+j] = f(i, j)
		}
	}

	return m, nil
}

// FromFlat creates a rows×cols matrix from a row-major flat slice.
// The slice is copied; len(data) must equal rows*cols.
// Complexity: O(rows·cols).
func FromFlat(rows, cols int, data []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, ErrBadShape
	}
	m := newMatrix(rows, cols)
	copy(m.data, data)

	return m, nil
}

// FromRows creates a matrix from nested row slices (literal construction).
// All rows must be non-empty and of equal length; input is copied.
// Complexity: O(rows·cols).
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	for _, r := range rows {
		if len(r) != cols {
			return nil, ErrBadShape
		}
	}
	m := newMatrix(len(rows), cols)
	for i, r := range rows {
		copy(m.data[i*cols:(i+1)*cols], r)
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Dims returns rows and columns in one call. Complexity: O(1).
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// IsSquare reports whether the matrix has as many rows as columns.
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfRange.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, matErrorf(method, row, col, ErrIndexOutOfRange)
	}

	return row*m.cols + col, nil
}

// At retrieves the element at (row, col) with bounds checking.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set returns a copy of the matrix with element (row, col) replaced by v.
// This is copy-on-write: the receiver is untouched and the cost is the full
// O(rows·cols) copy, deliberately not hidden behind O(1)-looking syntax.
func (m *Matrix) Set(row, col int, v float64) (*Matrix, error) {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return nil, err
	}
	out := newMatrix(m.rows, m.cols)
	copy(out.data, m.data)
	out.data[idx] = v

	return out, nil
}

// Slice returns a materialized copy of the rectangular window starting at
// (row, col) with the given extent. The window must lie fully inside the
// matrix. Complexity: O(rows·cols) of the window.
func (m *Matrix) Slice(row, col, rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if row < 0 || col < 0 || row+rows > m.rows || col+cols > m.cols {
		return nil, matErrorf("Slice", row, col, ErrIndexOutOfRange)
	}
	out := newMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		src := (row+i)*m.cols + col
		copy(out.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return out, nil
}

// Flat returns a copy of the row-major backing data.
// Complexity: O(rows·cols).
func (m *Matrix) Flat() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String implements fmt.Stringer with one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
