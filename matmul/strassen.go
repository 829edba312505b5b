package matmul

import (
	"fmt"
	"math/bits"

	"github.com/helmgren/tessel/mat"
)

// multiplyStrassen runs the divide-and-conquer multiply.
//
// Steps:
//  1. Validate: both operands square and of equal size, else ErrStrassenShape.
//  2. Pad both operands with zeros up to the next power-of-two size.
//  3. Recurse: at or below opts.StrassenThreshold delegate to the
//     sequential blocked multiply; above it, split into quadrants, compute
//     the seven canonical sub-products, and combine.
//  4. Trim the result back to the original shape.
//
// Padding, recursion and trimming are separate steps so each is testable on
// its own. The extra additions and subtractions introduce rounding versus
// the blocked strategies, so comparisons against them need a tolerance.
//
// Complexity: O(n^2.807) time, O(n²) extra memory for padding.
func multiplyStrassen(a, b *mat.Matrix, opts Options) (*mat.Matrix, error) {
	n := a.Rows()
	if !a.IsSquare() || !b.IsSquare() || n != b.Rows() {
		return nil, ErrStrassenShape
	}

	size := nextPow2(n)
	ap, err := padToPow2(a, size)
	if err != nil {
		return nil, err
	}
	bp, err := padToPow2(b, size)
	if err != nil {
		return nil, err
	}

	cp, err := strassenRecurse(ap, bp, opts)
	if err != nil {
		return nil, err
	}

	return trim(cp, n, n)
}

// nextPow2 returns the smallest power of two ≥ n (n must be positive).
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// padToPow2 embeds m into the top-left corner of a size×size zero matrix.
// A matrix already at the target size is returned as-is (values are
// immutable, sharing is safe).
func padToPow2(m *mat.Matrix, size int) (*mat.Matrix, error) {
	if m.Rows() == size && m.Cols() == size {
		return m, nil
	}
	flat := m.Flat()
	cols := m.Cols()
	out := make([]float64, size*size)
	for i := 0; i < m.Rows(); i++ {
		copy(out[i*size:i*size+cols], flat[i*cols:(i+1)*cols])
	}

	return mat.FromFlat(size, size, out)
}

// trim slices the top-left rows×cols corner back out of a padded result.
func trim(m *mat.Matrix, rows, cols int) (*mat.Matrix, error) {
	if m.Rows() == rows && m.Cols() == cols {
		return m, nil
	}

	return m.Slice(0, 0, rows, cols)
}

// quadAdd and quadSub combine equal-shaped quadrants. All quadrants at one
// recursion level are half×half by construction, so a shape mismatch here
// is an internal invariant break, not user input.
func quadAdd(a, b *mat.Matrix) *mat.Matrix {
	s, err := a.Add(b)
	if err != nil {
		panic(fmt.Sprintf("matmul: strassen quadrant shapes diverged: %v", err))
	}

	return s
}

func quadSub(a, b *mat.Matrix) *mat.Matrix {
	s, err := a.Sub(b)
	if err != nil {
		panic(fmt.Sprintf("matmul: strassen quadrant shapes diverged: %v", err))
	}

	return s
}

// strassenRecurse multiplies two size×size power-of-two matrices.
//
// At or below the threshold it delegates to the sequential blocked engine
// (never the parallel one: recursion fan-out times task fan-out would break
// the caller's parallelism bound). Above it, the seven canonical products:
//
//	M1=(A11+A22)(B11+B22)  M2=(A21+A22)B11   M3=A11(B12−B22)  M4=A22(B21−B11)
//	M5=(A11+A12)B22        M6=(A21−A11)(B11+B12)  M7=(A12−A22)(B21+B22)
//
// combine into
//
//	C11=M1+M4−M5+M7  C12=M3+M5  C21=M2+M4  C22=M1−M2+M3+M6
func strassenRecurse(a, b *mat.Matrix, opts Options) (*mat.Matrix, error) {
	n := a.Rows()
	if n <= opts.StrassenThreshold {
		return multiplySequential(a, b, opts)
	}

	half := n / 2
	a11, a12, a21, a22, err := splitQuadrants(a, half)
	if err != nil {
		return nil, err
	}
	b11, b12, b21, b22, err := splitQuadrants(b, half)
	if err != nil {
		return nil, err
	}

	m1, err := strassenRecurse(quadAdd(a11, a22), quadAdd(b11, b22), opts)
	if err != nil {
		return nil, err
	}
	m2, err := strassenRecurse(quadAdd(a21, a22), b11, opts)
	if err != nil {
		return nil, err
	}
	m3, err := strassenRecurse(a11, quadSub(b12, b22), opts)
	if err != nil {
		return nil, err
	}
	m4, err := strassenRecurse(a22, quadSub(b21, b11), opts)
	if err != nil {
		return nil, err
	}
	m5, err := strassenRecurse(quadAdd(a11, a12), b22, opts)
	if err != nil {
		return nil, err
	}
	m6, err := strassenRecurse(quadSub(a21, a11), quadAdd(b11, b12), opts)
	if err != nil {
		return nil, err
	}
	m7, err := strassenRecurse(quadSub(a12, a22), quadAdd(b21, b22), opts)
	if err != nil {
		return nil, err
	}

	c11 := quadAdd(quadSub(quadAdd(m1, m4), m5), m7)
	c12 := quadAdd(m3, m5)
	c21 := quadAdd(m2, m4)
	c22 := quadAdd(quadAdd(quadSub(m1, m2), m3), m6)

	return joinQuadrants(c11, c12, c21, c22)
}

// splitQuadrants slices a 2h×2h matrix into its four h×h corners.
func splitQuadrants(m *mat.Matrix, half int) (q11, q12, q21, q22 *mat.Matrix, err error) {
	if q11, err = m.Slice(0, 0, half, half); err != nil {
		return nil, nil, nil, nil, err
	}
	if q12, err = m.Slice(0, half, half, half); err != nil {
		return nil, nil, nil, nil, err
	}
	if q21, err = m.Slice(half, 0, half, half); err != nil {
		return nil, nil, nil, nil, err
	}
	if q22, err = m.Slice(half, half, half, half); err != nil {
		return nil, nil, nil, nil, err
	}

	return q11, q12, q21, q22, nil
}

// joinQuadrants reassembles four h×h quadrants into one 2h×2h matrix.
func joinQuadrants(c11, c12, c21, c22 *mat.Matrix) (*mat.Matrix, error) {
	half := c11.Rows()
	n := 2 * half
	out := make([]float64, n*n)
	f11, f12, f21, f22 := c11.Flat(), c12.Flat(), c21.Flat(), c22.Flat()
	for i := 0; i < half; i++ {
		copy(out[i*n:i*n+half], f11[i*half:(i+1)*half])
		copy(out[i*n+half:(i+1)*n], f12[i*half:(i+1)*half])
		lo := (half + i) * n
		copy(out[lo:lo+half], f21[i*half:(i+1)*half])
		copy(out[lo+half:lo+n], f22[i*half:(i+1)*half])
	}

	return mat.FromFlat(n, n, out)
}
