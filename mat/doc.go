// Package mat provides the dense numeric values every other tessel
// package computes with: an immutable row-major Matrix and an immutable
// Vector.
//
// 🚀 What is mat?
//
//	The leaf of the engine — plain values with basic algebra:
//	  • Constructors: Zeros, Ones, Identity, FromFunc, FromFlat, FromRows
//	  • Algebra: Add, Sub, Scale, Transpose, Elementwise, Map, Norm
//	  • Element access: bounds-checked At; copy-on-write Set
//	  • Vector: Map / Reduce / Zip / Unzip plus row/column Matrix conversions
//
// ✨ Key guarantees:
//   - Immutability — every operation returns a fresh value; operands are
//     never mutated. Set is an explicit O(rows·cols) copy, not a hidden
//     O(1) mutation.
//   - Shape first — binary operations validate shapes and fail before
//     allocating any output.
//   - Flat storage — len(data) == rows·cols, row-major, cache-friendly.
//
// Errors are sentinel values (ErrBadShape, ErrIndexOutOfRange,
// ErrDimensionMismatch, ErrNotVector) and match with errors.Is.
//
// Complexity: element access O(1); everything else O(rows·cols).
package mat
