// Package block partitions a dense mat.Matrix into a rectangular grid of
// sub-matrices and reassembles such grids back into one matrix.
//
// 🚀 What is block?
//
//	The decomposition layer between the dense core and the multiply
//	strategies:
//	  • Spans — how one axis splits into block index ranges
//	  • View — a zero-copy read-only window into a source matrix
//	  • Grid — a materialized blockRows×blockCols grid of owned blocks
//	  • Partition / PartitionView / Assemble — the round-trip
//
// ✨ Key guarantees:
//   - Grid invariant — within a block row all blocks share height, within a
//     block column all blocks share width; Assemble and NewGrid enforce it.
//   - Remainders — trailing blocks carry whatever the block size does not
//     evenly divide; Assemble(Partition(A, bs)) == A for every bs ≥ 1,
//     including bs larger than the matrix.
//   - Views copy nothing until Materialize.
//
// Errors: ErrBlockSize, ErrEmptyGrid, ErrRaggedGrid.
//
// Complexity: Partition O(rows·cols); PartitionView O(grid); Assemble O(rows·cols).
package block
