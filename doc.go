// Package tessel is a dense-matrix computation engine built around
// block decomposition — interchangeable multiplication strategies,
// bounded-parallel execution and out-of-core storage.
//
// 🚀 What is tessel?
//
//	A compute library that brings together:
//		• Dense core: immutable row-major Matrix & Vector with basic algebra
//		• Block decomposition: zero-copy views & materialized grids, assemble/partition
//		• Multiply strategies: sequential blocked, bounded-parallel blocked, Strassen
//		• Out-of-core: block-addressed storage seam, in-memory & memory-mapped backends
//		• Polynomials: Horner-scheme matrix polynomial evaluation
//
// ✨ Why choose tessel?
//
//   - Explicit over clever – the algorithm is always your configuration, never a size heuristic
//   - Deterministic – sequential and parallel strategies produce bit-identical results
//   - Race-free by construction – disjoint block writes, no locks on the hot path
//   - Extensible – BlockStorage is the single seam for any persistence or network back-end
//
// Under the hood, everything is organized under five packages:
//
//	mat/       — dense Matrix & Vector values and their algebra
//	block/     — partitioning a Matrix into block grids and back
//	matmul/    — configuration, dispatcher, the three strategies, polyEval
//	outofcore/ — Storage interface, logical block matrix, MemStore & FileStore
//	cmd/tesselbench/ — benchmarking driver with live out-of-core progress
//
// Quick sketch of a blocked multiply:
//
//	    ┌───┬───┐   ┌───┬───┐
//	    │A11│A12│ · │B11│B12│   C[i,j] = Σk A[i,k]·B[k,j]
//	    ├───┼───┤   ├───┼───┤   one bounded task per output block
//	    │A21│A22│   │B21│B22│
//	    └───┴───┘   └───┴───┘
//
// Dive into the per-package doc.go files for contracts, error taxonomy and
// complexity notes.
//
//	go get github.com/helmgren/tessel
package tessel
