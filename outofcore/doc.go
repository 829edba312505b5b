// Package outofcore multiplies matrices that never fit in memory at once,
// addressed exclusively through a block-storage interface.
//
// 🚀 What is outofcore?
//
//	The storage seam of the engine:
//	  • Block — a transferable block payload with its grid coordinate
//	  • Storage — two operations, Read by coordinate and Write; the sole
//	    extension point for any persistence or network back-end
//	  • Matrix — a purely logical matrix over a Storage; it never
//	    materializes the whole value
//	  • MemStore — mutex-guarded in-memory map backend
//	  • FileStore — memory-mapped single-file backend with fixed slots
//
// ✨ Key guarantees:
//   - Absent means zero — Read reports absence through an explicit comma-ok
//     result, and callers MUST treat an absent block as all zeros. This is
//     the documented contract (it keeps sparse and identity fixtures cheap),
//     not an accidental fallback.
//   - Disjoint writes — Mul computes each output block in a private buffer
//     and writes it once to its own coordinate; no locks on the result sink.
//     Reusing one sink for two concurrent logical operations is undefined
//     (last-write-wins) and must be avoided by the caller.
//   - Fail-fast — the first error from any block task aborts the whole
//     multiply; no partial result matrix is returned.
//
// ⚙️ Usage:
//
//	a, _ := outofcore.NewMatrix(rows, inner, 256, 256, aStore)
//	b, _ := outofcore.NewMatrix(inner, cols, 256, 256, bStore)
//	c, err := a.Mul(ctx, b, 8, outofcore.NewMemStore(), func(done, total int) {
//		// fires once per completed block, in no particular order
//	})
//
// Complexity: Mul performs gridRows·gridCols·inner block reads and one
// write per output block; memory is O(parallelism · blockRows·blockCols).
package outofcore
