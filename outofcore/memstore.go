package outofcore

import (
	"context"
	"sync"
)

// coord addresses one block in a store.
type coord struct{ row, col int }

// MemStore is the in-memory Storage backend: an RWMutex-guarded map of
// blocks. Blocks are deep-copied on the way in and out, so callers and the
// store never share payloads.
type MemStore struct {
	mu     sync.RWMutex
	blocks map[coord]*Block
}

// compile-time interface assertion
var _ Storage = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{blocks: make(map[coord]*Block)}
}

// Read returns a copy of the block at (blockRow, blockCol); ok == false
// means nothing is stored there and the caller must treat it as all zeros.
func (s *MemStore) Read(ctx context.Context, blockRow, blockCol int) (*Block, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if blockRow < 0 || blockCol < 0 {
		return nil, false, ErrBlockBounds
	}

	s.mu.RLock()
	b, ok := s.blocks[coord{blockRow, blockCol}]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	return b.clone(), true, nil
}

// Write stores a copy of b at its coordinate, replacing any previous block.
func (s *MemStore) Write(ctx context.Context, b *Block) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b == nil || b.Rows <= 0 || b.Cols <= 0 || len(b.Data) != b.Rows*b.Cols {
		return ErrBlockData
	}
	if b.BlockRow < 0 || b.BlockCol < 0 {
		return ErrBlockBounds
	}

	s.mu.Lock()
	s.blocks[coord{b.BlockRow, b.BlockCol}] = b.clone()
	s.mu.Unlock()

	return nil
}

// Len returns the number of stored blocks. Useful for sparse-fixture tests.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.blocks)
}
