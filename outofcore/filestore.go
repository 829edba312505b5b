package outofcore

import (
	"context"
	"encoding/binary"
	"math"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// FileStore is a memory-mapped single-file Storage backend. The file holds
// a fixed header followed by one fixed-size slot per grid coordinate:
//
//	header: magic u32 | version u32 | gridRows u32 | gridCols u32 |
//	        blockRows u32 | blockCols u32                      (24 bytes)
//	slot:   rows u32 | cols u32 | blockRows·blockCols float64 payload
//
// A slot whose rows field is zero holds no block — that coordinate reads as
// absent, which callers treat as all zeros. Concurrent writers to distinct
// coordinates touch disjoint byte ranges and are safe; concurrent writers
// to the same coordinate are a caller error (last-write-wins).
type FileStore struct {
	file                 *os.File
	data                 mmap.MMap
	gridRows, gridCols   int
	blockRows, blockCols int

	mu     sync.RWMutex // guards lifecycle (Close), not slot access
	closed bool
}

var _ Storage = (*FileStore)(nil)

const (
	fileMagic   uint32 = 0x4C535354 // "TSSL" little-endian
	fileVersion uint32 = 1
	headerSize         = 24
	slotHead           = 8 // rows u32 + cols u32
)

// slotSize returns the byte size of one block slot.
func (s *FileStore) slotSize() int {
	return slotHead + s.blockRows*s.blockCols*8
}

// fileSize returns the expected total file size for the store's geometry.
func (s *FileStore) fileSize() int64 {
	return headerSize + int64(s.gridRows*s.gridCols)*int64(s.slotSize())
}

// Create makes (or truncates) a file store for a gridRows×gridCols grid of
// blocks up to blockRows×blockCols each, pre-sizing and mapping the file.
// Every slot starts absent.
func Create(path string, gridRows, gridCols, blockRows, blockCols int) (*FileStore, error) {
	if gridRows <= 0 || gridCols <= 0 || blockRows <= 0 || blockCols <= 0 {
		return nil, ErrShape
	}
	s := &FileStore{
		gridRows: gridRows, gridCols: gridCols,
		blockRows: blockRows, blockCols: blockCols,
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	if err = f.Truncate(s.fileSize()); err != nil {
		f.Close()

		return nil, err
	}
	if s.data, err = mmap.Map(f, mmap.RDWR, 0); err != nil {
		f.Close()

		return nil, err
	}
	s.file = f

	// Write and persist the header so Open can validate geometry.
	le := binary.LittleEndian
	le.PutUint32(s.data[0:], fileMagic)
	le.PutUint32(s.data[4:], fileVersion)
	le.PutUint32(s.data[8:], uint32(gridRows))
	le.PutUint32(s.data[12:], uint32(gridCols))
	le.PutUint32(s.data[16:], uint32(blockRows))
	le.PutUint32(s.data[20:], uint32(blockCols))
	if err = s.Flush(); err != nil {
		s.Close()

		return nil, err
	}

	return s, nil
}

// Open maps an existing file store, validating the header against the
// actual file size.
func Open(path string) (*FileStore, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() < headerSize {
		return nil, ErrBadHeader
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()

		return nil, err
	}

	le := binary.LittleEndian
	s := &FileStore{
		file:      f,
		data:      data,
		gridRows:  int(le.Uint32(data[8:])),
		gridCols:  int(le.Uint32(data[12:])),
		blockRows: int(le.Uint32(data[16:])),
		blockCols: int(le.Uint32(data[20:])),
	}
	if le.Uint32(data[0:]) != fileMagic || le.Uint32(data[4:]) != fileVersion {
		s.Close()

		return nil, ErrBadHeader
	}
	if s.gridRows <= 0 || s.gridCols <= 0 || s.blockRows <= 0 || s.blockCols <= 0 ||
		info.Size() != s.fileSize() {
		s.Close()

		return nil, ErrBadHeader
	}

	return s, nil
}

// Grid returns the store's grid dimensions.
func (s *FileStore) Grid() (gridRows, gridCols int) { return s.gridRows, s.gridCols }

// BlockShape returns the maximum block dimensions per slot.
func (s *FileStore) BlockShape() (blockRows, blockCols int) { return s.blockRows, s.blockCols }

// slotOffset returns the byte offset of the slot at (bi, bj), or an error
// when the coordinate is outside the grid.
func (s *FileStore) slotOffset(bi, bj int) (int, error) {
	if bi < 0 || bi >= s.gridRows || bj < 0 || bj >= s.gridCols {
		return 0, ErrBlockBounds
	}

	return headerSize + (bi*s.gridCols+bj)*s.slotSize(), nil
}

// Read returns the block in slot (blockRow, blockCol); a zero rows field
// marks the slot absent.
func (s *FileStore) Read(ctx context.Context, blockRow, blockCol int) (*Block, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, false, ErrStoreClosed
	}

	off, err := s.slotOffset(blockRow, blockCol)
	if err != nil {
		return nil, false, err
	}

	le := binary.LittleEndian
	rows := int(le.Uint32(s.data[off:]))
	if rows == 0 {
		return nil, false, nil
	}
	cols := int(le.Uint32(s.data[off+4:]))
	if rows > s.blockRows || cols <= 0 || cols > s.blockCols {
		return nil, false, ErrBadHeader
	}

	payload := make([]float64, rows*cols)
	base := off + slotHead
	for i := range payload {
		payload[i] = math.Float64frombits(le.Uint64(s.data[base+i*8:]))
	}

	return &Block{BlockRow: blockRow, BlockCol: blockCol, Rows: rows, Cols: cols, Data: payload}, true, nil
}

// Write stores b in its slot. The block must fit the slot's maximum shape.
func (s *FileStore) Write(ctx context.Context, b *Block) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	if b == nil || b.Rows <= 0 || b.Cols <= 0 || len(b.Data) != b.Rows*b.Cols ||
		b.Rows > s.blockRows || b.Cols > s.blockCols {
		return ErrBlockData
	}

	off, err := s.slotOffset(b.BlockRow, b.BlockCol)
	if err != nil {
		return err
	}

	le := binary.LittleEndian
	base := off + slotHead
	for i, v := range b.Data {
		le.PutUint64(s.data[base+i*8:], math.Float64bits(v))
	}
	// Dimensions last: a concurrent reader either sees the old block or the
	// complete new one, never a torn size.
	le.PutUint32(s.data[off+4:], uint32(b.Cols))
	le.PutUint32(s.data[off:], uint32(b.Rows))

	return nil
}

// Flush synchronizes the mapping with the file on disk.
func (s *FileStore) Flush() error {
	return s.data.Flush()
}

// Close flushes, unmaps and closes the file. Further operations return
// ErrStoreClosed. Close is idempotent.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	flushErr := s.data.Flush()
	unmapErr := s.data.Unmap()
	closeErr := s.file.Close()
	if flushErr != nil {
		return flushErr
	}
	if unmapErr != nil {
		return unmapErr
	}

	return closeErr
}
