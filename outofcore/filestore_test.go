package outofcore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helmgren/tessel/matmul"
	"github.com/helmgren/tessel/outofcore"
)

func newTestStore(t *testing.T, gridRows, gridCols, blockRows, blockCols int) (*outofcore.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.blocks")
	s, err := outofcore.Create(path, gridRows, gridCols, blockRows, blockCols)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s, path
}

func TestFileStore_CreateGeometry(t *testing.T) {
	s, _ := newTestStore(t, 3, 2, 4, 5)

	gr, gc := s.Grid()
	require.Equal(t, 3, gr)
	require.Equal(t, 2, gc)

	br, bc := s.BlockShape()
	require.Equal(t, 4, br)
	require.Equal(t, 5, bc)
}

func TestFileStore_AllSlotsStartAbsent(t *testing.T) {
	s, _ := newTestStore(t, 2, 2, 2, 2)
	ctx := context.Background()

	for bi := 0; bi < 2; bi++ {
		for bj := 0; bj < 2; bj++ {
			b, ok, err := s.Read(ctx, bi, bj)
			require.NoError(t, err)
			require.False(t, ok)
			require.Nil(t, b)
		}
	}
}

func TestFileStore_WriteReadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t, 2, 2, 2, 3)
	ctx := context.Background()

	blk, err := outofcore.NewBlock(1, 0, 2, 3, []float64{1.5, -2, 0, 3.25, 4, -5.5})
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, blk))

	got, ok, err := s.Read(ctx, 1, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, blk.Data, got.Data)

	// Smaller trailing blocks fit the same slot.
	small, err := outofcore.NewBlock(0, 1, 1, 2, []float64{7, 8})
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, small))

	got, ok, err = s.Read(ctx, 0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, got.Rows)
	require.Equal(t, 2, got.Cols)
	require.Equal(t, []float64{7, 8}, got.Data)
}

// TestFileStore_PersistsAcrossOpen: blocks written before Close are read
// back through a fresh mapping of the same file.
func TestFileStore_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.blocks")

	s, err := outofcore.Create(path, 2, 2, 2, 2)
	require.NoError(t, err)
	blk, err := outofcore.NewBlock(1, 1, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, blk))
	require.NoError(t, s.Close())

	reopened, err := outofcore.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := reopened.Read(ctx, 1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []float64{1, 2, 3, 4}, got.Data)

	// The untouched slot is still absent after reopening.
	_, ok, err = reopened.Read(ctx, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFileStore_OpenRejectsCorruptHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.blocks")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o644))

	_, err := outofcore.Open(path)
	require.ErrorIs(t, err, outofcore.ErrBadHeader)
}

func TestFileStore_OpenRejectsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.blocks")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	_, err := outofcore.Open(path)
	require.ErrorIs(t, err, outofcore.ErrBadHeader)
}

func TestFileStore_BoundsAndOversize(t *testing.T) {
	s, _ := newTestStore(t, 2, 2, 2, 2)
	ctx := context.Background()

	_, _, err := s.Read(ctx, 2, 0)
	require.ErrorIs(t, err, outofcore.ErrBlockBounds)

	big, err := outofcore.NewBlock(0, 0, 3, 3, make([]float64, 9))
	require.NoError(t, err)
	require.ErrorIs(t, s.Write(ctx, big), outofcore.ErrBlockData)
}

func TestFileStore_ClosedOperations(t *testing.T) {
	s, _ := newTestStore(t, 1, 1, 1, 1)
	ctx := context.Background()
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "close is idempotent")

	_, _, err := s.Read(ctx, 0, 0)
	require.ErrorIs(t, err, outofcore.ErrStoreClosed)

	blk, err := outofcore.NewBlock(0, 0, 1, 1, []float64{1})
	require.NoError(t, err)
	require.ErrorIs(t, s.Write(ctx, blk), outofcore.ErrStoreClosed)
}

// TestFileStore_BacksOutOfCoreMultiply runs the full multiply with a
// FileStore result sink and checks it against the dense reference.
func TestFileStore_BacksOutOfCoreMultiply(t *testing.T) {
	ctx := context.Background()
	a := randomMatrix(t, 6, 5, 21)
	b := randomMatrix(t, 5, 4, 22)

	oa, err := outofcore.FromDense(ctx, a, 2, 2, outofcore.NewMemStore())
	require.NoError(t, err)
	ob, err := outofcore.FromDense(ctx, b, 2, 2, outofcore.NewMemStore())
	require.NoError(t, err)

	result, _ := newTestStore(t, oa.GridRows(), ob.GridCols(), 2, 2)
	c, err := oa.Mul(ctx, ob, 3, result, nil)
	require.NoError(t, err)

	got, err := c.Materialize(ctx)
	require.NoError(t, err)

	want, err := matmul.Multiply(a, b, matmul.DefaultOptions())
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}

// TestFileStore_FromDenseRoundTrip stages through the file backend directly.
func TestFileStore_FromDenseRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := randomMatrix(t, 5, 3, 30)

	store, _ := newTestStore(t, 3, 2, 2, 2)
	om, err := outofcore.FromDense(ctx, m, 2, 2, store)
	require.NoError(t, err)

	back, err := om.Materialize(ctx)
	require.NoError(t, err)
	require.True(t, back.Equal(m))
}
