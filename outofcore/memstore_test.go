package outofcore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helmgren/tessel/outofcore"
)

func TestMemStore_AbsentReadsAsMissing(t *testing.T) {
	s := outofcore.NewMemStore()

	b, ok, err := s.Read(context.Background(), 0, 0)
	require.NoError(t, err, "absence is not an error")
	require.False(t, ok)
	require.Nil(t, b)
}

func TestMemStore_WriteReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := outofcore.NewMemStore()

	blk, err := outofcore.NewBlock(1, 2, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, blk))

	got, ok, err := s.Read(ctx, 1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, blk.Rows, got.Rows)
	require.Equal(t, blk.Cols, got.Cols)
	require.Equal(t, blk.Data, got.Data)
}

func TestMemStore_OverwriteWins(t *testing.T) {
	ctx := context.Background()
	s := outofcore.NewMemStore()

	first, err := outofcore.NewBlock(0, 0, 1, 1, []float64{1})
	require.NoError(t, err)
	second, err := outofcore.NewBlock(0, 0, 1, 1, []float64{2})
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, first))
	require.NoError(t, s.Write(ctx, second))

	got, ok, err := s.Read(ctx, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []float64{2}, got.Data)
	require.Equal(t, 1, s.Len())
}

// TestMemStore_DefensiveCopies: neither writes nor reads share payloads
// with the caller.
func TestMemStore_DefensiveCopies(t *testing.T) {
	ctx := context.Background()
	s := outofcore.NewMemStore()

	blk, err := outofcore.NewBlock(0, 0, 1, 2, []float64{1, 2})
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, blk))
	blk.Data[0] = 99 // caller mutates after writing

	got, ok, err := s.Read(ctx, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []float64{1, 2}, got.Data)

	got.Data[1] = 77 // reader mutates its copy
	again, _, err := s.Read(ctx, 0, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, again.Data)
}

func TestMemStore_RejectsBadBlocks(t *testing.T) {
	ctx := context.Background()
	s := outofcore.NewMemStore()

	err := s.Write(ctx, &outofcore.Block{BlockRow: 0, BlockCol: 0, Rows: 2, Cols: 2, Data: []float64{1}})
	require.ErrorIs(t, err, outofcore.ErrBlockData)

	err = s.Write(ctx, &outofcore.Block{BlockRow: -1, BlockCol: 0, Rows: 1, Cols: 1, Data: []float64{1}})
	require.ErrorIs(t, err, outofcore.ErrBlockBounds)

	_, _, err = s.Read(ctx, -1, 0)
	require.ErrorIs(t, err, outofcore.ErrBlockBounds)
}

func TestNewBlock_Validation(t *testing.T) {
	_, err := outofcore.NewBlock(0, 0, 2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, outofcore.ErrBlockData)
	_, err = outofcore.NewBlock(-1, 0, 1, 1, []float64{1})
	require.ErrorIs(t, err, outofcore.ErrBlockBounds)

	// NewBlock copies its input.
	data := []float64{1}
	blk, err := outofcore.NewBlock(0, 0, 1, 1, data)
	require.NoError(t, err)
	data[0] = 9
	require.Equal(t, []float64{1}, blk.Data)
}
