// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/ABNAPP/STOCK-SCORE-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(version int64, rows ...models.SheetRow) models.CacheEntry {
	return models.CacheEntry{
		Headers: []string{"ticker", "score"},
		Rows:    rows,
		Version: version,
	}
}

// ── Get / Set ────────────────────────────────────────────────────────────────

func TestMemoryCacheStore_Get_MissingKey(t *testing.T) {
	s := NewMemoryCacheStore()

	_, ok, err := s.Get(context.Background(), "scores")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheStore_SetGet_RoundTrip(t *testing.T) {
	s := NewMemoryCacheStore()
	ctx := context.Background()

	in := entryAt(5, models.SheetRow{Key: "AAPL", Values: []any{"AAPL", 0.7}})
	require.NoError(t, s.Set(ctx, "scores", in, true))

	got, ok, err := s.Get(ctx, "scores")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(5), got.Version)
	assert.Equal(t, in.Headers, got.Headers)
	assert.Equal(t, in.Rows, got.Rows)
	assert.False(t, got.LastUpdated.IsZero())
	assert.False(t, got.LastSnapshotAt.IsZero())
}

func TestMemoryCacheStore_Set_ZeroAndNegativeVersionsRoundTrip(t *testing.T) {
	s := NewMemoryCacheStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "zero", entryAt(0), true))
	got, ok, err := s.Get(ctx, "zero")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(0), got.Version)

	require.NoError(t, s.Set(ctx, "neg", entryAt(-3), true))
	got, ok, err = s.Get(ctx, "neg")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(-3), got.Version)
}

func TestMemoryCacheStore_Set_RejectsVersionRegression(t *testing.T) {
	s := NewMemoryCacheStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "scores", entryAt(7), true))

	err := s.Set(ctx, "scores", entryAt(5), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVersionRegression)

	// запись не должна была измениться
	got, ok, getErr := s.Get(ctx, "scores")
	require.NoError(t, getErr)
	require.True(t, ok)
	assert.Equal(t, int64(7), got.Version)
}

func TestMemoryCacheStore_Set_SameVersionAllowed(t *testing.T) {
	s := NewMemoryCacheStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "scores", entryAt(5), true))
	assert.NoError(t, s.Set(ctx, "scores", entryAt(5), true))
}

func TestMemoryCacheStore_Set_IncrementalPreservesSnapshotTime(t *testing.T) {
	s := NewMemoryCacheStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "scores", entryAt(5), true))
	first, _, err := s.Get(ctx, "scores")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, s.Set(ctx, "scores", entryAt(6), false))

	second, _, err := s.Get(ctx, "scores")
	require.NoError(t, err)
	assert.Equal(t, first.LastSnapshotAt, second.LastSnapshotAt)
	assert.True(t, second.LastUpdated.After(first.LastUpdated))
}

func TestMemoryCacheStore_Set_SnapshotAdvancesSnapshotTime(t *testing.T) {
	s := NewMemoryCacheStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "scores", entryAt(5), true))
	first, _, err := s.Get(ctx, "scores")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, s.Set(ctx, "scores", entryAt(6), true))

	second, _, err := s.Get(ctx, "scores")
	require.NoError(t, err)
	assert.True(t, second.LastSnapshotAt.After(first.LastSnapshotAt))
}

// ── LastVersion ──────────────────────────────────────────────────────────────

func TestMemoryCacheStore_LastVersion_MissingKeyIsZero(t *testing.T) {
	s := NewMemoryCacheStore()

	v, err := s.LastVersion(context.Background(), "scores")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestMemoryCacheStore_LastVersion_ReturnsStoredVerbatim(t *testing.T) {
	s := NewMemoryCacheStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "scores", entryAt(-1), true))

	v, err := s.LastVersion(ctx, "scores")
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v)
}

// ── Invalidate ───────────────────────────────────────────────────────────────

func TestMemoryCacheStore_Invalidate_SingleKey(t *testing.T) {
	s := NewMemoryCacheStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "scores", entryAt(1), true))
	require.NoError(t, s.Set(ctx, "signals", entryAt(2), true))

	require.NoError(t, s.Invalidate(ctx, "scores"))

	_, ok, err := s.Get(ctx, "scores")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Get(ctx, "signals")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryCacheStore_Invalidate_NoKeysClearsAll(t *testing.T) {
	s := NewMemoryCacheStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "scores", entryAt(1), true))
	require.NoError(t, s.Set(ctx, "signals", entryAt(2), true))

	require.NoError(t, s.Invalidate(ctx))

	_, ok, err := s.Get(ctx, "scores")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Get(ctx, "signals")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheStore_Invalidate_UnknownKeyIsNoop(t *testing.T) {
	s := NewMemoryCacheStore()
	assert.NoError(t, s.Invalidate(context.Background(), "ghost"))
}

func TestMemoryCacheStore_Close_Noop(t *testing.T) {
	s := NewMemoryCacheStore()
	assert.NoError(t, s.Close())
}
