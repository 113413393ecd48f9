// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/adapter"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/config"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/logger"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/mock"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/service"
	"github.com/ABNAPP/STOCK-SCORE-sub000/models"
)

const testSheet = "scores"

var testHeaders = []string{"ticker", "score"}

// identity отдаёт строки как есть: тестам важен сам протокол, не доменное
// преобразование.
func identity(rows []models.SheetRow) ([]models.SheetRow, error) {
	return rows, nil
}

func newTestSyncer(
	t *testing.T,
	ctrl *gomock.Controller,
	appCfg config.App,
) (
	*service.Syncer[models.SheetRow],
	*mock.MockCacheStore,
	*mock.MockSourceAdapter,
) {
	t.Helper()
	mockStore := mock.NewMockCacheStore(ctrl)
	mockAdapter := mock.NewMockSourceAdapter(ctrl)

	s := service.NewSyncer(appCfg, testSheet, mockStore, mockAdapter, identity, logger.Nop())
	return s, mockStore, mockAdapter
}

func int64p(v int64) *int64 { return &v }

func tenRows() []models.SheetRow {
	rows := make([]models.SheetRow, 10)
	for i := range rows {
		key := fmt.Sprintf("T%02d", i)
		rows[i] = models.SheetRow{Key: key, Values: []any{key, float64(i) / 10}}
	}
	return rows
}

// ── InitSync: snapshot paths ─────────────────────────────────────────────────

func TestSyncer_InitSync_EmptyCacheLoadsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStore, mockAdapter := newTestSyncer(t, ctrl, config.App{})
	ctx := context.Background()

	rows := tenRows()
	snap := models.SnapshotResponse{
		OK: true, Version: int64p(5), Headers: testHeaders, Rows: rows,
		GeneratedAt: "2026-08-29T10:00:00Z",
	}

	mockStore.EXPECT().Get(ctx, testSheet).Return(models.CacheEntry{}, false, nil)
	mockAdapter.EXPECT().FetchSnapshot(ctx, testSheet).Return(snap, nil)
	mockStore.EXPECT().Set(ctx, testSheet, gomock.Any(), true).
		DoAndReturn(func(_ context.Context, _ string, entry models.CacheEntry, _ bool) error {
			assert.Equal(t, int64(5), entry.Version)
			assert.Len(t, entry.Rows, 10)
			return nil
		})

	got, err := s.InitSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Version)
	assert.Len(t, got.Data, 10)
}

func TestSyncer_InitSync_ZeroVersionLoadsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStore, mockAdapter := newTestSyncer(t, ctrl, config.App{})
	ctx := context.Background()

	snap := models.SnapshotResponse{
		OK: true, Version: int64p(1), Headers: testHeaders, Rows: []models.SheetRow{},
		GeneratedAt: "2026-08-29T10:00:00Z",
	}

	// запись есть, но версия 0 — контекста для дельты нет
	mockStore.EXPECT().Get(ctx, testSheet).Return(models.CacheEntry{Version: 0}, true, nil)
	mockAdapter.EXPECT().FetchSnapshot(ctx, testSheet).Return(snap, nil)
	mockStore.EXPECT().Set(ctx, testSheet, gomock.Any(), true).Return(nil)

	got, err := s.InitSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Version)
}

func TestSyncer_InitSync_DeltaDisabledLoadsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	disabled := false
	s, mockStore, mockAdapter := newTestSyncer(t, ctrl, config.App{DeltaSyncEnabled: &disabled})
	ctx := context.Background()

	snap := models.SnapshotResponse{
		OK: true, Version: int64p(6), Headers: testHeaders, Rows: []models.SheetRow{},
		GeneratedAt: "2026-08-29T10:00:00Z",
	}

	mockStore.EXPECT().Get(ctx, testSheet).Return(models.CacheEntry{Version: 5}, true, nil)
	mockAdapter.EXPECT().FetchSnapshot(ctx, testSheet).Return(snap, nil)
	mockStore.EXPECT().Set(ctx, testSheet, gomock.Any(), true).Return(nil)

	got, err := s.InitSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.Version)
}

func TestSyncer_InitSync_StaleEntryLoadsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStore, mockAdapter := newTestSyncer(t, ctrl, config.App{})
	ctx := context.Background()

	// TTL 1ns при нулевом LastUpdated — запись заведомо протухла
	stale := models.CacheEntry{Version: 5, TTL: 1}

	snap := models.SnapshotResponse{
		OK: true, Version: int64p(8), Headers: testHeaders, Rows: []models.SheetRow{},
		GeneratedAt: "2026-08-29T10:00:00Z",
	}

	mockStore.EXPECT().Get(ctx, testSheet).Return(stale, true, nil)
	mockAdapter.EXPECT().FetchSnapshot(ctx, testSheet).Return(snap, nil)
	mockStore.EXPECT().Set(ctx, testSheet, gomock.Any(), true).Return(nil)

	got, err := s.InitSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.Version)
}

func TestSyncer_InitSync_SnapshotFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStore, mockAdapter := newTestSyncer(t, ctrl, config.App{})
	ctx := context.Background()

	mockStore.EXPECT().Get(ctx, testSheet).Return(models.CacheEntry{}, false, nil)
	mockAdapter.EXPECT().FetchSnapshot(ctx, testSheet).
		Return(models.SnapshotResponse{}, fmt.Errorf("%w: boom", adapter.ErrNetwork))

	_, err := s.InitSync(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNetwork)
}

// ── InitSync: delta path ─────────────────────────────────────────────────────

func TestSyncer_InitSync_PollsChangesFromCachedVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStore, mockAdapter := newTestSyncer(t, ctrl, config.App{})
	ctx := context.Background()

	cached := models.CacheEntry{
		Headers: testHeaders,
		Rows: []models.SheetRow{
			{Key: "AAPL", Values: []any{"AAPL", 0.5}},
			{Key: "MSFT", Values: []any{"MSFT", 0.6}},
			{Key: "NVDA", Values: []any{"NVDA", 0.4}},
		},
		Version: 5,
	}

	changes := models.ChangesResponse{
		OK: true, FromVersion: 5, ToVersion: 7,
		Changes: []models.ChangeRecord{
			{ID: "c1", Key: "AAPL", RowIndex: 0, ChangedColumns: []string{"score"}, Values: []any{0.9}},
			{ID: "c2", Key: "NVDA", RowIndex: 2, ChangedColumns: []string{"score"}, Values: []any{0.7}},
		},
	}

	// Get вызывается дважды: решение о пути синка и чтение перед merge
	mockStore.EXPECT().Get(ctx, testSheet).Return(cached, true, nil).Times(2)
	mockAdapter.EXPECT().FetchChanges(ctx, testSheet, int64(5)).Return(changes, nil)
	mockStore.EXPECT().Set(ctx, testSheet, gomock.Any(), false).
		DoAndReturn(func(_ context.Context, _ string, entry models.CacheEntry, _ bool) error {
			assert.Equal(t, int64(7), entry.Version)
			return nil
		})

	got, err := s.InitSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Version)
	require.Len(t, got.Data, 3)
	assert.Equal(t, 0.9, got.Data[0].Values[1])
	assert.Equal(t, 0.6, got.Data[1].Values[1])
	assert.Equal(t, 0.7, got.Data[2].Values[1])
}

func TestSyncer_InitSync_ResyncSignalFallsThroughToSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStore, mockAdapter := newTestSyncer(t, ctrl, config.App{})
	ctx := context.Background()

	cached := models.CacheEntry{Headers: testHeaders, Version: 5}
	resync := models.ChangesResponse{OK: true, FromVersion: 5, ToVersion: 5, NeedsFullResync: true}
	snap := models.SnapshotResponse{
		OK: true, Version: int64p(12), Headers: testHeaders, Rows: tenRows(),
		GeneratedAt: "2026-08-29T10:00:00Z",
	}

	mockStore.EXPECT().Get(ctx, testSheet).Return(cached, true, nil)
	mockAdapter.EXPECT().FetchChanges(ctx, testSheet, int64(5)).Return(resync, nil)
	// сигнал resync внутри того же вызова приводит к полному снапшоту
	mockAdapter.EXPECT().FetchSnapshot(ctx, testSheet).Return(snap, nil)
	mockStore.EXPECT().Set(ctx, testSheet, gomock.Any(), true).Return(nil)

	got, err := s.InitSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.Version)
	assert.Len(t, got.Data, 10)
}

// ── PollChanges: retry behaviour ─────────────────────────────────────────────

func TestSyncer_PollChanges_RetriesTransientServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStore, mockAdapter := newTestSyncer(t, ctrl, config.App{})
	ctx := context.Background()

	cached := models.CacheEntry{Headers: testHeaders, Version: 5}
	ok := models.ChangesResponse{OK: true, FromVersion: 5, ToVersion: 6}

	gomock.InOrder(
		mockAdapter.EXPECT().FetchChanges(ctx, testSheet, int64(5)).
			Return(models.ChangesResponse{}, &adapter.StatusError{Status: 503, Body: "unavailable"}),
		mockAdapter.EXPECT().FetchChanges(ctx, testSheet, int64(5)).Return(ok, nil),
	)
	mockStore.EXPECT().Get(ctx, testSheet).Return(cached, true, nil)
	mockStore.EXPECT().Set(ctx, testSheet, gomock.Any(), false).Return(nil)

	got, resyncNeeded, err := s.PollChanges(ctx, 5)
	require.NoError(t, err)
	assert.False(t, resyncNeeded)
	assert.Equal(t, int64(6), got.Version)
}

func TestSyncer_PollChanges_TimeoutIsNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, mockAdapter := newTestSyncer(t, ctrl, config.App{})
	ctx := context.Background()

	// ровно один вызов: таймаут не ретраится
	mockAdapter.EXPECT().FetchChanges(ctx, testSheet, int64(5)).
		Return(models.ChangesResponse{}, fmt.Errorf("%w: deadline", adapter.ErrTimeout)).
		Times(1)

	_, _, err := s.PollChanges(ctx, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrTimeout)
}

func TestSyncer_PollChanges_GivesUpAfterMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, mockAdapter := newTestSyncer(t, ctrl, config.App{})
	ctx := context.Background()

	mockAdapter.EXPECT().FetchChanges(ctx, testSheet, int64(5)).
		Return(models.ChangesResponse{}, &adapter.StatusError{Status: 500, Body: "boom"}).
		Times(4)

	_, _, err := s.PollChanges(ctx, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrServer)
}

// ── ApplyChanges ─────────────────────────────────────────────────────────────

func TestSyncer_ApplyChanges_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStore, _ := newTestSyncer(t, ctrl, config.App{})
	ctx := context.Background()

	stored := models.CacheEntry{
		Headers: testHeaders,
		Rows:    []models.SheetRow{{Key: "AAPL", Values: []any{"AAPL", 0.5}}},
		Version: 5,
	}

	mockStore.EXPECT().Get(ctx, testSheet).
		DoAndReturn(func(context.Context, string) (models.CacheEntry, bool, error) {
			return stored, true, nil
		}).Times(2)
	mockStore.EXPECT().Set(ctx, testSheet, gomock.Any(), false).
		DoAndReturn(func(_ context.Context, _ string, entry models.CacheEntry, _ bool) error {
			stored = entry
			return nil
		}).Times(2)

	resp := models.ChangesResponse{
		OK: true, FromVersion: 5, ToVersion: 7,
		Changes: []models.ChangeRecord{
			{Key: "AAPL", RowIndex: 0, ChangedColumns: []string{"score"}, Values: []any{0.9}},
		},
	}

	first, err := s.ApplyChanges(ctx, resp)
	require.NoError(t, err)
	afterFirst := stored

	second, err := s.ApplyChanges(ctx, resp)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, afterFirst.Version, stored.Version)
	assert.Equal(t, afterFirst.Rows, stored.Rows)
}

func TestSyncer_ApplyChanges_ReportsSkippedRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStore, _ := newTestSyncer(t, ctrl, config.App{})
	ctx := context.Background()

	cached := models.CacheEntry{
		Headers: testHeaders,
		Rows:    []models.SheetRow{{Key: "AAPL", Values: []any{"AAPL", 0.5}}},
		Version: 5,
	}

	mockStore.EXPECT().Get(ctx, testSheet).Return(cached, true, nil)
	mockStore.EXPECT().Set(ctx, testSheet, gomock.Any(), false).Return(nil)

	resp := models.ChangesResponse{
		OK: true, FromVersion: 5, ToVersion: 6,
		Changes: []models.ChangeRecord{
			{Key: "AAPL", RowIndex: 0, ChangedColumns: []string{"score"}, Values: []any{0.9}},
			{Key: "AAPL", RowIndex: 0, ChangedColumns: []string{"volume"}, Values: []any{100}},
		},
	}

	report, err := s.ApplyChanges(ctx, resp)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Applied)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, int64(6), report.Version)
}

func TestSyncer_ApplyChanges_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStore, _ := newTestSyncer(t, ctrl, config.App{})
	ctx := context.Background()

	mockStore.EXPECT().Get(ctx, testSheet).Return(models.CacheEntry{Headers: testHeaders, Version: 5}, true, nil)
	mockStore.EXPECT().Set(ctx, testSheet, gomock.Any(), false).Return(assert.AnError)

	_, err := s.ApplyChanges(ctx, models.ChangesResponse{OK: true, FromVersion: 5, ToVersion: 6})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
