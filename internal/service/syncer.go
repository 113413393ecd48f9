// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/adapter"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/config"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/logger"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/store"
	"github.com/ABNAPP/STOCK-SCORE-sub000/models"
)

// Poll interval bounds. Configured values outside the bounds fall back to the
// default instead of failing.
const (
	defaultPollInterval = 5 * time.Minute
	minPollInterval     = 5 * time.Second
	maxPollInterval     = time.Hour
)

const (
	pollMaxAttempts         = 4
	pollInitialRetryBackoff = 250 * time.Millisecond
)

// Transformer converts raw sheet rows into the consumer's domain records. It
// is applied uniformly to snapshot rows and merged-change rows.
type Transformer[T any] func(rows []models.SheetRow) ([]T, error)

// SyncResult is what a successful sync hands back to the consumer.
type SyncResult[T any] struct {
	Data    []T
	Version int64
}

// Syncer keeps the local mirror of one sheet consistent with the remote
// source using versioned incremental updates, falling back to full snapshot
// loads when there is no usable local version context.
//
// One Syncer owns one sheet key. Its mutex serialises the read-version →
// fetch → store window, so two overlapping syncs of the same sheet cannot
// interleave their reads and writes; syncers for distinct sheets are fully
// independent.
type Syncer[T any] struct {
	sheet     string
	appCfg    config.App
	store     store.CacheStore
	adapter   adapter.SourceAdapter
	transform Transformer[T]
	logger    *logger.Logger

	mu          sync.Mutex
	needsResync bool
}

// NewSyncer constructs a Syncer for one sheet. transform must be non-nil.
func NewSyncer[T any](appCfg config.App, sheet string, cacheStore store.CacheStore, sourceAdapter adapter.SourceAdapter, transform Transformer[T], log *logger.Logger) *Syncer[T] {
	return &Syncer[T]{
		sheet:     sheet,
		appCfg:    appCfg,
		store:     cacheStore,
		adapter:   sourceAdapter,
		transform: transform,
		logger:    log,
	}
}

// Enabled reports whether the incremental changes protocol is enabled. An
// unconfigured flag counts as enabled.
func (s *Syncer[T]) Enabled() bool {
	if s.appCfg.DeltaSyncEnabled == nil {
		return true
	}
	return *s.appCfg.DeltaSyncEnabled
}

// PollInterval returns the configured changes poll interval. Values outside
// [5s, 1h] fall back to the 5 minute default.
func (s *Syncer[T]) PollInterval() time.Duration {
	iv := s.appCfg.PollInterval
	if iv < minPollInterval || iv > maxPollInterval {
		return defaultPollInterval
	}
	return iv
}

// Sheet returns the sheet key this syncer owns.
func (s *Syncer[T]) Sheet() string { return s.sheet }

// InitSync brings the local mirror up to date and returns the transformed
// records at the resulting version. With no prior state, a TTL-stale entry,
// a pending resync signal, or delta sync disabled it performs a full snapshot
// load; otherwise it polls for changes from the current version. A poll that
// comes back flagged needsFullResync falls through to a snapshot load within
// the same call.
func (s *Syncer[T]) InitSync(ctx context.Context) (SyncResult[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok, err := s.store.Get(ctx, s.sheet)
	if err != nil {
		return SyncResult[T]{}, fmt.Errorf("read cache entry %q: %w", s.sheet, err)
	}

	if s.needsResync || !s.Enabled() || !ok || entry.Version == 0 || entry.Stale(time.Now()) {
		return s.loadSnapshotLocked(ctx)
	}

	result, resync, err := s.pollChangesLocked(ctx, entry.Version)
	if err != nil {
		return SyncResult[T]{}, err
	}
	if resync {
		return s.loadSnapshotLocked(ctx)
	}

	return result, nil
}

// LoadSnapshot fetches the full authoritative dump, stores it atomically, and
// returns the transformed records. Applying the same snapshot twice is
// idempotent: the entry stays at the snapshot's version with the same rows.
func (s *Syncer[T]) LoadSnapshot(ctx context.Context) (SyncResult[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadSnapshotLocked(ctx)
}

func (s *Syncer[T]) loadSnapshotLocked(ctx context.Context) (SyncResult[T], error) {
	snap, err := s.adapter.FetchSnapshot(ctx, s.sheet)
	if err != nil {
		return SyncResult[T]{}, fmt.Errorf("load snapshot %q: %w", s.sheet, err)
	}

	entry := models.CacheEntry{
		Headers: snap.Headers,
		Rows:    snap.Rows,
		Version: *snap.Version,
		TTL:     s.appCfg.CacheTTL,
	}
	if err = s.store.Set(ctx, s.sheet, entry, true); err != nil {
		return SyncResult[T]{}, fmt.Errorf("store snapshot %q: %w", s.sheet, err)
	}
	s.needsResync = false

	data, err := s.transform(snap.Rows)
	if err != nil {
		return SyncResult[T]{}, fmt.Errorf("transform snapshot rows %q: %w", s.sheet, err)
	}

	s.logger.Debug().
		Str("sheet", s.sheet).
		Int64("version", *snap.Version).
		Int("rows", len(snap.Rows)).
		Msg("snapshot loaded")

	return SyncResult[T]{Data: data, Version: *snap.Version}, nil
}

// PollChanges fetches the mutations recorded since fromVersion, merges them
// into the cached rows, and returns the transformed result. The second return
// value reports the server's needsFullResync signal: when true the local
// version context is invalid and the caller must load a snapshot; no merge is
// performed and no error is raised.
//
// Transient server failures (HTTP 5xx) are retried with bounded exponential
// backoff; timeouts, protocol violations, and body-level rejections are
// returned immediately.
func (s *Syncer[T]) PollChanges(ctx context.Context, fromVersion int64) (SyncResult[T], bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pollChangesLocked(ctx, fromVersion)
}

func (s *Syncer[T]) pollChangesLocked(ctx context.Context, fromVersion int64) (SyncResult[T], bool, error) {
	resp, err := s.fetchChangesWithRetry(ctx, fromVersion)
	if err != nil {
		return SyncResult[T]{}, false, fmt.Errorf("poll changes %q from %d: %w", s.sheet, fromVersion, err)
	}

	if resp.NeedsFullResync {
		s.needsResync = true
		s.logger.Info().Str("sheet", s.sheet).Int64("from", fromVersion).Msg("server requested full resync")
		return SyncResult[T]{}, true, nil
	}

	report, rows, err := s.applyChangesLocked(ctx, resp)
	if err != nil {
		return SyncResult[T]{}, false, err
	}

	data, err := s.transform(rows)
	if err != nil {
		return SyncResult[T]{}, false, fmt.Errorf("transform merged rows %q: %w", s.sheet, err)
	}

	s.logger.Debug().
		Str("sheet", s.sheet).
		Int64("from", resp.FromVersion).
		Int64("to", resp.ToVersion).
		Int("applied", report.Applied).
		Int("skipped", report.Skipped).
		Msg("changes applied")

	return SyncResult[T]{Data: data, Version: report.Version}, false, nil
}

func (s *Syncer[T]) fetchChangesWithRetry(ctx context.Context, fromVersion int64) (models.ChangesResponse, error) {
	operation := func() (models.ChangesResponse, error) {
		resp, err := s.adapter.FetchChanges(ctx, s.sheet, fromVersion)
		if err != nil {
			if adapter.IsRetryable(err) {
				s.logger.Warn().Err(err).Str("sheet", s.sheet).Msg("retryable server error during changes poll")
				return resp, err
			}
			return resp, backoff.Permanent(err)
		}
		return resp, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = pollInitialRetryBackoff

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(pollMaxAttempts))
}

// ApplyChanges merges a changes response into the cached rows for this sheet
// and stores the result at the response's toVersion. Malformed change records
// (nil values, unknown columns, unmatchable rows) are skipped one by one and
// counted in the report; they never abort the merge. The only error condition
// is a storage failure.
func (s *Syncer[T]) ApplyChanges(ctx context.Context, resp models.ChangesResponse) (models.ApplyReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, _, err := s.applyChangesLocked(ctx, resp)
	return report, err
}

func (s *Syncer[T]) applyChangesLocked(ctx context.Context, resp models.ChangesResponse) (models.ApplyReport, []models.SheetRow, error) {
	entry, _, err := s.store.Get(ctx, s.sheet)
	if err != nil {
		return models.ApplyReport{}, nil, fmt.Errorf("read cache entry %q: %w", s.sheet, err)
	}

	rows, applied, skipped := mergeChanges(entry.Headers, entry.Rows, resp.Changes)

	entry.Rows = rows
	entry.Version = resp.ToVersion
	if err = s.store.Set(ctx, s.sheet, entry, false); err != nil {
		return models.ApplyReport{}, nil, fmt.Errorf("store merged rows %q: %w", s.sheet, err)
	}

	return models.ApplyReport{Applied: applied, Skipped: skipped, Version: resp.ToVersion}, rows, nil
}

// mergeChanges applies change records to a copy of rows. A record addresses
// its row by RowIndex when the index is in range and the key matches (or the
// record carries no key); otherwise by Key, appending a new row for keys not
// yet present. Values are written per changed column; a record with no
// ChangedColumns replaces the whole value slice.
func mergeChanges(headers []string, rows []models.SheetRow, changes []models.ChangeRecord) ([]models.SheetRow, int, int) {
	merged := make([]models.SheetRow, len(rows))
	copy(merged, rows)

	columnIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		columnIndex[h] = i
	}

	var applied, skipped int
	for _, rec := range changes {
		if rec.Values == nil {
			skipped++
			continue
		}

		idx := findRow(merged, rec)
		if idx < 0 {
			if rec.Key == "" {
				skipped++
				continue
			}
			merged = append(merged, models.SheetRow{Key: rec.Key, Values: make([]any, len(headers))})
			idx = len(merged) - 1
		}

		if !applyRecord(&merged[idx], columnIndex, rec) {
			skipped++
			continue
		}
		applied++
	}

	return merged, applied, skipped
}

func findRow(rows []models.SheetRow, rec models.ChangeRecord) int {
	if rec.RowIndex >= 0 && rec.RowIndex < len(rows) {
		if rec.Key == "" || rows[rec.RowIndex].Key == rec.Key {
			return rec.RowIndex
		}
	}

	if rec.Key != "" {
		for i := range rows {
			if rows[i].Key == rec.Key {
				return i
			}
		}
	}

	return -1
}

// applyRecord writes the record's values into row. Returns false when the
// record is malformed: value count diverging from changed columns, or a
// column the sheet's headers do not contain.
func applyRecord(row *models.SheetRow, columnIndex map[string]int, rec models.ChangeRecord) bool {
	if len(rec.ChangedColumns) == 0 {
		values := make([]any, len(rec.Values))
		copy(values, rec.Values)
		row.Values = values
		return true
	}

	if len(rec.Values) != len(rec.ChangedColumns) {
		return false
	}
	for _, col := range rec.ChangedColumns {
		if _, ok := columnIndex[col]; !ok {
			return false
		}
	}

	values := make([]any, len(columnIndex))
	copy(values, row.Values)
	for i, col := range rec.ChangedColumns {
		values[columnIndex[col]] = rec.Values[i]
	}
	row.Values = values

	return true
}
