// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/logger"
	"github.com/ABNAPP/STOCK-SCORE-sub000/models"
)

type sqliteCacheStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteCacheStore returns a [CacheStore] persisted in the local sqlite
// database. Headers and rows are stored as JSON columns so entries round-trip
// exactly, including zero and negative versions.
func NewSQLiteCacheStore(db *DB, log *logger.Logger) CacheStore {
	return &sqliteCacheStore{db: db, logger: log}
}

func (s *sqliteCacheStore) Get(ctx context.Context, key string) (models.CacheEntry, bool, error) {
	var entry models.CacheEntry

	query, args, err := buildSelectEntryQuery(key)
	if err != nil {
		return entry, false, fmt.Errorf("build select entry query: %w", err)
	}

	var headersJSON, rowsJSON string
	var ttlNs int64
	var lastSnapshotAt, lastUpdated sql.NullTime

	row := s.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&headersJSON, &rowsJSON, &entry.Version, &lastSnapshotAt, &lastUpdated, &ttlNs)
	if errors.Is(err, sql.ErrNoRows) {
		return entry, false, nil
	}
	if err != nil {
		return entry, false, fmt.Errorf("select cache entry %q: %w", key, err)
	}

	if err = json.Unmarshal([]byte(headersJSON), &entry.Headers); err != nil {
		return entry, false, fmt.Errorf("decode cached headers for %q: %w", key, err)
	}
	if err = json.Unmarshal([]byte(rowsJSON), &entry.Rows); err != nil {
		return entry, false, fmt.Errorf("decode cached rows for %q: %w", key, err)
	}

	entry.TTL = time.Duration(ttlNs)
	if lastSnapshotAt.Valid {
		entry.LastSnapshotAt = lastSnapshotAt.Time
	}
	if lastUpdated.Valid {
		entry.LastUpdated = lastUpdated.Time
	}

	return entry, true, nil
}

func (s *sqliteCacheStore) Set(ctx context.Context, key string, entry models.CacheEntry, isSnapshot bool) error {
	now := time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache set tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := buildSelectEntryQuery(key)
	if err != nil {
		return fmt.Errorf("build select entry query: %w", err)
	}

	var prevVersion int64
	var prevSnapshotAt sql.NullTime
	exists := true
	{
		var headersJSON, rowsJSON string
		var ttlNs int64
		var lastUpdated sql.NullTime
		err = tx.QueryRowContext(ctx, query, args...).
			Scan(&headersJSON, &rowsJSON, &prevVersion, &prevSnapshotAt, &lastUpdated, &ttlNs)
		if errors.Is(err, sql.ErrNoRows) {
			exists = false
		} else if err != nil {
			return fmt.Errorf("select previous cache entry %q: %w", key, err)
		}
	}

	if exists && entry.Version < prevVersion {
		return fmt.Errorf("%w: key %q: stored %d, incoming %d", ErrVersionRegression, key, prevVersion, entry.Version)
	}

	snapshotAt := any(now)
	if !isSnapshot {
		if exists && prevSnapshotAt.Valid {
			snapshotAt = prevSnapshotAt.Time
		} else {
			snapshotAt = nil
		}
	}

	headersJSON, err := json.Marshal(entry.Headers)
	if err != nil {
		return fmt.Errorf("encode headers for %q: %w", key, err)
	}
	rowsJSON, err := json.Marshal(entry.Rows)
	if err != nil {
		return fmt.Errorf("encode rows for %q: %w", key, err)
	}

	query, args, err = buildUpsertEntryQuery(key, string(headersJSON), string(rowsJSON), entry.Version, snapshotAt, now, int64(entry.TTL))
	if err != nil {
		return fmt.Errorf("build upsert entry query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert cache entry %q: %w", key, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit cache set tx: %w", err)
	}

	return nil
}

func (s *sqliteCacheStore) LastVersion(ctx context.Context, key string) (int64, error) {
	query, args, err := buildSelectVersionQuery(key)
	if err != nil {
		return 0, fmt.Errorf("build select version query: %w", err)
	}

	var version int64
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("select cache version %q: %w", key, err)
	}

	return version, nil
}

func (s *sqliteCacheStore) Invalidate(ctx context.Context, keys ...string) error {
	query, args, err := buildDeleteEntriesQuery(keys)
	if err != nil {
		return fmt.Errorf("build delete entries query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("invalidate cache entries: %w", err)
	}

	return nil
}

func (s *sqliteCacheStore) Close() error {
	return s.db.Close()
}
