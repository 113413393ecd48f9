// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const sheetCacheTable = "sheet_cache"

func buildSelectEntryQuery(key string) (string, []any, error) {
	return sq.Select("headers", "rows", "version", "last_snapshot_at", "last_updated", "ttl_ns").
		From(sheetCacheTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSelectVersionQuery(key string) (string, []any, error) {
	return sq.Select("version").
		From(sheetCacheTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertEntryQuery(key string, headers, rows string, version int64, lastSnapshotAt, lastUpdated any, ttlNs int64) (string, []any, error) {
	return sq.Insert(sheetCacheTable).
		Columns("key", "headers", "rows", "version", "last_snapshot_at", "last_updated", "ttl_ns").
		Values(key, headers, rows, version, lastSnapshotAt, lastUpdated, ttlNs).
		Suffix(`ON CONFLICT(key) DO UPDATE SET
			headers = excluded.headers,
			rows = excluded.rows,
			version = excluded.version,
			last_snapshot_at = excluded.last_snapshot_at,
			last_updated = excluded.last_updated,
			ttl_ns = excluded.ttl_ns`).
		ToSql()
}

func buildDeleteEntriesQuery(keys []string) (string, []any, error) {
	builder := sq.Delete(sheetCacheTable)
	if len(keys) > 0 {
		builder = builder.Where(sq.Eq{"key": keys})
	}
	return builder.ToSql()
}
