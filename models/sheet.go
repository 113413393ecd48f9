// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SheetRow is a single spreadsheet-shaped record: a stable row key plus the
// cell values in header order.
type SheetRow struct {
	Key    string `json:"key"`
	Values []any  `json:"values"`
}

// ChangeRecord describes one row mutation recorded by the source since a
// prior version. RowIndex refers to the row's position in the snapshot the
// change was computed against; Key is the stable row identifier and takes
// precedence when the index is out of range.
type ChangeRecord struct {
	ID             string   `json:"id"`
	Timestamp      string   `json:"tsISO"`
	Key            string   `json:"key"`
	RowIndex       int      `json:"rowIndex"`
	ChangedColumns []string `json:"changedColumns"`
	Values         []any    `json:"values"`
}

// CacheEntry is the locally mirrored state of one sheet at a known version.
// Version is source-assigned and may legitimately be zero or negative; it is
// stored and returned verbatim. Entries are always replaced as a whole, never
// mutated field by field.
type CacheEntry struct {
	Headers        []string      `json:"headers"`
	Rows           []SheetRow    `json:"rows"`
	Version        int64         `json:"version"`
	LastSnapshotAt time.Time     `json:"last_snapshot_at"`
	LastUpdated    time.Time     `json:"last_updated"`
	TTL            time.Duration `json:"ttl,omitempty"`
}

// Stale reports whether the entry has outlived its TTL at the given moment.
// Entries without a TTL never go stale.
func (e CacheEntry) Stale(now time.Time) bool {
	return e.TTL > 0 && now.Sub(e.LastUpdated) > e.TTL
}
