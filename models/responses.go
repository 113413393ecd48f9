// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SnapshotResponse is the source's full authoritative dump of one sheet.
// Version is a pointer so that a legitimately zero version can be told apart
// from a field the server omitted; the adapter rejects responses missing any
// of Version, Headers, Rows or GeneratedAt.
type SnapshotResponse struct {
	OK          bool       `json:"ok"`
	Version     *int64     `json:"version"`
	Headers     []string   `json:"headers"`
	Rows        []SheetRow `json:"rows"`
	GeneratedAt string     `json:"generatedAt"`
	Error       string     `json:"error,omitempty"`
}

// ChangesResponse carries the row mutations recorded between FromVersion and
// ToVersion. NeedsFullResync tells the client its version context is no
// longer serviceable and the next sync must load a fresh snapshot; it is a
// signal, not an error.
type ChangesResponse struct {
	OK              bool           `json:"ok"`
	FromVersion     int64          `json:"fromVersion"`
	ToVersion       int64          `json:"toVersion"`
	Changes         []ChangeRecord `json:"changes"`
	NeedsFullResync bool           `json:"needsFullResync,omitempty"`
	Error           string         `json:"error,omitempty"`
}

// DatasetOutcome is the per-dataset result reported by the remote cache
// invalidation endpoint.
type DatasetOutcome struct {
	Source string `json:"source"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// InvalidateResult is the acknowledgement of a remote-side cache
// recomputation. Individual datasets may fail without failing the whole
// operation; those failures are recorded in Datasets.
type InvalidateResult struct {
	OK       bool             `json:"ok"`
	Datasets []DatasetOutcome `json:"datasets,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// ApplyReport describes what a change merge actually did. Malformed change
// records are skipped one by one rather than failing the merge, so the report
// always exists even when some records could not be applied.
type ApplyReport struct {
	Applied int
	Skipped int
	Version int64
}
