// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/ABNAPP/STOCK-SCORE-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SourceAdapter is the outbound protocol client for the sheet source API.
// Implementations classify every failure into the sync error taxonomy
// (ErrNetwork, ErrProtocol, ErrServer, ErrTimeout) so callers can branch with
// errors.Is.
type SourceAdapter interface {
	// FetchSnapshot retrieves the full authoritative dump of one sheet.
	// A response missing Version, Headers, Rows or GeneratedAt is rejected
	// as ErrProtocol; ok:false is rejected as ErrServer with the
	// server-supplied message.
	FetchSnapshot(ctx context.Context, sheet string) (models.SnapshotResponse, error)

	// FetchChanges retrieves the row mutations recorded since fromVersion.
	// The NeedsFullResync flag is passed through on the response, never
	// turned into an error.
	FetchChanges(ctx context.Context, sheet string, fromVersion int64) (models.ChangesResponse, error)

	// InvalidateRemoteCache triggers server-side recomputation of every
	// dataset. The result carries per-dataset success/error detail; a
	// returned error means the operation as a whole did not go through.
	InvalidateRemoteCache(ctx context.Context) (models.InvalidateResult, error)

	// ClearTransportCache purges the intermediate transport-level cache
	// layer. Callers treat failures as non-fatal.
	ClearTransportCache(ctx context.Context) error
}
