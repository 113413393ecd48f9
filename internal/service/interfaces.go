// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/ABNAPP/STOCK-SCORE-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RemoteCacheInvalidator triggers server-side recomputation of every dataset.
// Invoked once per refresh run; a returned error aborts the whole refresh.
type RemoteCacheInvalidator interface {
	InvalidateRemoteCache(ctx context.Context) (models.InvalidateResult, error)
}

// TransportCacheCleaner purges the intermediate transport-level cache layer.
// Failures are logged and swallowed by the coordinator.
type TransportCacheCleaner interface {
	ClearTransportCache(ctx context.Context) error
}

// ProgressReset resets an external progress-indicator collaborator at the
// start of a refresh run. Best-effort.
type ProgressReset interface {
	Reset(ctx context.Context) error
}

// Notifier receives exactly one aggregate notification per refresh run.
// Per-dataset and per-callback detail stays in the logs.
type Notifier interface {
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// Registry is the coordinator's view of the refetch registry.
type Registry interface {
	Sources() []string
	InvokeAll(ctx context.Context, sourceID string, opts RefetchOptions) []RefetchOutcome
}

// Coordinator is the scheduler's view of the refresh coordinator.
type Coordinator interface {
	RefreshAll(ctx context.Context) error
	Refreshing() bool
}

// LocalCacheInvalidator drops local mirror entries after a remote
// recomputation so the next read re-syncs. Satisfied by store.CacheStore.
type LocalCacheInvalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}
