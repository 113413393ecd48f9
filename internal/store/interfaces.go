// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/ABNAPP/STOCK-SCORE-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CacheStore is the versioned local mirror of remote sheets. Entries are
// replaced atomically as a whole; callers never mutate a returned entry in
// place. Implementations are safe for concurrent use.
type CacheStore interface {
	// Get returns the entry for key. An absent key yields ok=false and a nil
	// error; errors are reserved for storage failures.
	Get(ctx context.Context, key string) (entry models.CacheEntry, ok bool, err error)

	// Set atomically replaces the entry for key. When isSnapshot is true the
	// entry's LastSnapshotAt is reset to now; otherwise the previous
	// LastSnapshotAt is preserved while LastUpdated moves forward. A Set
	// that would lower the stored version for an existing key fails with
	// ErrVersionRegression.
	Set(ctx context.Context, key string, entry models.CacheEntry, isSnapshot bool) error

	// LastVersion returns the stored version for key, or 0 when the key is
	// absent. A stored zero or negative version is returned verbatim, not
	// treated as absent.
	LastVersion(ctx context.Context, key string) (int64, error)

	// Invalidate drops the listed entries, or every entry when no keys are
	// given. Dropping an absent key is a no-op.
	Invalidate(ctx context.Context, keys ...string) error

	// Close releases any underlying resources.
	Close() error
}
