// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/config"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/logger"
)

// NewCacheStore selects the cache backend from configuration: the sqlite
// persisted store when a DSN is set, the in-memory store otherwise.
func NewCacheStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (CacheStore, error) {
	if cfg.DB.DSN == "" {
		log.Debug().Msg("no cache DSN configured, using in-memory store")
		return NewMemoryCacheStore(), nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return NewSQLiteCacheStore(db, log), nil
}
