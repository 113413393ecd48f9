// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ABNAPP/STOCK-SCORE-sub000/models"
)

type memoryCacheStore struct {
	mu      sync.RWMutex
	entries map[string]models.CacheEntry
}

// NewMemoryCacheStore returns an in-memory [CacheStore]. Entries live for the
// process lifetime; Close is a no-op.
func NewMemoryCacheStore() CacheStore {
	return &memoryCacheStore{entries: make(map[string]models.CacheEntry)}
}

func (s *memoryCacheStore) Get(_ context.Context, key string) (models.CacheEntry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	return entry, ok, nil
}

func (s *memoryCacheStore) Set(_ context.Context, key string, entry models.CacheEntry, isSnapshot bool) error {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, exists := s.entries[key]
	if exists && entry.Version < prev.Version {
		return fmt.Errorf("%w: key %q: stored %d, incoming %d", ErrVersionRegression, key, prev.Version, entry.Version)
	}

	entry.LastUpdated = now
	if isSnapshot {
		entry.LastSnapshotAt = now
	} else if exists {
		entry.LastSnapshotAt = prev.LastSnapshotAt
	}

	s.entries[key] = entry
	return nil
}

func (s *memoryCacheStore) LastVersion(_ context.Context, key string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok {
		return 0, nil
	}
	return entry.Version, nil
}

func (s *memoryCacheStore) Invalidate(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(keys) == 0 {
		s.entries = make(map[string]models.CacheEntry)
		return nil
	}

	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

func (s *memoryCacheStore) Close() error { return nil }
