// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/logger"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/utils"
)

// RefreshCoordinator orchestrates an app-wide "refresh now": it makes the
// source recompute its datasets once, then fans out to every currently
// registered consumer so each re-reads the fresh state without triggering
// recomputation again. At most one refresh run is in flight at any time.
type RefreshCoordinator struct {
	invalidator RemoteCacheInvalidator
	localCache  LocalCacheInvalidator
	progress    ProgressReset
	transport   TransportCacheCleaner
	registry    Registry
	notifier    Notifier
	logger      *logger.Logger

	refreshing atomic.Bool
}

// NewRefreshCoordinator wires the coordinator. progress and transport are
// optional (nil skips their best-effort steps); the rest must be non-nil.
func NewRefreshCoordinator(
	invalidator RemoteCacheInvalidator,
	localCache LocalCacheInvalidator,
	progress ProgressReset,
	transport TransportCacheCleaner,
	registry Registry,
	notifier Notifier,
	log *logger.Logger,
) *RefreshCoordinator {
	return &RefreshCoordinator{
		invalidator: invalidator,
		localCache:  localCache,
		progress:    progress,
		transport:   transport,
		registry:    registry,
		notifier:    notifier,
		logger:      log,
	}
}

// Refreshing reports whether a refresh run is currently in flight. The
// scheduler consults this before firing and skips its turn when true.
func (c *RefreshCoordinator) Refreshing() bool {
	return c.refreshing.Load()
}

// RefreshAll runs one coordinated refresh:
//
//  1. Trigger remote-side recomputation; a failure here aborts the run.
//  2. Record per-dataset failures from the acknowledgement without aborting.
//  3. Invalidate the local mirror so the next reads re-sync.
//  4. Reset the progress indicator and clear the transport cache layer,
//     both best-effort.
//  5. Fan out through the registry with SkipFetch so consumers re-read the
//     recomputed state instead of recomputing again.
//  6. Emit a single aggregate notification: Warning when anything failed
//     along the way, Success otherwise.
//
// A call while another run is in flight returns ErrRefreshInProgress without
// doing any work.
func (c *RefreshCoordinator) RefreshAll(ctx context.Context) error {
	if !c.refreshing.CompareAndSwap(false, true) {
		return ErrRefreshInProgress
	}
	defer c.refreshing.Store(false)

	log := &logger.Logger{Logger: c.logger.With().Str("run_id", utils.NewRunID()).Logger()}
	log.Info().Msg("refresh run started")

	result, err := c.invalidator.InvalidateRemoteCache(ctx)
	if err != nil {
		log.Error().Err(err).Msg("remote cache invalidation failed, aborting refresh")
		c.notifier.Error("refresh failed: could not recompute remote datasets")
		return fmt.Errorf("invalidate remote cache: %w", err)
	}

	var datasetFailures int
	for _, ds := range result.Datasets {
		if !ds.OK {
			datasetFailures++
			log.Warn().Str("dataset", ds.Source).Str("error", ds.Error).Msg("dataset failed to recompute")
		}
	}

	if err = c.localCache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("local cache invalidation failed")
	}

	if c.progress != nil {
		if err = c.progress.Reset(ctx); err != nil {
			log.Warn().Err(err).Msg("progress indicator reset failed")
		}
	}
	if c.transport != nil {
		if err = c.transport.ClearTransportCache(ctx); err != nil {
			log.Warn().Err(err).Msg("transport cache clear failed")
		}
	}

	var invoked, failed int
	for _, sourceID := range c.registry.Sources() {
		outcomes := c.registry.InvokeAll(ctx, sourceID, RefetchOptions{SkipFetch: true})
		for _, outcome := range outcomes {
			invoked++
			if outcome.Err != nil {
				failed++
			}
		}
	}

	log.Info().
		Int("consumers", invoked).
		Int("consumer_failures", failed).
		Int("dataset_failures", datasetFailures).
		Msg("refresh run finished")

	if failed > 0 || datasetFailures > 0 {
		c.notifier.Warning(fmt.Sprintf("refresh finished with %d of %d consumers and %d datasets failing", failed, invoked, datasetFailures))
	} else {
		c.notifier.Success("all datasets refreshed")
	}

	return nil
}
