// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/adapter"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/config"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/logger"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/service"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/store"
)

// App owns the assembled sync engine: the cache store, the source adapter,
// the refetch registry, the refresh coordinator, and the auto-refresh
// scheduler. Consumers obtain the pieces they need through the accessors and
// build their own typed syncers with service.NewSyncer.
type App struct {
	cfg         *config.ClientConfig
	cacheStore  store.CacheStore
	source      adapter.SourceAdapter
	registry    *service.RefreshRegistry
	coordinator *service.RefreshCoordinator
	scheduler   *service.AutoRefreshScheduler
	logger      *logger.Logger
}

// NewApp wires the engine from configuration. notifier receives the single
// aggregate notification at the end of each refresh run; pass nil to log
// notifications instead.
func NewApp(ctx context.Context, cfg *config.ClientConfig, notifier service.Notifier, log *logger.Logger) (*App, error) {
	cacheStore, err := store.NewCacheStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create cache store: %w", err)
	}

	source, err := adapter.NewHTTPSourceAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create source adapter: %w", err)
	}

	if notifier == nil {
		notifier = NewLogNotifier(log)
	}

	registry := service.NewRefreshRegistry(log)
	coordinator := service.NewRefreshCoordinator(source, cacheStore, nil, source, registry, notifier, log)
	scheduler := service.NewAutoRefreshScheduler(coordinator, cfg.Workers, log)

	return &App{
		cfg:         cfg,
		cacheStore:  cacheStore,
		source:      source,
		registry:    registry,
		coordinator: coordinator,
		scheduler:   scheduler,
		logger:      log,
	}, nil
}

// CacheStore returns the engine's versioned cache store.
func (a *App) CacheStore() store.CacheStore { return a.cacheStore }

// Source returns the outbound source adapter.
func (a *App) Source() adapter.SourceAdapter { return a.source }

// Registry returns the refetch registry consumers register with.
func (a *App) Registry() *service.RefreshRegistry { return a.registry }

// Coordinator returns the refresh coordinator.
func (a *App) Coordinator() *service.RefreshCoordinator { return a.coordinator }

// Scheduler returns the auto-refresh scheduler.
func (a *App) Scheduler() *service.AutoRefreshScheduler { return a.scheduler }

// Config returns the merged client configuration.
func (a *App) Config() *config.ClientConfig { return a.cfg }

// Run starts the auto-refresh scheduler when enabled and blocks until ctx is
// cancelled, then tears everything down.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Workers.AutoRefreshEnabled {
		a.scheduler.Start(ctx)
	}

	<-ctx.Done()

	a.scheduler.Stop()
	if err := a.cacheStore.Close(); err != nil {
		return fmt.Errorf("close cache store: %w", err)
	}

	return nil
}
