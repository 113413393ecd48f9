// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/config"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/logger"
)

type schedulerState int

const (
	schedulerIdle schedulerState = iota
	schedulerScheduled
	schedulerSuppressed
	schedulerFiring
)

func (st schedulerState) String() string {
	switch st {
	case schedulerScheduled:
		return "scheduled"
	case schedulerSuppressed:
		return "suppressed"
	case schedulerFiring:
		return "firing"
	default:
		return "idle"
	}
}

// AutoRefreshScheduler periodically triggers the refresh coordinator. It is
// idle until Start is called, never fires with a non-positive interval, stays
// quiet while the app is backgrounded, and cooperatively skips a turn when a
// refresh run is already in flight.
type AutoRefreshScheduler struct {
	coordinator Coordinator
	logger      *logger.Logger

	mu          sync.Mutex
	enabled     bool
	interval    time.Duration
	visible     bool
	state       schedulerState
	lastRefresh time.Time
	baseCtx     context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// NewAutoRefreshScheduler creates a scheduler over the given coordinator,
// initially configured from cfg and considered foregrounded.
func NewAutoRefreshScheduler(coordinator Coordinator, cfg config.Workers, log *logger.Logger) *AutoRefreshScheduler {
	return &AutoRefreshScheduler{
		coordinator: coordinator,
		logger:      log,
		enabled:     cfg.AutoRefreshEnabled,
		interval:    cfg.RefreshInterval,
		visible:     true,
	}
}

// Start stops any previously running timer and, when the scheduler is enabled
// with a positive interval, launches a background goroutine that fires every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (s *AutoRefreshScheduler) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	s.baseCtx = ctx
	if !s.enabled || s.interval <= 0 {
		s.state = schedulerIdle
		s.mu.Unlock()
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = schedulerScheduled
	interval := s.interval
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				s.fire(loopCtx)
			}
		}
	}()
}

// Stop cancels the timer goroutine and blocks until it has fully exited.
// Safe to call when the scheduler is not running.
func (s *AutoRefreshScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.state = schedulerIdle
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// Configure updates the enabled flag and interval, tearing down and
// rebuilding the timer when Start has already been called.
func (s *AutoRefreshScheduler) Configure(enabled bool, interval time.Duration) {
	s.mu.Lock()
	s.enabled = enabled
	s.interval = interval
	ctx := s.baseCtx
	s.mu.Unlock()

	if ctx != nil {
		s.Start(ctx)
	}
}

// SetVisible records foreground/background visibility. While hidden the
// scheduler suppresses firing; on regaining the foreground it triggers an
// immediate catch-up refresh if more than half the configured interval has
// elapsed since the last one.
func (s *AutoRefreshScheduler) SetVisible(visible bool) {
	s.mu.Lock()
	wasVisible := s.visible
	s.visible = visible

	if !visible {
		if s.state != schedulerIdle {
			s.state = schedulerSuppressed
		}
		s.mu.Unlock()
		return
	}

	if s.state == schedulerSuppressed {
		s.state = schedulerScheduled
	}
	runnable := s.enabled && s.interval > 0 && s.cancel != nil
	interval := s.interval
	last := s.lastRefresh
	ctx := s.baseCtx
	s.mu.Unlock()

	if wasVisible || !runnable {
		return
	}
	if !last.IsZero() && time.Since(last) <= interval/2 {
		return
	}

	go s.fire(ctx)
}

// State returns the scheduler's current lifecycle state name.
func (s *AutoRefreshScheduler) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.String()
}

func (s *AutoRefreshScheduler) fire(ctx context.Context) {
	s.mu.Lock()
	if !s.enabled || s.interval <= 0 || !s.visible {
		s.mu.Unlock()
		return
	}
	if s.coordinator.Refreshing() {
		s.mu.Unlock()
		s.logger.Debug().Msg("refresh already in flight, skipping scheduled turn")
		return
	}
	s.state = schedulerFiring
	s.lastRefresh = time.Now()
	s.mu.Unlock()

	if err := s.coordinator.RefreshAll(ctx); err != nil && !errors.Is(err, ErrRefreshInProgress) {
		s.logger.Warn().Err(err).Msg("scheduled refresh failed")
	}

	s.mu.Lock()
	if s.state == schedulerFiring {
		s.state = schedulerScheduled
	}
	s.mu.Unlock()
}
