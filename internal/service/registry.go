// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/logger"
)

// RefetchOptions is handed to every refetch callback on invocation.
type RefetchOptions struct {
	// SkipFetch tells the callback to re-read the already-recomputed remote
	// state instead of triggering recomputation again, avoiding duplicate
	// server work during a coordinated refresh.
	SkipFetch bool
}

// RefetchFunc re-reads or re-requests one mirrored dataset on behalf of a
// registered consumer.
type RefetchFunc func(ctx context.Context, opts RefetchOptions) error

// RefetchOutcome is the isolated result of invoking one registered callback.
type RefetchOutcome struct {
	SourceID       string
	RegistrationID uuid.UUID
	Err            error
}

// registration carries one callback together with the lock that serialises
// invocation against unregistration. fn is nil once unregistered.
type registration struct {
	mu sync.Mutex
	fn RefetchFunc
}

// RefreshRegistry maps source identifiers to the currently active refetch
// callbacks. It holds no callback beyond its consumer's active lifetime:
// every registration returns an idempotent unregister function, and a source
// whose callback set drains empty is removed from the map entirely.
type RefreshRegistry struct {
	logger *logger.Logger

	mu        sync.Mutex
	callbacks map[string]map[uuid.UUID]*registration
}

// NewRefreshRegistry returns an empty registry.
func NewRefreshRegistry(log *logger.Logger) *RefreshRegistry {
	return &RefreshRegistry{
		logger:    log,
		callbacks: make(map[string]map[uuid.UUID]*registration),
	}
}

// Register adds fn to the callback set for sourceID, creating the set if
// absent. The returned closure removes exactly this registration and is safe
// to call more than once; once it returns, fn will not be invoked again.
// Because unregister waits out an in-flight invocation of fn, it must not be
// called from inside the callback itself.
func (r *RefreshRegistry) Register(sourceID string, fn RefetchFunc) (unregister func()) {
	id := uuid.New()
	reg := &registration{fn: fn}

	r.mu.Lock()
	set, ok := r.callbacks[sourceID]
	if !ok {
		set = make(map[uuid.UUID]*registration)
		r.callbacks[sourceID] = set
	}
	set[id] = reg
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			reg.mu.Lock()
			reg.fn = nil
			reg.mu.Unlock()

			r.mu.Lock()
			if set, ok := r.callbacks[sourceID]; ok {
				delete(set, id)
				if len(set) == 0 {
					delete(r.callbacks, sourceID)
				}
			}
			r.mu.Unlock()
		})
	}
}

// InvokeAll invokes every currently registered callback for sourceID
// independently. One callback's failure (or panic) is captured in its own
// outcome and never blocks or cancels the others. With zero registered
// callbacks it returns nil immediately and performs no work at all.
func (r *RefreshRegistry) InvokeAll(ctx context.Context, sourceID string, opts RefetchOptions) []RefetchOutcome {
	r.mu.Lock()
	set := r.callbacks[sourceID]
	if len(set) == 0 {
		r.mu.Unlock()
		return nil
	}
	ids := make([]uuid.UUID, 0, len(set))
	regs := make([]*registration, 0, len(set))
	for id, reg := range set {
		ids = append(ids, id)
		regs = append(regs, reg)
	}
	r.mu.Unlock()

	outcomes := make([]RefetchOutcome, 0, len(regs))
	for i, reg := range regs {
		reg.mu.Lock()
		fn := reg.fn
		if fn == nil {
			reg.mu.Unlock()
			continue
		}
		err := invoke(ctx, fn, opts)
		reg.mu.Unlock()

		if err != nil {
			r.logger.Warn().Err(err).Str("source", sourceID).Str("registration", ids[i].String()).Msg("refetch callback failed")
		}
		outcomes = append(outcomes, RefetchOutcome{SourceID: sourceID, RegistrationID: ids[i], Err: err})
	}

	return outcomes
}

// Sources returns the identifiers that currently have at least one registered
// callback, sorted for deterministic fan-out order.
func (r *RefreshRegistry) Sources() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	sources := make([]string, 0, len(r.callbacks))
	for src := range r.callbacks {
		sources = append(sources, src)
	}
	sort.Strings(sources)

	return sources
}

// invoke runs fn, converting a panic into an ordinary error so a misbehaving
// consumer cannot take down the fan-out.
func invoke(ctx context.Context, fn RefetchFunc, opts RefetchOptions) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("refetch callback panic: %v", rec)
		}
	}()

	return fn(ctx, opts)
}
