// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the sync
// engine. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds sync-protocol settings: the delta-sync feature flag, the
	// changes poll interval, and the cache entry TTL.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the outbound source adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local cache persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for the background auto-refresh scheduler.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged on top of the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds sync-protocol level settings.
type App struct {
	// DeltaSyncEnabled toggles the incremental changes protocol. When false,
	// every sync performs a full snapshot load. A nil pointer means the flag
	// was not configured anywhere; the service-level accessor treats that as
	// enabled.
	// Env: APP_DELTA_SYNC_ENABLED
	DeltaSyncEnabled *bool `env:"DELTA_SYNC_ENABLED"`

	// PollInterval is the desired interval between changes polls. Values
	// outside the documented bounds fall back to the default at the accessor
	// level rather than failing here.
	// Env: APP_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// CacheTTL is how long a cache entry stays fresh before the next sync
	// prefers a full snapshot over an incremental poll. Zero disables
	// TTL-based staleness.
	// Env: APP_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// Adapter holds network settings used by the outbound transport layer.
type Adapter struct {
	// HTTPAddress is the base address of the sheet source API.
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout is the deadline applied to every outbound request.
	// Defaults to 30s when left unset by every source.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local cache database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains the local cache database connection settings.
type DB struct {
	// DSN is the SQLite file path for the persisted cache. Empty selects the
	// in-memory cache store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers contains background auto-refresh settings.
type Workers struct {
	// AutoRefreshEnabled toggles the periodic refresh scheduler.
	// Env: WORKERS_AUTO_REFRESH_ENABLED
	AutoRefreshEnabled bool `env:"AUTO_REFRESH_ENABLED"`

	// RefreshInterval defines how often the scheduler triggers a full
	// refresh. Zero or negative disables periodic firing.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}
