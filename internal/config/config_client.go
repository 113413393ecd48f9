// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// ClientConfig is the view of the merged configuration consumed by the sync
// engine's wiring code.
type ClientConfig struct {
	// App contains sync-protocol settings.
	App App
	// Adapter contains outbound transport settings.
	Adapter Adapter
	// Storage contains local cache persistence settings.
	Storage Storage
	// Workers contains auto-refresh scheduler settings.
	Workers Workers
}

// GetClientConfig assembles the client configuration from environment
// variables, command-line flags, and an optional JSON file, applies defaults
// for fields no source set, and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	structured, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("build client config: %w", err)
	}

	cfg := &ClientConfig{
		App:     structured.App,
		Adapter: structured.Adapter,
		Storage: structured.Storage,
		Workers: structured.Workers,
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}

	return cfg, cfg.validate()
}
