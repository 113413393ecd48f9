// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags into a [StructuredConfig].
//
// Flags:
//
//	-a source API base address, e.g. http://localhost:8080
//	-d local cache database path (SQLite file)
//	-c/-config json file path with configs
//	-poll-interval changes poll interval (e.g. "5m", "30s")
//	-cache-ttl cache entry TTL (e.g. "1h")
//	-request-timeout outbound request timeout (e.g. "30s")
//	-refresh-interval auto-refresh interval; 0 disables periodic refresh
//	-auto-refresh enable the periodic refresh scheduler
func ParseFlags() *StructuredConfig {
	var sourceAddress string
	var databaseDSN string
	var jsonConfigPath string
	var pollInterval time.Duration
	var cacheTTL time.Duration
	var requestTimeout time.Duration
	var refreshInterval time.Duration
	var autoRefresh bool

	flag.StringVar(&sourceAddress, "a", "", "Source API base address")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Changes poll interval (e.g., 5m, 30s)")
	flag.DurationVar(&cacheTTL, "cache-ttl", 0, "Cache entry TTL (e.g., 1h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Auto-refresh interval")
	flag.BoolVar(&autoRefresh, "auto-refresh", false, "Enable the periodic refresh scheduler")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			PollInterval: pollInterval,
			CacheTTL:     cacheTTL,
		},
		Adapter: Adapter{
			HTTPAddress:    sourceAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			AutoRefreshEnabled: autoRefresh,
			RefreshInterval:    refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
