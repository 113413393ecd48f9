// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [ClientConfig] satisfies the
// invariants the engine relies on at startup. DSN is allowed to be empty:
// that selects the in-memory cache store.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.PollInterval < 0 || cfg.App.CacheTTL < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
