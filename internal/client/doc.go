// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the sheet-mirror sync engine from configuration:
// cache store, source adapter, refetch registry, refresh coordinator, and
// auto-refresh scheduler.
package client
