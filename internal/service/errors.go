// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrRefreshInProgress is returned by RefreshAll when another refresh
	// run is already in flight. Callers retry later; runs never overlap.
	ErrRefreshInProgress = errors.New("refresh already in progress")
)
