// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrVersionRegression is returned by Set when the incoming entry's
	// version is lower than the version already stored for the key.
	ErrVersionRegression = errors.New("cache version regression")
)
