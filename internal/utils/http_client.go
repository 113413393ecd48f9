// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. Embedding *resty.Client exposes all of its
// methods directly while allowing application-specific extension.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a new HTTPClient with a default-configured underlying
// resty client. Each call returns an independent instance with its own
// configuration and connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
