// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sync protocol error taxonomy. Every failure returned by the adapter wraps
// exactly one of these sentinels.
var (
	// ErrNetwork means the request never got a response.
	ErrNetwork = errors.New("network error")
	// ErrProtocol means the response arrived but its shape was invalid or
	// required fields were missing.
	ErrProtocol = errors.New("protocol error")
	// ErrServer means the server answered with a non-success status or an
	// ok:false body.
	ErrServer = errors.New("server error")
	// ErrTimeout means the request deadline was exceeded.
	ErrTimeout = errors.New("request timeout")
)

// StatusError couples an HTTP status code with the server error taxonomy.
// It unwraps to ErrServer so errors.Is(err, ErrServer) holds, while keeping
// the status available for retry decisions.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrServer }

// IsRetryable reports whether err is a server error worth retrying: an HTTP
// 5xx response. Timeouts, protocol violations, and body-level ok:false
// rejections are permanent.
func IsRetryable(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status >= 500
}
