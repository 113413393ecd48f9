// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/config"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/logger"
	"github.com/ABNAPP/STOCK-SCORE-sub000/internal/utils"
	"github.com/ABNAPP/STOCK-SCORE-sub000/models"
	"github.com/go-resty/resty/v2"
)

type httpSourceAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPSourceAdapter constructs an HTTP/REST implementation of
// [SourceAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPSourceAdapter(adapterCfg config.Adapter, log *logger.Logger) (SourceAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpSourceAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchSnapshot implements [SourceAdapter]. It GETs the snapshot endpoint for
// the given sheet and validates that Version, Headers, Rows, and GeneratedAt
// are all present before returning the decoded response.
func (h *httpSourceAdapter) FetchSnapshot(ctx context.Context, sheet string) (models.SnapshotResponse, error) {
	var snap models.SnapshotResponse

	resp, err := h.get(ctx, "/api/sheets/"+url.PathEscape(sheet)+"/snapshot", nil)
	if err != nil {
		return snap, fmt.Errorf("snapshot request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return snap, err
	}

	if err = json.Unmarshal(resp.Body(), &snap); err != nil {
		return snap, fmt.Errorf("%w: decode snapshot response: %v", ErrProtocol, err)
	}
	if !snap.OK {
		return snap, fmt.Errorf("%w: %s", ErrServer, serverMessage(snap.Error))
	}
	if err = validateSnapshot(snap); err != nil {
		return snap, err
	}

	return snap, nil
}

// FetchChanges implements [SourceAdapter]. It GETs the changes endpoint
// parameterised by fromVersion and decodes the response. A NeedsFullResync
// flag on an ok response is passed through to the caller untouched.
func (h *httpSourceAdapter) FetchChanges(ctx context.Context, sheet string, fromVersion int64) (models.ChangesResponse, error) {
	var changes models.ChangesResponse

	path := "/api/sheets/" + url.PathEscape(sheet) + "/changes"
	resp, err := h.get(ctx, path, map[string]string{"from": strconv.FormatInt(fromVersion, 10)})
	if err != nil {
		return changes, fmt.Errorf("changes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return changes, err
	}

	if err = json.Unmarshal(resp.Body(), &changes); err != nil {
		return changes, fmt.Errorf("%w: decode changes response: %v", ErrProtocol, err)
	}
	if !changes.OK {
		return changes, fmt.Errorf("%w: %s", ErrServer, serverMessage(changes.Error))
	}
	if changes.ToVersion < changes.FromVersion {
		return changes, fmt.Errorf("%w: toVersion %d below fromVersion %d", ErrProtocol, changes.ToVersion, changes.FromVersion)
	}

	return changes, nil
}

// InvalidateRemoteCache implements [SourceAdapter]. It POSTs the privileged
// invalidation endpoint that makes the source recompute every dataset and
// returns the per-dataset acknowledgement.
func (h *httpSourceAdapter) InvalidateRemoteCache(ctx context.Context) (models.InvalidateResult, error) {
	var result models.InvalidateResult

	resp, err := h.client.R().SetContext(ctx).Post("/api/cache/invalidate")
	if err != nil {
		return result, fmt.Errorf("invalidate request: %w", mapTransportError(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("%w: decode invalidate response: %v", ErrProtocol, err)
	}
	if !result.OK {
		return result, fmt.Errorf("%w: %s", ErrServer, serverMessage(result.Error))
	}

	return result, nil
}

// ClearTransportCache implements [SourceAdapter]. It POSTs the transport
// cache purge endpoint. Callers treat a failure here as non-fatal.
func (h *httpSourceAdapter) ClearTransportCache(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Post("/api/cache/transport")
	if err != nil {
		return fmt.Errorf("transport cache clear request: %w", mapTransportError(err))
	}

	return mapHTTPError(resp)
}

func (h *httpSourceAdapter) get(ctx context.Context, path string, query map[string]string) (*resty.Response, error) {
	req := h.client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, mapTransportError(err)
	}

	return resp, nil
}

// validateSnapshot enforces the required snapshot fields. Version is a
// pointer so a genuinely zero version still counts as present.
func validateSnapshot(snap models.SnapshotResponse) error {
	switch {
	case snap.Version == nil:
		return fmt.Errorf("%w: snapshot missing version", ErrProtocol)
	case snap.Headers == nil:
		return fmt.Errorf("%w: snapshot missing headers", ErrProtocol)
	case snap.Rows == nil:
		return fmt.Errorf("%w: snapshot missing rows", ErrProtocol)
	case snap.GeneratedAt == "":
		return fmt.Errorf("%w: snapshot missing generatedAt", ErrProtocol)
	}

	return nil
}

func serverMessage(msg string) string {
	if msg == "" {
		return "server rejected the request"
	}
	return msg
}
