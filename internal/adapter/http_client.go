// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// Client is the connection to the remote service shared by every entity
// transport of the agent.
type Client struct {
	client   *utils.HTTPClient
	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewClient normalises adapterCfg.HTTPAddress and configures the HTTP client
// with the resolved base URL and request timeout. The session token from
// appCfg is attached to every request as a bearer token.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewClient(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	c := &Client{
		client:   client,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   log,
	}
	c.SetToken(appCfg.AccessToken)

	return c, nil
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

// SetToken replaces the bearer token used by subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently attached to requests.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// authedRequest starts a request carrying the session token and a fresh
// trace id.
func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, c.traceIDs.Generate())
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
