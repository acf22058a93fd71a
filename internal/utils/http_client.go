// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	httpClientRetryCount   = 2
	httpClientRetryWait    = 200 * time.Millisecond
	httpClientRetryMaxWait = 2 * time.Second
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client with its own connection pool that retries
// requests failing with a network error or one of 502, 503 and 504. Push and
// pull are both idempotent on the server, so a replayed request is harmless.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(httpClientRetryCount).
		SetRetryWaitTime(httpClientRetryWait).
		SetRetryMaxWaitTime(httpClientRetryMaxWait).
		AddRetryCondition(retryOnGatewayError)

	return &HTTPClient{Client: client}
}

func retryOnGatewayError(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
