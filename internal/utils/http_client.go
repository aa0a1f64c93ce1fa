// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://euw1.api.riotgames.com", 10*time.Second)
//	resp, err := client.R().Get("/lol/platform/v3/champion-rotations")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL that gives up on a request
// after timeout and asks for JSON responses.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", contentTypeJSON)

	return &HTTPClient{Client: client}
}
