// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the storage layer of the proxy. The only store is
// an optional response cache for immutable upstream payloads.
package store

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/response_cache_mock.go -package=mock

// ResponseCache keeps raw upstream bodies keyed by a caller-chosen key.
type ResponseCache interface {
	// Get returns the cached body for key, or [ErrCacheMiss] when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores body under key for ttl.
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error

	// Close releases the connection pool.
	Close() error
}
