// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by cache methods. Callers should use [errors.Is].
var (
	// ErrCacheMiss is returned by Get when nothing is stored under the key.
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable wraps every failure to reach the cache backend.
	ErrCacheUnavailable = errors.New("cache unavailable")
)
