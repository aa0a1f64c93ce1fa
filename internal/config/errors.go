// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an unusable port or non-positive
	// server timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRiotConfigs indicates missing routing values, malformed base
	// URLs, or non-positive upstream client limits.
	ErrInvalidRiotConfigs = errors.New("invalid riot configuration")
	// ErrInvalidCacheConfigs indicates an enabled cache with a non-positive TTL.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
)
