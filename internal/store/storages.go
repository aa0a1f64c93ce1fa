// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-riot-proxy/internal/config"
	"github.com/MKhiriev/go-riot-proxy/internal/logger"
)

// Storages groups every storage backend. ResponseCache is nil when caching
// is disabled in the configuration.
type Storages struct {
	ResponseCache ResponseCache
}

// NewStorages connects the configured backends.
func NewStorages(ctx context.Context, cfg config.Cache, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	if !cfg.Enabled() {
		log.Info().Msg("response cache disabled")
		return storages, nil
	}

	cache, err := NewRedisResponseCache(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating response cache: %w", err)
	}
	storages.ResponseCache = cache

	return storages, nil
}

// Close releases every connected backend.
func (s *Storages) Close() error {
	if s.ResponseCache == nil {
		return nil
	}
	return s.ResponseCache.Close()
}
