// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-riot-proxy/internal/logger"
	"github.com/MKhiriev/go-riot-proxy/internal/metrics"
	"github.com/MKhiriev/go-riot-proxy/internal/store"
	"github.com/MKhiriev/go-riot-proxy/models"
)

// cachingRiotAdapter serves finished matches from the response cache. A
// match never changes once it is listed, so its detail can be kept for long.
// Every other call passes straight through to the embedded adapter.
type cachingRiotAdapter struct {
	RiotAdapter

	cache store.ResponseCache
	ttl   time.Duration
}

// NewCachingRiotAdapter decorates inner with a match-detail cache. Cache
// failures are logged and never fail the call.
func NewCachingRiotAdapter(inner RiotAdapter, cache store.ResponseCache, ttl time.Duration) RiotAdapter {
	return &cachingRiotAdapter{
		RiotAdapter: inner,
		cache:       cache,
		ttl:         ttl,
	}
}

func (c *cachingRiotAdapter) MatchByID(ctx context.Context, matchID string) (models.UpstreamResponse, error) {
	log := logger.FromContext(ctx)
	key := matchCacheKey(matchID)

	body, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		metrics.ObserveCacheLookup(metrics.CacheHit)
		log.Debug().Str("match_id", matchID).Msg("match detail served from cache")
		return models.UpstreamResponse{StatusCode: http.StatusOK, Body: body}, nil
	case errors.Is(err, store.ErrCacheMiss):
		metrics.ObserveCacheLookup(metrics.CacheMiss)
	default:
		metrics.ObserveCacheLookup(metrics.CacheError)
		log.Warn().Err(err).Str("match_id", matchID).Msg("response cache lookup failed")
	}

	resp, err := c.RiotAdapter.MatchByID(ctx, matchID)
	if err != nil || !resp.OK() {
		return resp, err
	}

	if err = c.cache.Set(ctx, key, resp.Body, c.ttl); err != nil {
		log.Warn().Err(err).Str("match_id", matchID).Msg("response cache store failed")
	}

	return resp, nil
}

func matchCacheKey(matchID string) string {
	return "match:" + matchID
}
