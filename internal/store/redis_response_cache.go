// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-riot-proxy/internal/config"
	"github.com/MKhiriev/go-riot-proxy/internal/logger"
	"github.com/go-redis/redis/v8"
)

// keyPrefix namespaces every key written by the proxy.
const keyPrefix = "riot-proxy:"

const pingTimeout = 5 * time.Second

type redisResponseCache struct {
	client *redis.Client
}

// NewRedisResponseCache connects to Redis and verifies the connection with
// a PING before returning.
func NewRedisResponseCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (ResponseCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("address", cfg.RedisAddress).Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	log.Info().Str("address", cfg.RedisAddress).Msg("connected to redis successfully")

	return newRedisResponseCache(client), nil
}

func newRedisResponseCache(client *redis.Client) *redisResponseCache {
	return &redisResponseCache{client: client}
}

func (c *redisResponseCache) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrCacheUnavailable, key, err)
	}

	return body, nil
}

func (c *redisResponseCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, keyPrefix+key, string(body), ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %w", ErrCacheUnavailable, key, err)
	}

	return nil
}

func (c *redisResponseCache) Close() error {
	return c.client.Close()
}
