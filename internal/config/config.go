// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container of the proxy.
// It is populated by merging built-in defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as version and log level.
	App App `envPrefix:"APP_"`

	// Server holds listen address and timeouts of the inbound HTTP server.
	// Host and port are read from the bare HOST and PORT variables that
	// hosting platforms inject.
	Server Server

	// Riot holds the upstream API key, routing values and client limits.
	Riot Riot `envPrefix:"RIOT_"`

	// Cache holds the optional Redis response cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Version overrides the build version reported on the version route.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Host is the interface to bind. Empty binds all interfaces.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port to listen on.
	// Env: PORT
	Port int `env:"PORT"`

	// RequestTimeout bounds the handling of a single inbound request,
	// upstream calls included.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists CORS origins. Defaults to any origin.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"SERVER_ALLOWED_ORIGINS" envSeparator:","`
}

// Address returns the listen address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Riot holds the settings of the upstream Riot API client.
type Riot struct {
	// APIKey is injected into every upstream request. It must never reach
	// the client or the logs.
	// Env: RIOT_API_KEY
	APIKey string `env:"API_KEY"`

	// PlatformRegion is the shard used for summoner, league and platform
	// endpoints (e.g. "euw1", "na1").
	// Env: RIOT_PLATFORM_REGION
	PlatformRegion string `env:"PLATFORM_REGION"`

	// RegionalRoute is the continent used for account and match endpoints
	// (e.g. "europe", "americas").
	// Env: RIOT_REGIONAL_ROUTE
	RegionalRoute string `env:"REGIONAL_ROUTE"`

	// PlatformBaseURL replaces the URL derived from PlatformRegion.
	// Env: RIOT_PLATFORM_BASE_URL
	PlatformBaseURL string `env:"PLATFORM_BASE_URL"`

	// RegionalBaseURL replaces the URL derived from RegionalRoute.
	// Env: RIOT_REGIONAL_BASE_URL
	RegionalBaseURL string `env:"REGIONAL_BASE_URL"`

	// RequestTimeout bounds a single upstream call.
	// Env: RIOT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// BreakerTimeout is how long the circuit stays open before probing.
	// Env: RIOT_BREAKER_TIMEOUT
	BreakerTimeout time.Duration `env:"BREAKER_TIMEOUT"`

	// BreakerMaxFailures is the number of consecutive transport failures
	// that opens the circuit.
	// Env: RIOT_BREAKER_MAX_FAILURES
	BreakerMaxFailures uint32 `env:"BREAKER_MAX_FAILURES"`
}

// PlatformURL returns the base URL of the platform host.
func (r Riot) PlatformURL() string {
	if r.PlatformBaseURL != "" {
		return strings.TrimRight(r.PlatformBaseURL, "/")
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", r.PlatformRegion)
}

// RegionalURL returns the base URL of the regional host.
func (r Riot) RegionalURL() string {
	if r.RegionalBaseURL != "" {
		return strings.TrimRight(r.RegionalBaseURL, "/")
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", r.RegionalRoute)
}

// Cache holds Redis settings. Caching is disabled while RedisAddress is empty.
type Cache struct {
	// Env: CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// Env: CACHE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Env: CACHE_REDIS_DB
	RedisDB int `env:"REDIS_DB"`

	// MatchDetailTTL is how long a match-detail body stays cached.
	// Env: CACHE_MATCH_DETAIL_TTL
	MatchDetailTTL time.Duration `env:"MATCH_DETAIL_TTL"`
}

// Enabled reports whether a Redis address is configured.
func (c Cache) Enabled() bool {
	return c.RedisAddress != ""
}

// Redacted returns a copy of cfg that is safe to log.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	cfg.Riot.APIKey = redact(cfg.Riot.APIKey)
	cfg.Cache.RedisPassword = redact(cfg.Cache.RedisPassword)
	return cfg
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "***"
}

// defaultConfig returns the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			Port:            3001,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Riot: Riot{
			PlatformRegion:     "euw1",
			RegionalRoute:      "europe",
			RequestTimeout:     10 * time.Second,
			BreakerTimeout:     30 * time.Second,
			BreakerMaxFailures: 5,
		},
		Cache: Cache{
			MatchDetailTTL: 24 * time.Hour,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
