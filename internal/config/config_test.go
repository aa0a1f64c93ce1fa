// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServer_Address(t *testing.T) {
	tests := []struct {
		name   string
		server Server
		want   string
	}{
		{name: "all interfaces", server: Server{Port: 3001}, want: ":3001"},
		{name: "localhost", server: Server{Host: "localhost", Port: 8080}, want: "localhost:8080"},
		{name: "ipv6", server: Server{Host: "::1", Port: 8080}, want: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.server.Address())
		})
	}
}

func TestRiot_URLs(t *testing.T) {
	t.Run("derived from routing values", func(t *testing.T) {
		r := Riot{PlatformRegion: "na1", RegionalRoute: "americas"}

		assert.Equal(t, "https://na1.api.riotgames.com", r.PlatformURL())
		assert.Equal(t, "https://americas.api.riotgames.com", r.RegionalURL())
	})

	t.Run("explicit base urls win", func(t *testing.T) {
		r := Riot{
			PlatformRegion:  "na1",
			RegionalRoute:   "americas",
			PlatformBaseURL: "http://127.0.0.1:9000/",
			RegionalBaseURL: "http://127.0.0.1:9001",
		}

		assert.Equal(t, "http://127.0.0.1:9000", r.PlatformURL())
		assert.Equal(t, "http://127.0.0.1:9001", r.RegionalURL())
	})
}

func TestCache_Enabled(t *testing.T) {
	assert.False(t, Cache{}.Enabled())
	assert.True(t, Cache{RedisAddress: "localhost:6379"}.Enabled())
}

func TestStructuredConfig_Redacted(t *testing.T) {
	cfg := StructuredConfig{
		Riot:  Riot{APIKey: "RGAPI-secret", PlatformRegion: "euw1"},
		Cache: Cache{RedisPassword: "hunter2"},
	}

	redacted := cfg.Redacted()

	assert.Equal(t, "***", redacted.Riot.APIKey)
	assert.Equal(t, "***", redacted.Cache.RedisPassword)
	assert.Equal(t, "euw1", redacted.Riot.PlatformRegion)
	assert.Equal(t, "RGAPI-secret", cfg.Riot.APIKey, "source config must stay intact")
	assert.Empty(t, StructuredConfig{}.Redacted().Riot.APIKey)
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := defaultConfig()

	assert.NoError(t, cfg.validate())
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "euw1", cfg.Riot.PlatformRegion)
	assert.Equal(t, "europe", cfg.Riot.RegionalRoute)
	assert.False(t, cfg.Cache.Enabled())
}
