// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:   "missing api key is allowed",
			mutate: func(cfg *StructuredConfig) { cfg.Riot.APIKey = "" },
		},
		{
			name:    "port zero",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.Port = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "port too large",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.Port = 70000 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "no platform",
			mutate:  func(cfg *StructuredConfig) { cfg.Riot.PlatformRegion = "" },
			wantErr: ErrInvalidRiotConfigs,
		},
		{
			name: "platform base url replaces region",
			mutate: func(cfg *StructuredConfig) {
				cfg.Riot.PlatformRegion = ""
				cfg.Riot.PlatformBaseURL = "http://localhost:9000"
			},
		},
		{
			name:    "no regional route",
			mutate:  func(cfg *StructuredConfig) { cfg.Riot.RegionalRoute = "" },
			wantErr: ErrInvalidRiotConfigs,
		},
		{
			name:    "base url without scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Riot.RegionalBaseURL = "localhost:9000" },
			wantErr: ErrInvalidRiotConfigs,
		},
		{
			name:    "zero breaker failures",
			mutate:  func(cfg *StructuredConfig) { cfg.Riot.BreakerMaxFailures = 0 },
			wantErr: ErrInvalidRiotConfigs,
		},
		{
			name: "cache enabled without ttl",
			mutate: func(cfg *StructuredConfig) {
				cfg.Cache.RedisAddress = "localhost:6379"
				cfg.Cache.MatchDetailTTL = 0
			},
			wantErr: ErrInvalidCacheConfigs,
		},
		{
			name:   "cache disabled without ttl",
			mutate: func(cfg *StructuredConfig) { cfg.Cache.MatchDetailTTL = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
