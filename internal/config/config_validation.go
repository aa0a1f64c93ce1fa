// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

const maxPort = 65535

// validate checks that the final merged [StructuredConfig] is usable at
// startup. A missing Riot API key is not an error: the proxy keeps serving
// and every upstream call is rejected by Riot instead.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > maxPort {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	if err := cfg.Riot.validate(); err != nil {
		return err
	}

	if cfg.Cache.Enabled() && cfg.Cache.MatchDetailTTL <= 0 {
		return fmt.Errorf("%w: match detail ttl must be positive", ErrInvalidCacheConfigs)
	}

	return nil
}

func (r Riot) validate() error {
	if r.PlatformRegion == "" && r.PlatformBaseURL == "" {
		return fmt.Errorf("%w: platform region is empty", ErrInvalidRiotConfigs)
	}
	if r.RegionalRoute == "" && r.RegionalBaseURL == "" {
		return fmt.Errorf("%w: regional route is empty", ErrInvalidRiotConfigs)
	}

	for _, raw := range []string{r.PlatformBaseURL, r.RegionalBaseURL} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: base url %q must include scheme and host", ErrInvalidRiotConfigs, raw)
		}
	}

	if r.RequestTimeout <= 0 || r.BreakerTimeout <= 0 || r.BreakerMaxFailures == 0 {
		return fmt.Errorf("%w: client limits must be positive", ErrInvalidRiotConfigs)
	}

	return nil
}
