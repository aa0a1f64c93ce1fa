// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
// The Riot API key is intentionally absent: secrets come from the environment.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		Host            string   `json:"host"`
		Port            int      `json:"port"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AllowedOrigins  []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Riot struct {
		PlatformRegion     string   `json:"platform_region"`
		RegionalRoute      string   `json:"regional_route"`
		PlatformBaseURL    string   `json:"platform_base_url"`
		RegionalBaseURL    string   `json:"regional_base_url"`
		RequestTimeout     Duration `json:"request_timeout"`
		BreakerTimeout     Duration `json:"breaker_timeout"`
		BreakerMaxFailures uint32   `json:"breaker_max_failures"`
	} `json:"riot,omitempty"`

	Cache struct {
		RedisAddress   string   `json:"redis_address"`
		RedisDB        int      `json:"redis_db"`
		MatchDetailTTL Duration `json:"match_detail_ttl"`
	} `json:"cache,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			Host:            jsonCfg.Server.Host,
			Port:            jsonCfg.Server.Port,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			AllowedOrigins:  jsonCfg.Server.AllowedOrigins,
		},
		Riot: Riot{
			PlatformRegion:     jsonCfg.Riot.PlatformRegion,
			RegionalRoute:      jsonCfg.Riot.RegionalRoute,
			PlatformBaseURL:    jsonCfg.Riot.PlatformBaseURL,
			RegionalBaseURL:    jsonCfg.Riot.RegionalBaseURL,
			RequestTimeout:     time.Duration(jsonCfg.Riot.RequestTimeout),
			BreakerTimeout:     time.Duration(jsonCfg.Riot.BreakerTimeout),
			BreakerMaxFailures: jsonCfg.Riot.BreakerMaxFailures,
		},
		Cache: Cache{
			RedisAddress:   jsonCfg.Cache.RedisAddress,
			RedisDB:        jsonCfg.Cache.RedisDB,
			MatchDetailTTL: time.Duration(jsonCfg.Cache.MatchDetailTTL),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
