// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses command-line configuration flags from args.
//
// Flags:
//
//	-host             interface to bind
//	-p                port to listen on
//	-request-timeout  inbound request timeout (e.g. "30s")
//	-platform         Riot platform region (e.g. "euw1")
//	-region           Riot regional route (e.g. "europe")
//	-redis            Redis address enabling the response cache
//	-log-level        minimum log level
//	-c/-config        json file path with configs
//
// The Riot API key has no flag so it never appears in process listings.
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		host           string
		port           int
		requestTimeout time.Duration
		platform       string
		region         string
		redisAddress   string
		logLevel       string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("riot-proxy", flag.ContinueOnError)
	fs.StringVar(&host, "host", "", "Interface to bind")
	fs.IntVar(&port, "p", 0, "Port to listen on")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&platform, "platform", "", "Riot platform region (e.g., euw1)")
	fs.StringVar(&region, "region", "", "Riot regional route (e.g., europe)")
	fs.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			Host:           host,
			Port:           port,
			RequestTimeout: requestTimeout,
		},
		Riot: Riot{
			PlatformRegion: platform,
			RegionalRoute:  region,
		},
		Cache: Cache{
			RedisAddress: redisAddress,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
