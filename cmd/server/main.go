// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-riot-proxy/internal/adapter"
	"github.com/MKhiriev/go-riot-proxy/internal/config"
	"github.com/MKhiriev/go-riot-proxy/internal/handler"
	"github.com/MKhiriev/go-riot-proxy/internal/logger"
	"github.com/MKhiriev/go-riot-proxy/internal/server"
	"github.com/MKhiriev/go-riot-proxy/internal/service"
	"github.com/MKhiriev/go-riot-proxy/internal/store"
	"github.com/MKhiriev/go-riot-proxy/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("riot-proxy")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.Riot.APIKey == "" {
		log.Warn().Msg("RIOT_API_KEY is not set: every Riot API call will be rejected upstream")
	} else {
		log.Info().Bool("present", true).Int("length", len(cfg.Riot.APIKey)).Msg("riot api key loaded")
	}
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	riot := adapter.NewRiotHTTPAdapter(cfg.Riot, log)
	if storages.ResponseCache != nil {
		riot = adapter.NewCachingRiotAdapter(riot, storages.ResponseCache, cfg.Cache.MatchDetailTTL)
	}

	services := service.NewServices(riot, buildInfo, *cfg, log)
	handlers := handler.NewHandlers(services, cfg.Server, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
