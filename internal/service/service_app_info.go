// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-riot-proxy/internal/config"
	"github.com/MKhiriev/go-riot-proxy/internal/logger"
	"github.com/MKhiriev/go-riot-proxy/models"
)

type appInfoService struct {
	version models.VersionResponse
}

// NewAppInfoService reports buildInfo, with the version replaced by
// cfg.Version when the deployment sets one.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.App, logger *logger.Logger) AppInfoService {
	version := buildInfo.Response()
	if cfg.Version != "" {
		version.Version = cfg.Version
	}

	logger.Info().
		Str("version", version.Version).
		Str("commit", version.Commit).
		Msg("app info service created")

	return &appInfoService{
		version: version,
	}
}

func (s *appInfoService) Version(ctx context.Context) models.VersionResponse {
	return s.version
}
