// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-riot-proxy/internal/adapter"
	"github.com/MKhiriev/go-riot-proxy/internal/config"
	"github.com/MKhiriev/go-riot-proxy/internal/logger"
	"github.com/MKhiriev/go-riot-proxy/models"
)

type Services struct {
	ProxyService   ProxyService
	AppInfoService AppInfoService
}

func NewServices(riot adapter.RiotAdapter, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	proxy := NewProxyValidationService().Wrap(NewProxyService(riot, logger))

	return &Services{
		ProxyService:   proxy,
		AppInfoService: NewAppInfoService(buildInfo, cfg.App, logger),
	}
}
