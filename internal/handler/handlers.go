// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-riot-proxy/internal/config"
	"github.com/MKhiriev/go-riot-proxy/internal/handler/http"
	"github.com/MKhiriev/go-riot-proxy/internal/logger"
	"github.com/MKhiriev/go-riot-proxy/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}
}
