// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-riot-proxy/internal/config"
	"github.com/MKhiriev/go-riot-proxy/internal/logger"
	"github.com/MKhiriev/go-riot-proxy/models"
	"github.com/stretchr/testify/assert"
)

func TestAppInfoService_Version_FromBuildInfo(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("1.2.0", "2026-10-01", "abc123")

	svc := NewAppInfoService(buildInfo, config.App{}, logger.Nop())

	assert.Equal(t, models.VersionResponse{Version: "1.2.0", Date: "2026-10-01", Commit: "abc123"}, svc.Version(context.Background()))
}

func TestAppInfoService_Version_ConfigOverridesBuildVersion(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("", "", "")

	svc := NewAppInfoService(buildInfo, config.App{Version: "2.0.0-rc1"}, logger.Nop())

	got := svc.Version(context.Background())
	assert.Equal(t, "2.0.0-rc1", got.Version)
	assert.Equal(t, "N/A", got.Date)
	assert.Equal(t, "N/A", got.Commit)
}

func TestNewServices_WiresValidation(t *testing.T) {
	services := NewServices(nil, models.NewAppBuildInfo("1", "", ""), config.StructuredConfig{}, logger.Nop())

	_, err := services.ProxyService.Rank(context.Background(), models.PUUIDRequest{})

	assert.ErrorIs(t, err, ErrMissingPUUID)
	assert.Equal(t, "1", services.AppInfoService.Version(context.Background()).Version)
}
