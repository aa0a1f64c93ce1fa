// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-riot-proxy/models"
)

// ProxyServiceWrapper defines middleware composition for ProxyService.
// Implementations wrap an existing ProxyService to add behavior such as
// validating.
type ProxyServiceWrapper interface {
	Wrap(ProxyService) ProxyService // returns a decorated ProxyService applying additional behavior
}

// ProxyValidationService rejects requests whose required fields are missing
// before any upstream call is made.
type ProxyValidationService struct {
	inner ProxyService
}

func NewProxyValidationService() ProxyServiceWrapper {
	return &ProxyValidationService{}
}

func (v *ProxyValidationService) Status(ctx context.Context) models.MessageResponse {
	return v.inner.Status(ctx)
}

func (v *ProxyValidationService) ImportAccount(ctx context.Context, req models.ImportRequest) (models.UpstreamResponse, error) {
	if req.RiotID == "" {
		return models.UpstreamResponse{}, ErrMissingRiotID
	}
	if _, err := models.ParseRiotID(req.RiotID); err != nil {
		return models.UpstreamResponse{}, ErrInvalidRiotIDFormat
	}

	return v.inner.ImportAccount(ctx, req)
}

func (v *ProxyValidationService) Rank(ctx context.Context, req models.PUUIDRequest) (models.UpstreamResponse, error) {
	if req.PUUID == "" {
		return models.UpstreamResponse{}, ErrMissingPUUID
	}

	return v.inner.Rank(ctx, req)
}

func (v *ProxyValidationService) Matches(ctx context.Context, req models.PUUIDRequest) (models.UpstreamResponse, error) {
	if req.PUUID == "" {
		return models.UpstreamResponse{}, ErrMissingPUUID
	}

	return v.inner.Matches(ctx, req)
}

func (v *ProxyValidationService) MatchDetail(ctx context.Context, req models.MatchDetailRequest) (models.UpstreamResponse, error) {
	if req.MatchID == "" {
		return models.UpstreamResponse{}, ErrMissingMatchID
	}

	return v.inner.MatchDetail(ctx, req)
}

func (v *ProxyValidationService) ChampionRotations(ctx context.Context) (models.UpstreamResponse, error) {
	return v.inner.ChampionRotations(ctx)
}

func (v *ProxyValidationService) Wrap(wrapped ProxyService) ProxyService {
	v.inner = wrapped
	return v
}
