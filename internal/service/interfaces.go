// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-riot-proxy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ProxyService resolves every public route of the proxy into Riot API calls.
//
// Methods return the upstream reply for any HTTP status the Riot API answers
// with; an error means the reply could not be obtained or the input was
// rejected before any call was made.
type ProxyService interface {
	// Status reports that the proxy is running. It never calls upstream.
	Status(ctx context.Context) models.MessageResponse

	// ImportAccount resolves a "gameName#tagLine" Riot ID to an account.
	ImportAccount(ctx context.Context, req models.ImportRequest) (models.UpstreamResponse, error)

	// Rank looks up the summoner of a PUUID and returns its ranked entries.
	Rank(ctx context.Context, req models.PUUIDRequest) (models.UpstreamResponse, error)

	// Matches lists the ten most recent match ids of a PUUID.
	Matches(ctx context.Context, req models.PUUIDRequest) (models.UpstreamResponse, error)

	// MatchDetail returns the full payload of a single match.
	MatchDetail(ctx context.Context, req models.MatchDetailRequest) (models.UpstreamResponse, error)

	// ChampionRotations probes platform API access with the free rotation.
	ChampionRotations(ctx context.Context) (models.UpstreamResponse, error)
}

// AppInfoService exposes metadata of the running binary.
type AppInfoService interface {
	Version(ctx context.Context) models.VersionResponse
}
