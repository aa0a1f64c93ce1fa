// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the Riot Games public API.
//
// The primary abstraction is [RiotAdapter], which decouples the service layer
// from the upstream protocol. Every method returns the upstream status and
// raw JSON body, whatever the status is; only failures that produced no
// usable HTTP reply are returned as errors (see errors.go), so callers can
// relay Riot's own error payloads unchanged.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-riot-proxy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/riot_adapter_mock.go -package=mock

// RiotAdapter issues one call to one Riot API endpoint per method. The API
// key is injected by the implementation.
type RiotAdapter interface {
	// AccountByRiotID resolves a Riot ID on the regional host
	// (account-v1 by-riot-id).
	AccountByRiotID(ctx context.Context, riotID models.RiotID) (models.UpstreamResponse, error)

	// SummonerByPUUID fetches the summoner on the platform host
	// (summoner-v4 by-puuid).
	SummonerByPUUID(ctx context.Context, puuid string) (models.UpstreamResponse, error)

	// LeagueEntriesBySummonerID fetches ranked entries on the platform host
	// (league-v4 entries by-summoner).
	LeagueEntriesBySummonerID(ctx context.Context, summonerID string) (models.UpstreamResponse, error)

	// MatchIDsByPUUID lists match ids inside window on the regional host
	// (match-v5 ids by-puuid).
	MatchIDsByPUUID(ctx context.Context, puuid string, window models.MatchWindow) (models.UpstreamResponse, error)

	// MatchByID fetches one match on the regional host (match-v5).
	MatchByID(ctx context.Context, matchID string) (models.UpstreamResponse, error)

	// ChampionRotations fetches the free champion rotation on the platform
	// host. It is the cheapest platform call and serves as an access probe.
	ChampionRotations(ctx context.Context) (models.UpstreamResponse, error)
}
