// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-riot-proxy/internal/config"
	"github.com/MKhiriev/go-riot-proxy/internal/logger"
	"github.com/MKhiriev/go-riot-proxy/internal/metrics"
	"github.com/MKhiriev/go-riot-proxy/internal/utils"
	"github.com/MKhiriev/go-riot-proxy/models"
	"github.com/go-resty/resty/v2"
	"github.com/valyala/fastjson"
)

// riotTokenHeader carries the API key on every upstream request.
const riotTokenHeader = "X-Riot-Token"

// Upstream endpoint names used in logs and metrics.
const (
	endpointAccountByRiotID   = "account-by-riot-id"
	endpointSummonerByPUUID   = "summoner-by-puuid"
	endpointLeagueEntries     = "league-entries-by-summoner"
	endpointMatchIDsByPUUID   = "match-ids-by-puuid"
	endpointMatchByID         = "match-by-id"
	endpointChampionRotations = "champion-rotations"
)

const (
	pathAccountByRiotID   = "/riot/account/v1/accounts/by-riot-id/{gameName}/{tagLine}"
	pathSummonerByPUUID   = "/lol/summoner/v4/summoners/by-puuid/{puuid}"
	pathLeagueEntries     = "/lol/league/v4/entries/by-summoner/{summonerId}"
	pathMatchIDsByPUUID   = "/lol/match/v5/matches/by-puuid/{puuid}/ids"
	pathMatchByID         = "/lol/match/v5/matches/{matchId}"
	pathChampionRotations = "/lol/platform/v3/champion-rotations"
)

type riotHTTPAdapter struct {
	// platform serves summoner, league and platform endpoints
	platform *utils.HTTPClient
	// regional serves account and match endpoints
	regional *utils.HTTPClient

	breaker circuitBreaker
}

// NewRiotHTTPAdapter constructs the resty implementation of [RiotAdapter]
// with one client per Riot routing host, both carrying the API key header.
func NewRiotHTTPAdapter(cfg config.Riot, log *logger.Logger) RiotAdapter {
	platform := utils.NewHTTPClient(cfg.PlatformURL(), cfg.RequestTimeout)
	regional := utils.NewHTTPClient(cfg.RegionalURL(), cfg.RequestTimeout)

	if cfg.APIKey != "" {
		platform.SetHeader(riotTokenHeader, cfg.APIKey)
		regional.SetHeader(riotTokenHeader, cfg.APIKey)
	}

	log.Info().
		Str("platform", cfg.PlatformURL()).
		Str("regional", cfg.RegionalURL()).
		Msg("riot adapter created")

	return &riotHTTPAdapter{
		platform: platform,
		regional: regional,
		breaker:  newCircuitBreaker("riot-api", cfg.BreakerTimeout, cfg.BreakerMaxFailures),
	}
}

func (a *riotHTTPAdapter) AccountByRiotID(ctx context.Context, riotID models.RiotID) (models.UpstreamResponse, error) {
	req := a.regional.R().
		SetPathParams(map[string]string{
			"gameName": riotID.GameName,
			"tagLine":  riotID.TagLine,
		})

	return a.get(ctx, endpointAccountByRiotID, req, pathAccountByRiotID)
}

func (a *riotHTTPAdapter) SummonerByPUUID(ctx context.Context, puuid string) (models.UpstreamResponse, error) {
	req := a.platform.R().SetPathParam("puuid", puuid)

	return a.get(ctx, endpointSummonerByPUUID, req, pathSummonerByPUUID)
}

func (a *riotHTTPAdapter) LeagueEntriesBySummonerID(ctx context.Context, summonerID string) (models.UpstreamResponse, error) {
	req := a.platform.R().SetPathParam("summonerId", summonerID)

	return a.get(ctx, endpointLeagueEntries, req, pathLeagueEntries)
}

func (a *riotHTTPAdapter) MatchIDsByPUUID(ctx context.Context, puuid string, window models.MatchWindow) (models.UpstreamResponse, error) {
	req := a.regional.R().
		SetPathParam("puuid", puuid).
		SetQueryParams(map[string]string{
			"start": strconv.Itoa(window.Start),
			"count": strconv.Itoa(window.Count),
		})

	return a.get(ctx, endpointMatchIDsByPUUID, req, pathMatchIDsByPUUID)
}

func (a *riotHTTPAdapter) MatchByID(ctx context.Context, matchID string) (models.UpstreamResponse, error) {
	req := a.regional.R().SetPathParam("matchId", matchID)

	return a.get(ctx, endpointMatchByID, req, pathMatchByID)
}

func (a *riotHTTPAdapter) ChampionRotations(ctx context.Context) (models.UpstreamResponse, error) {
	return a.get(ctx, endpointChampionRotations, a.platform.R(), pathChampionRotations)
}

// get performs req through the circuit breaker and returns the upstream
// status with its body, which must be valid JSON whatever the status is.
func (a *riotHTTPAdapter) get(ctx context.Context, endpoint string, req *resty.Request, path string) (models.UpstreamResponse, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	var resp *resty.Response
	err := a.breaker.Execute(func() error {
		var err error
		resp, err = req.SetContext(ctx).Get(path)
		return err
	})
	duration := time.Since(start)

	if err != nil {
		metrics.ObserveUpstream(endpoint, metrics.UpstreamError, duration)
		log.Err(err).Str("endpoint", endpoint).Dur("duration", duration).Msg("riot api call failed")
		return models.UpstreamResponse{}, mapTransportError(endpoint, err)
	}

	status := resp.StatusCode()
	metrics.ObserveUpstream(endpoint, strconv.Itoa(status), duration)
	log.Debug().
		Str("endpoint", endpoint).
		Int("status", status).
		Dur("duration", duration).
		Msg("riot api call finished")

	body := resp.Body()
	if err = fastjson.ValidateBytes(body); err != nil {
		return models.UpstreamResponse{}, fmt.Errorf("%w: %s answered %d: %w", ErrInvalidUpstreamBody, endpoint, status, err)
	}

	return models.UpstreamResponse{StatusCode: status, Body: body}, nil
}
