// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-riot-proxy/internal/adapter"
	"github.com/MKhiriev/go-riot-proxy/internal/app"
	"github.com/MKhiriev/go-riot-proxy/internal/logger"
	"github.com/MKhiriev/go-riot-proxy/models"
	"github.com/valyala/fastjson"
)

type proxyService struct {
	riot adapter.RiotAdapter

	logger *logger.Logger
}

func NewProxyService(riot adapter.RiotAdapter, logger *logger.Logger) ProxyService {
	return &proxyService{
		riot:   riot,
		logger: logger,
	}
}

// log prefers the request-scoped logger and falls back to the service one.
func (p *proxyService) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, p.logger)
}

func (p *proxyService) Status(ctx context.Context) models.MessageResponse {
	return models.MessageResponse{Message: app.MsgRunning}
}

func (p *proxyService) ImportAccount(ctx context.Context, req models.ImportRequest) (models.UpstreamResponse, error) {
	riotID, err := models.ParseRiotID(req.RiotID)
	if err != nil {
		return models.UpstreamResponse{}, fmt.Errorf("%w: %w", ErrInvalidRiotIDFormat, err)
	}

	p.log(ctx).Debug().Str("riot_id", riotID.String()).Msg("resolving account")

	return p.riot.AccountByRiotID(ctx, riotID)
}

// Rank needs two calls: the league endpoint is keyed by the encrypted
// summoner id, which only the summoner payload carries.
func (p *proxyService) Rank(ctx context.Context, req models.PUUIDRequest) (models.UpstreamResponse, error) {
	summoner, err := p.riot.SummonerByPUUID(ctx, req.PUUID)
	if err != nil {
		return models.UpstreamResponse{}, fmt.Errorf("error fetching summoner: %w", err)
	}
	if !summoner.OK() {
		return summoner, nil
	}

	summonerID := fastjson.GetString(summoner.Body, "id")
	if summonerID == "" {
		return models.UpstreamResponse{}, ErrSummonerIDMissing
	}

	p.log(ctx).Debug().Str("summoner_id", summonerID).Msg("fetching league entries")

	entries, err := p.riot.LeagueEntriesBySummonerID(ctx, summonerID)
	if err != nil {
		return models.UpstreamResponse{}, fmt.Errorf("error fetching league entries: %w", err)
	}

	return entries, nil
}

func (p *proxyService) Matches(ctx context.Context, req models.PUUIDRequest) (models.UpstreamResponse, error) {
	return p.riot.MatchIDsByPUUID(ctx, req.PUUID, models.DefaultMatchWindow)
}

func (p *proxyService) MatchDetail(ctx context.Context, req models.MatchDetailRequest) (models.UpstreamResponse, error) {
	return p.riot.MatchByID(ctx, req.MatchID)
}

func (p *proxyService) ChampionRotations(ctx context.Context) (models.UpstreamResponse, error) {
	return p.riot.ChampionRotations(ctx)
}
