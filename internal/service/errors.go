// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Sentinel errors returned by the proxy services. Callers should use
// [errors.Is]; the HTTP layer maps each one to a status and message.
var (
	// ErrMissingRiotID is returned by ImportAccount when riotId is empty.
	ErrMissingRiotID = errors.New("missing riot id")

	// ErrInvalidRiotIDFormat is returned when riotId does not split into a
	// non-empty game name and tag line on '#'.
	ErrInvalidRiotIDFormat = errors.New("invalid riot id format")

	// ErrMissingPUUID is returned by Rank and Matches when puuid is empty.
	ErrMissingPUUID = errors.New("missing puuid")

	// ErrMissingMatchID is returned by MatchDetail when matchId is empty.
	ErrMissingMatchID = errors.New("missing match id")

	// ErrSummonerIDMissing is returned by Rank when a successful summoner
	// payload carries no "id" to look up league entries with.
	ErrSummonerIDMissing = errors.New("summoner payload has no id")
)
