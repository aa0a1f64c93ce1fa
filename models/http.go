// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ImportRequest is the body of POST /import. RiotID is the player-facing
// "gameName#tagLine" identifier that is resolved to an account.
type ImportRequest struct {
	RiotID string `json:"riotId"`
}

// PUUIDRequest is the body of POST /rank and POST /matches.
type PUUIDRequest struct {
	PUUID string `json:"puuid"`
}

// MatchDetailRequest is the body of POST /match-detail.
type MatchDetailRequest struct {
	MatchID string `json:"matchId"`
}
