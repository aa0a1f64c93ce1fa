// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// riotIDSeparator splits the game name from the tag line.
const riotIDSeparator = "#"

// ErrMalformedRiotID is returned by ParseRiotID when either half of the
// identifier is missing.
var ErrMalformedRiotID = errors.New("riot id must be in form gameName#tagLine")

// RiotID is the player-facing identifier of a Riot account.
type RiotID struct {
	GameName string
	TagLine  string
}

// ParseRiotID splits raw on '#'. Only the first two parts are considered,
// so "name#tag#extra" resolves to {name, tag}.
func ParseRiotID(raw string) (RiotID, error) {
	parts := strings.Split(raw, riotIDSeparator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return RiotID{}, ErrMalformedRiotID
	}

	return RiotID{GameName: parts[0], TagLine: parts[1]}, nil
}

// String returns the identifier in its canonical "gameName#tagLine" form.
func (r RiotID) String() string {
	return r.GameName + riotIDSeparator + r.TagLine
}

// MatchWindow bounds a match-id listing.
type MatchWindow struct {
	Start int
	Count int
}

// DefaultMatchWindow is the fixed window used by POST /matches: the ten
// most recent matches.
var DefaultMatchWindow = MatchWindow{Start: 0, Count: 10}
