// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// proxy's handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. The browser client matches on some of them, so the
// wording must stay stable.
package app

const (
	// MsgRunning is the liveness message of GET /.
	MsgRunning = "Riot Proxy API is running 🚀"

	// MsgMissingRiotID is returned by POST /import without a riotId.
	MsgMissingRiotID = "Missing riotId"

	// MsgInvalidRiotIDFormat is returned when riotId has no non-empty game
	// name and tag line around '#'.
	MsgInvalidRiotIDFormat = "Invalid Riot ID format. Use gameName#tagLine"

	// MsgMissingPUUID is returned by POST /rank and POST /matches without a
	// puuid.
	MsgMissingPUUID = "Missing puuid"

	// MsgMissingMatchID is returned by POST /match-detail without a matchId.
	MsgMissingMatchID = "Missing matchId"

	// MsgInvalidJSON is returned when the request body is not a JSON object.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgServerError hides every upstream or internal failure.
	MsgServerError = "Server error"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found"

	// MsgMethodNotAllowed is returned for known routes called with the wrong
	// method.
	MsgMethodNotAllowed = "Method not allowed"
)
