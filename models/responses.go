// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// MessageResponse is returned by the liveness route.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error produced by the proxy itself.
// Errors produced by the Riot API are relayed unchanged instead.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse exposes build metadata of the running binary.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// UpstreamResponse is an opaque reply received from the Riot API.
//
// Body is guaranteed to be valid JSON; it is never decoded into a typed
// structure and is relayed to the caller byte for byte.
type UpstreamResponse struct {
	// StatusCode is the HTTP status returned by the Riot API.
	StatusCode int

	// Body is the raw JSON payload returned by the Riot API.
	Body []byte
}

// OK reports whether the upstream answered with a 2xx status.
func (u UpstreamResponse) OK() bool {
	return u.StatusCode >= http.StatusOK && u.StatusCode < http.StatusMultipleChoices
}

// RelayStatus returns the status that should be sent to the caller:
// 200 for any successful upstream reply, the upstream status otherwise.
func (u UpstreamResponse) RelayStatus() int {
	if u.OK() {
		return http.StatusOK
	}
	return u.StatusCode
}
