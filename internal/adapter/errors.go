// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned when an upstream call produced no relayable reply.
var (
	// ErrUpstreamUnavailable wraps transport failures: DNS, connection,
	// TLS, or a reply that could not be read.
	ErrUpstreamUnavailable = errors.New("riot api unavailable")

	// ErrUpstreamTimeout is returned when the call exceeded its deadline.
	ErrUpstreamTimeout = errors.New("riot api timeout")

	// ErrCircuitOpen is returned without calling upstream while the circuit
	// breaker is open after repeated transport failures.
	ErrCircuitOpen = errors.New("riot api circuit open")

	// ErrInvalidUpstreamBody is returned when the reply body is not JSON.
	ErrInvalidUpstreamBody = errors.New("riot api returned invalid json")
)
