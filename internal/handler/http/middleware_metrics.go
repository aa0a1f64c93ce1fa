// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-riot-proxy/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that matched no registered route, so that
// probes of random paths do not create new series.
const unmatchedRoute = "unmatched"

// withMetrics records request count and latency labelled by the chi route
// pattern.
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		metrics.ObserveRequest(route, r.Method, mw.statusOrOK(), time.Since(start))
	})
}
