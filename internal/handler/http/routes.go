// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-riot-proxy/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// compressionLevel is the gzip level used for relayed payloads.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}))
	router.Use(h.withTraceID, withLogging, withMetrics, h.withRecover)
	router.Use(middleware.Compress(compressionLevel, contentTypeJSON))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.status)
	router.Get("/version", h.version)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	// routes relayed to the Riot API
	router.Group(func(r chi.Router) {
		r.Post("/import", h.importAccount)
		r.Post("/rank", h.rank)
		r.Post("/matches", h.matches)
		r.Post("/match-detail", h.matchDetail)
		r.Get("/test-rank", h.championRotations)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
