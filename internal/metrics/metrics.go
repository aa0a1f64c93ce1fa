// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics owns the Prometheus collectors of the proxy and the
// handler that exposes them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache lookup outcomes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// UpstreamError labels upstream calls that never produced an HTTP status.
const UpstreamError = "error"

var registry = prometheus.NewRegistry()

var (
	// seconds; Riot answers within tens of milliseconds, timeouts are ~10s
	latencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

	RequestsTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "riot_proxy_requests_total",
			Help: "Total number of inbound requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	RequestDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "riot_proxy_request_duration_seconds",
			Help:    "Inbound request latency by route",
			Buckets: latencyBuckets,
		},
		[]string{"route"},
	)

	UpstreamRequestsTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "riot_proxy_upstream_requests_total",
			Help: "Total number of Riot API calls by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "riot_proxy_upstream_duration_seconds",
			Help:    "Riot API call latency by endpoint",
			Buckets: latencyBuckets,
		},
		[]string{"endpoint"},
	)

	CacheLookupsTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "riot_proxy_cache_lookups_total",
			Help: "Response cache lookups by result",
		},
		[]string{"result"},
	)
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the collectors in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one handled inbound request.
func ObserveRequest(route, method string, status int, duration time.Duration) {
	RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// ObserveUpstream records one Riot API call. status is the HTTP status code
// or [UpstreamError].
func ObserveUpstream(endpoint, status string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(endpoint, status).Inc()
	UpstreamDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// ObserveCacheLookup records the result of one response cache lookup.
func ObserveCacheLookup(result string) {
	CacheLookupsTotal.WithLabelValues(result).Inc()
}
