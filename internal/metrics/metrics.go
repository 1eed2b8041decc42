// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry through promauto, so
// importing the package is enough to expose them.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Selection outcomes used as the "outcome" label.
const (
	OutcomeOK           = "ok"
	OutcomeEmpty        = "empty"
	OutcomeInvalidCount = "invalid_count"
)

// GenreOther replaces genre labels that are not in the catalog so arbitrary
// user input cannot create unbounded label values.
const GenreOther = "other"

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Selection Metrics
	SelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tunepicker_selections_total",
			Help: "Total number of song selections by genre filter and outcome",
		},
		[]string{"genre", "outcome"},
	)

	SelectionSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tunepicker_selection_size",
			Help:    "Number of songs returned per successful selection",
			Buckets: []float64{1, 2, 3, 4, 5, 10, 25},
		},
	)

	CatalogSongs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tunepicker_catalog_songs",
			Help: "Number of songs in the loaded catalog",
		},
	)

	CatalogGenres = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tunepicker_catalog_genres",
			Help: "Number of distinct genres in the loaded catalog",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordSelection records one selection. size is only observed for OutcomeOK.
func RecordSelection(genre, outcome string, size int) {
	SelectionsTotal.WithLabelValues(genre, outcome).Inc()
	if outcome == OutcomeOK {
		SelectionSize.Observe(float64(size))
	}
}

// SetCatalogStats publishes the size of the loaded catalog.
func SetCatalogStats(songs, genres int) {
	CatalogSongs.Set(float64(songs))
	CatalogGenres.Set(float64(genres))
}
