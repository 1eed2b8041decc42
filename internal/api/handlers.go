// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package api

import (
	"time"

	"github.com/tomtom215/tunepicker/internal/config"
	"github.com/tomtom215/tunepicker/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and readiness probes
//   - handlers_recommend.go: genres, settings and recommendations
type Handler struct {
	selector  *recommend.Selector
	settings  config.RecommendConfig
	startTime time.Time
}

// NewHandler creates a handler serving selections from selector with the
// count bounds and timeout in settings.
func NewHandler(selector *recommend.Selector, settings config.RecommendConfig) *Handler {
	return &Handler{
		selector:  selector,
		settings:  settings,
		startTime: time.Now(),
	}
}
