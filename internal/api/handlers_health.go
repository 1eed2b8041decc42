// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package api

import (
	"net/http"
	"time"
)

// LiveStatus is the liveness payload.
type LiveStatus struct {
	Alive  bool    `json:"alive"`
	Uptime float64 `json:"uptime"`
}

// ReadyStatus is the readiness payload.
type ReadyStatus struct {
	Ready  bool `json:"ready"`
	Songs  int  `json:"songs"`
	Genres int  `json:"genres"`
}

// HealthLive handles liveness probe requests.
// It returns 200 while the process can serve HTTP at all.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(LiveStatus{
		Alive:  true,
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// It returns 503 until the catalog holds at least one song.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	cat := h.selector.Catalog()
	if cat.Len() == 0 {
		rw.ServiceUnavailable("catalog is empty")
		return
	}

	rw.Success(ReadyStatus{
		Ready:  true,
		Songs:  cat.Len(),
		Genres: len(cat.Genres()),
	})
}
