// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/tunepicker/internal/catalog"
)

func TestHealthLive(t *testing.T) {
	h := newTestHandler(t, catalog.Default())

	rec := get(h.HealthLive, "/api/v1/health/live")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decode[LiveStatus](t, rec)
	if !env.Data.Alive || env.Data.Uptime < 0 {
		t.Errorf("live = %+v", env.Data)
	}
}

func TestHealthReady(t *testing.T) {
	empty, err := catalog.New(nil)
	if err != nil {
		t.Fatalf("catalog.New(nil) error = %v", err)
	}

	tests := []struct {
		name       string
		catalog    *catalog.Catalog
		wantStatus int
		wantSongs  int
	}{
		{"default catalog", catalog.Default(), http.StatusOK, 12},
		{"empty catalog", empty, http.StatusServiceUnavailable, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, tt.catalog)
			rec := get(h.HealthReady, "/api/v1/health/ready")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			env := decode[ReadyStatus](t, rec)
			if !env.Data.Ready || env.Data.Songs != tt.wantSongs || env.Data.Genres != 4 {
				t.Errorf("ready = %+v", env.Data)
			}
		})
	}
}
