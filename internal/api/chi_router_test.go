// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tunepicker/internal/catalog"
	"github.com/tomtom215/tunepicker/internal/metrics"
	"github.com/tomtom215/tunepicker/internal/middleware"
	"github.com/tomtom215/tunepicker/internal/recommend"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	selector := recommend.NewSelector(catalog.Default(), zerolog.Nop())
	srv := httptest.NewServer(NewRouter(testConfig(), selector).SetupChi())
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, url string, header http.Header) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s error = %v", method, url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestRouter_Routes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/v1/health/live", http.StatusOK},
		{http.MethodGet, "/api/v1/health/ready", http.StatusOK},
		{http.MethodGet, "/api/v1/genres", http.StatusOK},
		{http.MethodGet, "/api/v1/settings", http.StatusOK},
		{http.MethodGet, "/api/v1/recommendations?genre=Pop&count=2", http.StatusOK},
		{http.MethodGet, "/api/v1/recommendations?count=nine", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
		{http.MethodPost, "/api/v1/recommendations", http.StatusMethodNotAllowed},
		{http.MethodGet, "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp := doRequest(t, tt.method, srv.URL+tt.path, nil)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestRouter_ErrorEnvelopes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method   string
		path     string
		wantCode string
	}{
		{http.MethodGet, "/nope", ErrCodeNotFound},
		{http.MethodDelete, "/api/v1/genres", ErrCodeMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			resp := doRequest(t, tt.method, srv.URL+tt.path, nil)

			var env envelope[interface{}]
			if err := decodeBody(resp, &env); err != nil {
				t.Fatalf("decode error = %v", err)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want %s", env.Error, tt.wantCode)
			}
			if env.Error != nil && env.Error.RequestID == "" {
				t.Error("error envelope should carry the request ID")
			}
		})
	}
}

func TestRouter_RequestIDPropagation(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/genres",
		http.Header{middleware.RequestIDHeader: []string{"client-supplied-id"}})

	if got := resp.Header.Get(middleware.RequestIDHeader); got != "client-supplied-id" {
		t.Errorf("response %s = %q, want client-supplied-id", middleware.RequestIDHeader, got)
	}

	var env envelope[GenresResponse]
	if err := decodeBody(resp, &env); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if env.Meta == nil || env.Meta.RequestID != "client-supplied-id" {
		t.Errorf("meta = %+v, want request_id client-supplied-id", env.Meta)
	}
}

func TestRouter_SecurityHeadersAndCORS(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/settings",
		http.Header{"Origin": []string{"https://app.example"}})

	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Error("API routes should carry security headers")
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestRouter_RecordsRouteMetrics(t *testing.T) {
	srv := newTestServer(t)

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/settings", "200")
	before := testutil.ToFloat64(counter)

	doRequest(t, http.MethodGet, srv.URL+"/api/v1/settings", nil)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", got)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	doRequest(t, http.MethodGet, srv.URL+"/api/v1/recommendations?genre=Rock&count=1", nil)
	resp := doRequest(t, http.MethodGet, srv.URL+"/metrics", nil)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body error = %v", err)
	}
	for _, name := range []string{"tunepicker_selections_total", "tunepicker_catalog_songs", "api_requests_total"} {
		if !strings.Contains(string(body), name) {
			t.Errorf("/metrics output missing %s", name)
		}
	}
}
