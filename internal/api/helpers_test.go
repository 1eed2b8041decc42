// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tunepicker/internal/catalog"
	"github.com/tomtom215/tunepicker/internal/config"
	"github.com/tomtom215/tunepicker/internal/recommend"
)

// envelope mirrors APIResponse with a typed data field.
type envelope[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   *APIError `json:"error"`
	Meta    *APIMeta  `json:"meta"`
}

func testRecommendConfig() config.RecommendConfig {
	return config.RecommendConfig{
		DefaultCount:   3,
		MinCount:       1,
		MaxCount:       5,
		RequestTimeout: 5 * time.Second,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Recommend: testRecommendConfig(),
	}
}

func newTestHandler(t *testing.T, c *catalog.Catalog) *Handler {
	t.Helper()
	return NewHandler(recommend.NewSelector(c, zerolog.Nop()), testRecommendConfig())
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func get(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody(resp *http.Response, v interface{}) error {
	return json.NewDecoder(resp.Body).Decode(v)
}
