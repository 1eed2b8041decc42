// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/tunepicker/internal/logging"
)

func captureIDs(t *testing.T, header string) (resp, ctxID, correlation string) {
	t.Helper()

	h := RequestID(func(w http.ResponseWriter, r *http.Request) {
		ctxID = logging.RequestIDFromContext(r.Context())
		correlation = logging.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec := httptest.NewRecorder()
	h(rec, req)

	return rec.Header().Get(RequestIDHeader), ctxID, correlation
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		header       string
		wantPreserve bool
	}{
		{"generates when absent", "", false},
		{"preserves upstream id", "edge-7f3a-0001", true},
		{"preserves upstream uuid", "0b7e3c1a-2f4d-4a8e-9c51-3d6f0a1b2c3d", true},
		{"replaces id with spaces", "bad id", false},
		{"replaces id with newline", "abc\ninjected", false},
		{"replaces oversized id", strings.Repeat("a", maxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, ctxID, correlation := captureIDs(t, tt.header)

			if resp == "" {
				t.Fatal("missing X-Request-ID on response")
			}
			if resp != ctxID {
				t.Errorf("response id %q != context id %q", resp, ctxID)
			}
			if correlation == "" {
				t.Error("expected a correlation id in context")
			}

			if tt.wantPreserve {
				if resp != tt.header {
					t.Errorf("id = %q, want %q", resp, tt.header)
				}
				return
			}
			if _, err := uuid.Parse(resp); err != nil {
				t.Errorf("generated id %q is not a UUID: %v", resp, err)
			}
		})
	}
}

func TestRequestID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id, _, _ := captureIDs(t, "")
		if seen[id] {
			t.Fatalf("duplicate request id %s", id)
		}
		seen[id] = true
	}
}

func TestRequestID_ContextLogger(t *testing.T) {
	prev := logging.Logger()
	t.Cleanup(func() { logging.SetLogger(prev) })

	var buf bytes.Buffer
	logging.SetLogger(logging.NewTestLogger(&buf))

	h := RequestID(func(w http.ResponseWriter, r *http.Request) {
		logging.Ctx(r.Context()).Info().Msg("handled")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "trace-me")
	h(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{`"component":"api"`, `"request_id":"trace-me"`, `"correlation_id":`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func BenchmarkRequestID(b *testing.B) {
	h := RequestID(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h(httptest.NewRecorder(), req)
	}
}
