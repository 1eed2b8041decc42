// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package middleware

import (
	"net/http"

	"github.com/tomtom215/tunepicker/internal/logging"
)

// RequestIDHeader is read from requests and echoed on every response.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds IDs accepted from upstream proxies.
const maxRequestIDLength = 128

// RequestID propagates a well-formed inbound X-Request-ID or generates a new
// UUID and sets it on the response. The ID, a fresh correlation ID and an
// "api" component logger are stored in the context for logging.Ctx.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = logging.GenerateRequestID()
		}

		w.Header().Set(RequestIDHeader, id)

		ctx := logging.ContextWithRequestID(r.Context(), id)
		ctx = logging.ContextWithNewCorrelationID(ctx)
		ctx = logging.ContextWithLogger(ctx, logging.WithComponent("api"))

		next(w, r.WithContext(ctx))
	}
}

// validRequestID accepts non-empty printable ASCII up to maxRequestIDLength.
// Anything else is replaced so that log lines cannot be forged.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
