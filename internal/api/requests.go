// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/tunepicker/internal/config"
	"github.com/tomtom215/tunepicker/internal/recommend"
	"github.com/tomtom215/tunepicker/internal/validation"
)

// paramError is a rejected query parameter. code is ErrCodeBadRequest for
// unparseable input and ErrCodeValidationFailed for out-of-range values.
type paramError struct {
	code    string
	message string
	details interface{}
}

// parseRecommendationParams reads genre and count from the query string.
// A missing or empty genre selects every genre and a missing count uses the
// configured default. The genre is passed through untouched and never
// rejected: matching is exact and case-sensitive, and an unknown label
// simply selects nothing.
func parseRecommendationParams(r *http.Request, settings config.RecommendConfig) (recommend.Request, *paramError) {
	q := r.URL.Query()

	req := recommend.Request{
		Genre: q.Get("genre"),
		Count: settings.DefaultCount,
	}
	if req.Genre == "" {
		req.Genre = recommend.AllGenres
	}

	if raw := strings.TrimSpace(q.Get("count")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, &paramError{
				code:    ErrCodeBadRequest,
				message: fmt.Sprintf("count must be an integer, got %q", raw),
			}
		}
		req.Count = n
	}

	tag := fmt.Sprintf("min=%d,max=%d", settings.MinCount, settings.MaxCount)
	if verr := validation.ValidateVar("count", req.Count, tag); verr != nil {
		apiErr := verr.ToAPIError()
		return req, &paramError{code: ErrCodeValidationFailed, message: apiErr.Message, details: apiErr.Details}
	}

	return req, nil
}
