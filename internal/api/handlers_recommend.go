// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/tunepicker/internal/logging"
	"github.com/tomtom215/tunepicker/internal/recommend"
)

// Display copy returned by /settings so clients render the same wording.
const (
	AppTitle       = "AI-Powered Music Recommender Prototype"
	AppDescription = "This app simulates a music recommendation engine based on user preference and song popularity. " +
		"Select a genre and the number of songs you want to discover!"
	SidebarHeader = "Customize Your Search"
	GenrePrompt   = "1. Select your preferred genre:"
	CountPrompt   = "2. How many top songs do you want to see?"
	ResultsHeader = "Recommendation Results"
	Disclaimer    = "Disclaimer: This is a proof-of-concept application. A real AI music recommender would use " +
		"complex collaborative filtering models trained on millions of user interactions."

	SuccessMessage = "Recommendations generated successfully! Enjoy your new playlist."
)

// noMatchPlaceholder is the single row shown when a genre has no songs.
const noMatchPlaceholder = "N/A"

// GenresResponse lists the genre filter options.
type GenresResponse struct {
	Options []string `json:"options"`
	Default string   `json:"default"`
}

// CountBounds describes the accepted count range.
type CountBounds struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// SettingsResponse carries count bounds and display copy.
type SettingsResponse struct {
	Count         CountBounds `json:"count"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	SidebarHeader string      `json:"sidebar_header"`
	GenrePrompt   string      `json:"genre_prompt"`
	CountPrompt   string      `json:"count_prompt"`
	ResultsHeader string      `json:"results_header"`
	Disclaimer    string      `json:"disclaimer"`
}

// RecommendationsResponse is the result of one selection. When NoMatches is
// set, Items holds a single N/A row and Warning explains why.
type RecommendationsResponse struct {
	Genre       string                     `json:"genre"`
	Count       int                        `json:"count"`
	Heading     string                     `json:"heading"`
	ButtonLabel string                     `json:"button_label"`
	Items       []recommend.Recommendation `json:"items"`
	NoMatches   bool                       `json:"no_matches"`
	Message     string                     `json:"message,omitempty"`
	Warning     string                     `json:"warning,omitempty"`
	Suggestion  string                     `json:"suggestion,omitempty"`
}

// Genres returns the sentinel followed by the catalog's genres in sorted order.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	genres := h.selector.Catalog().Genres()

	options := make([]string, 0, len(genres)+1)
	options = append(options, recommend.AllGenres)
	options = append(options, genres...)

	NewResponseWriter(w, r).Success(GenresResponse{
		Options: options,
		Default: recommend.AllGenres,
	})
}

// Settings returns the configured count bounds and display copy.
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(SettingsResponse{
		Count: CountBounds{
			Min:     h.settings.MinCount,
			Max:     h.settings.MaxCount,
			Default: h.settings.DefaultCount,
		},
		Title:         AppTitle,
		Description:   AppDescription,
		SidebarHeader: SidebarHeader,
		GenrePrompt:   GenrePrompt,
		CountPrompt:   CountPrompt,
		ResultsHeader: ResultsHeader,
		Disclaimer:    Disclaimer,
	})
}

// Recommendations runs a selection for ?genre=&count=.
//
// An unknown genre is not an error: the response is 200 with no_matches set,
// a placeholder row, a warning and, when one is close enough, a suggested
// genre spelling.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, perr := parseRecommendationParams(r, h.settings)
	if perr != nil {
		if perr.code == ErrCodeValidationFailed {
			rw.ValidationError(perr.message, perr.details)
			return
		}
		rw.BadRequest(perr.message)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.settings.RequestTimeout)
	defer cancel()

	logger := logging.Ctx(ctx)
	logger.Debug().
		Str("genre", req.Genre).
		Int("count", req.Count).
		Msgf("Searching through the catalog for top %d %s songs", req.Count, req.Genre)

	recs, err := h.selector.Select(ctx, req)

	resp := RecommendationsResponse{
		Genre:       req.Genre,
		Count:       req.Count,
		Heading:     fmt.Sprintf("Top Picks in %s:", req.Genre),
		ButtonLabel: fmt.Sprintf("Get %d Recommendations", req.Count),
	}

	switch {
	case err == nil:
		resp.Items = recs
		resp.Message = SuccessMessage
		rw.Success(resp)

	case errors.Is(err, recommend.ErrEmptyCandidates):
		resp.NoMatches = true
		resp.Items = []recommend.Recommendation{{
			Title:  noMatchPlaceholder,
			Artist: noMatchPlaceholder,
			Genre:  noMatchPlaceholder,
		}}
		resp.Warning = fmt.Sprintf("No songs found in the '%s' category.", req.Genre)
		if suggestion, ok := h.selector.Catalog().SuggestGenre(req.Genre); ok {
			resp.Suggestion = suggestion
		}
		rw.Success(resp)

	case errors.Is(err, recommend.ErrInvalidCount):
		rw.ValidationError(err.Error(), map[string]interface{}{"field": "count", "value": req.Count})

	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn().Dur("timeout", h.settings.RequestTimeout).Msg("Selection timed out")
		rw.Timeout("recommendation request timed out")

	case errors.Is(err, context.Canceled):
		logger.Debug().Msg("Client went away before selection")
		rw.ServiceUnavailable("request canceled")

	default:
		logger.Error().Err(err).Msg("Selection failed")
		rw.InternalError("failed to generate recommendations")
	}
}
