// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package recommend

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tunepicker/internal/catalog"
	"github.com/tomtom215/tunepicker/internal/logging"
	"github.com/tomtom215/tunepicker/internal/metrics"
)

// Request is one selection request.
type Request struct {
	Genre string
	Count int
}

// Selector runs Select against a fixed catalog and records the outcome.
// It is safe for concurrent use: the catalog is read-only after construction.
type Selector struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewSelector creates a Selector over c that logs through logger, usually
// logging.WithComponent("recommend").
func NewSelector(c *catalog.Catalog, logger zerolog.Logger) *Selector {
	metrics.SetCatalogStats(c.Len(), len(c.Genres()))
	return &Selector{
		catalog: c,
		logger:  logger,
	}
}

// Catalog returns the catalog the selector reads from.
func (s *Selector) Catalog() *catalog.Catalog {
	return s.catalog
}

// Select returns the top req.Count songs for req.Genre.
// It returns ctx.Err() without selecting when ctx is already done.
func (s *Selector) Select(ctx context.Context, req Request) ([]Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recs, err := Select(s.catalog.Songs(), req.Genre, req.Count)

	label := s.genreLabel(req.Genre)
	logger := s.logger.With().
		Str("genre", req.Genre).
		Int("count", req.Count).
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Logger()

	switch {
	case err == nil:
		metrics.RecordSelection(label, metrics.OutcomeOK, len(recs))
		logger.Debug().Int("returned", len(recs)).Msg("selection complete")
	case errors.Is(err, ErrEmptyCandidates):
		metrics.RecordSelection(label, metrics.OutcomeEmpty, 0)
		logger.Debug().Msg("no songs match genre")
	case errors.Is(err, ErrInvalidCount):
		metrics.RecordSelection(label, metrics.OutcomeInvalidCount, 0)
		logger.Warn().Msg("rejected selection with invalid count")
	}
	return recs, err
}

// genreLabel keeps the metric label set bounded to catalog genres.
func (s *Selector) genreLabel(genre string) string {
	if genre == AllGenres || s.catalog.HasGenre(genre) {
		return genre
	}
	return metrics.GenreOther
}
