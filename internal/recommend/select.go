// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

// Package recommend selects the top-N songs of a genre by popularity.
//
// # Algorithm
//
//  1. Reject count < 1 with ErrInvalidCount.
//  2. Keep every song when the filter is AllGenres, otherwise keep songs whose
//     genre equals the filter exactly (case-sensitive, no normalization).
//  3. Report ErrEmptyCandidates when nothing is left.
//  4. Stable-sort by popularity, highest first. Equal scores keep catalog order.
//  5. Return the first min(count, candidates) songs as Recommendations.
//
// Select is pure: the same input always yields the same output, and the input
// slice is never modified. There is no upper bound on count here; limits such
// as "at most 5" belong to the caller.
//
// # Usage
//
//	recs, err := recommend.Select(cat.Songs(), "Pop", 3)
//	switch {
//	case errors.Is(err, recommend.ErrEmptyCandidates):
//	    // show a "no matches" state
//	case errors.Is(err, recommend.ErrInvalidCount):
//	    // caller bug or bad input
//	}
//
// Selector wraps Select with a catalog, metrics and logging for the HTTP layer.
package recommend

import (
	"errors"
	"sort"

	"github.com/tomtom215/tunepicker/internal/catalog"
)

// AllGenres is the filter value that disables genre filtering.
const AllGenres = "All Genres (Surprise Me!)"

var (
	// ErrEmptyCandidates means no song matched the genre filter. It is a
	// normal outcome that callers present as a "no matches" state.
	ErrEmptyCandidates = errors.New("no songs match the genre filter")

	// ErrInvalidCount means count was below 1.
	ErrInvalidCount = errors.New("count must be at least 1")
)

// Recommendation is the projection of a song returned to callers.
// Popularity is intentionally absent.
type Recommendation struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Genre  string `json:"genre"`
}

// Select returns the count most popular songs matching genre.
func Select(songs []catalog.Song, genre string, count int) ([]Recommendation, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	candidates := make([]catalog.Song, 0, len(songs))
	for i := range songs {
		if genre == AllGenres || songs[i].Genre == genre {
			candidates = append(candidates, songs[i])
		}
	}
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidates
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Popularity > candidates[j].Popularity
	})

	n := min(count, len(candidates))
	out := make([]Recommendation, n)
	for i := 0; i < n; i++ {
		out[i] = Recommendation{
			Title:  candidates[i].Title,
			Artist: candidates[i].Artist,
			Genre:  candidates[i].Genre,
		}
	}
	return out, nil
}
