// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

// Package catalog holds the song catalog the recommender selects from.
//
// A Catalog is built once at startup, either from the built-in twelve-song
// table (Default) or from a YAML/JSON file (LoadFile), and is read-only
// afterwards. Every entry is validated when the catalog is built, so code
// that receives a *Catalog never sees a song with a missing title, artist
// or genre.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/tomtom215/tunepicker/internal/validation"
)

// ErrInvalidCatalogEntry is returned when a catalog record is missing a
// required field or has a popularity outside [0, 10].
var ErrInvalidCatalogEntry = errors.New("invalid catalog entry")

// SuggestionThreshold is the minimum Jaro-Winkler similarity for SuggestGenre.
const SuggestionThreshold = 0.8

// Song is one catalog entry.
type Song struct {
	Title  string `json:"title" koanf:"title" validate:"required"`
	Artist string `json:"artist" koanf:"artist" validate:"required"`
	Genre  string `json:"genre" koanf:"genre" validate:"required"`

	// Popularity is only used for relative ordering.
	Popularity float64 `json:"popularity" koanf:"popularity" validate:"gte=0,lte=10"`
}

// Catalog is an ordered, immutable sequence of songs.
// It is safe for concurrent use.
type Catalog struct {
	songs  []Song
	genres []string
}

// New validates songs and builds a Catalog from a private copy of them.
// An empty slice produces an empty (but valid) catalog.
func New(songs []Song) (*Catalog, error) {
	for i := range songs {
		if verr := validation.ValidateStruct(&songs[i]); verr != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %s", ErrInvalidCatalogEntry, i, songs[i].Title, verr.Error())
		}
	}

	owned := make([]Song, len(songs))
	copy(owned, songs)

	seen := make(map[string]struct{})
	genres := make([]string, 0)
	for _, s := range owned {
		if _, ok := seen[s.Genre]; ok {
			continue
		}
		seen[s.Genre] = struct{}{}
		genres = append(genres, s.Genre)
	}
	sort.Strings(genres)

	return &Catalog{songs: owned, genres: genres}, nil
}

// Songs returns a copy of the catalog entries in catalog order.
func (c *Catalog) Songs() []Song {
	out := make([]Song, len(c.songs))
	copy(out, c.songs)
	return out
}

// Len returns the number of songs.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// Genres returns the distinct genre labels in sorted order.
func (c *Catalog) Genres() []string {
	out := make([]string, len(c.genres))
	copy(out, c.genres)
	return out
}

// HasGenre reports whether any song carries exactly this genre label.
func (c *Catalog) HasGenre(genre string) bool {
	i := sort.SearchStrings(c.genres, genre)
	return i < len(c.genres) && c.genres[i] == genre
}

// SuggestGenre returns the known genre closest to label, compared
// case-insensitively with Jaro-Winkler similarity. ok is false when label is
// already a known genre or nothing scores at least SuggestionThreshold.
func (c *Catalog) SuggestGenre(label string) (suggestion string, ok bool) {
	if label == "" || c.HasGenre(label) {
		return "", false
	}

	metric := metrics.NewJaroWinkler()
	query := strings.ToLower(label)
	best := 0.0
	for _, g := range c.genres {
		score := strutil.Similarity(query, strings.ToLower(g), metric)
		if score > best {
			best = score
			suggestion = g
		}
	}

	if best < SuggestionThreshold {
		return "", false
	}
	return suggestion, true
}
