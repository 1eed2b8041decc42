// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/tunepicker/internal/validation"
)

// ErrUnsupportedFormat is returned by LoadFile for extensions other than
// .json, .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported catalog file format")

// fileDocument is the on-disk layout shared by the JSON and YAML formats:
//
//	songs:
//	  - title: Starlight
//	    artist: Muse
//	    genre: Rock
//	    popularity: 8.5
type fileDocument struct {
	Songs []fileSong `json:"songs" koanf:"songs"`
}

// fileSong is a song as decoded from disk. Popularity is a pointer so a
// missing key can be told apart from an explicit 0.
type fileSong struct {
	Title      string   `json:"title" koanf:"title"`
	Artist     string   `json:"artist" koanf:"artist"`
	Genre      string   `json:"genre" koanf:"genre"`
	Popularity *float64 `json:"popularity" koanf:"popularity" validate:"required"`
}

// toSongs rejects records without a popularity. The remaining field checks
// happen in New.
func toSongs(records []fileSong) ([]Song, error) {
	songs := make([]Song, len(records))
	for i := range records {
		rec := &records[i]
		if verr := validation.ValidateStruct(rec); verr != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %s", ErrInvalidCatalogEntry, i, rec.Title, verr.Error())
		}
		songs[i] = Song{
			Title:      rec.Title,
			Artist:     rec.Artist,
			Genre:      rec.Genre,
			Popularity: *rec.Popularity,
		}
	}
	return songs, nil
}

// LoadFile reads a catalog from a JSON or YAML file and validates it.
// Entry validation failures wrap ErrInvalidCatalogEntry.
func LoadFile(path string) (*Catalog, error) {
	var (
		records []fileSong
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		records, err = loadJSON(path)
	case ".yaml", ".yml":
		records, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}

	songs, err := toSongs(records)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}

	c, err := New(songs)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

func loadJSON(path string) ([]fileSong, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return doc.Songs, nil
}

func loadYAML(path string) ([]fileSong, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load catalog file %s: %w", path, err)
	}

	var doc fileDocument
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}
	return doc.Songs, nil
}
