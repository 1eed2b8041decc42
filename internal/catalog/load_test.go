// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "catalog.yaml", `
songs:
  - title: "So What"
    artist: "Miles Davis"
    genre: "Jazz"
    popularity: 9.7
  - title: "Take Five"
    artist: "Dave Brubeck"
    genre: "Jazz"
    popularity: 9
`)

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	songs := c.Songs()
	if songs[0].Title != "So What" || songs[0].Artist != "Miles Davis" {
		t.Errorf("first song = %+v", songs[0])
	}
	if songs[1].Popularity != 9 {
		t.Errorf("integer popularity decoded as %v, want 9", songs[1].Popularity)
	}
	if !c.HasGenre("Jazz") {
		t.Error("expected Jazz genre")
	}
}

func TestLoadFile_JSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "catalog.json", `{
  "songs": [
    {"title": "Clair de Lune", "artist": "Debussy", "genre": "Classical", "popularity": 8.1},
    {"title": "Gymnopedie No.1", "artist": "Satie", "genre": "Classical", "popularity": 8.1}
  ]
}`)

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.Songs()[1].Title != "Gymnopedie No.1" {
		t.Errorf("second title = %q", c.Songs()[1].Title)
	}
}

func TestLoadFile_InvalidEntry(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "catalog.yml", `
songs:
  - title: "Untitled"
    genre: "Pop"
    popularity: 5
`)

	_, err := LoadFile(path)
	if !errors.Is(err, ErrInvalidCatalogEntry) {
		t.Fatalf("LoadFile() error = %v, want ErrInvalidCatalogEntry", err)
	}
}

func TestLoadFile_MissingPopularity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "catalog.yaml",
			content: `
songs:
  - title: "One"
    artist: "A"
    genre: "Jazz"
`,
		},
		{
			name:    "json",
			file:    "catalog.json",
			content: `{"songs": [{"title": "One", "artist": "A", "genre": "Jazz"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := LoadFile(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, ErrInvalidCatalogEntry) {
				t.Fatalf("LoadFile() = %v, %v; want ErrInvalidCatalogEntry", c, err)
			}
			if !strings.Contains(err.Error(), "Popularity is required") {
				t.Errorf("error should name the missing field, got: %v", err)
			}
		})
	}
}

func TestLoadFile_ZeroPopularity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file    string
		content string
	}{
		{"catalog.yaml", "songs:\n  - title: One\n    artist: A\n    genre: Jazz\n    popularity: 0\n"},
		{"catalog.json", `{"songs": [{"title": "One", "artist": "A", "genre": "Jazz", "popularity": 0}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			c, err := LoadFile(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("explicit popularity 0 should load, got %v", err)
			}
			if got := c.Songs()[0].Popularity; got != 0 {
				t.Errorf("Popularity = %v, want 0", got)
			}
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "catalog.csv", "title,artist\n")
		if _, err := LoadFile(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("LoadFile() error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("missing json file", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("missing yaml file", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "bad.json", `{"songs": [`)
		if _, err := LoadFile(path); err == nil {
			t.Error("expected parse error")
		}
	})
}
