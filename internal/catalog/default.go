// Tunepicker - Genre-Filtered Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunepicker

package catalog

// defaultSongs is the built-in catalog. Order matters: equal popularity
// scores are ranked by position in this table.
var defaultSongs = []Song{
	{Title: "Starlight", Artist: "Muse", Genre: "Rock", Popularity: 8.5},
	{Title: "Adventure of a Lifetime", Artist: "Coldplay", Genre: "Pop", Popularity: 9.1},
	{Title: "Bohemian Rhapsody", Artist: "Queen", Genre: "Rock", Popularity: 9.8},
	{Title: "Smooth Criminal", Artist: "Michael Jackson", Genre: "Pop", Popularity: 9.5},
	{Title: "Thunderstruck", Artist: "AC/DC", Genre: "Hard Rock", Popularity: 9.0},
	{Title: "Back in Black", Artist: "AC/DC", Genre: "Hard Rock", Popularity: 9.2},
	{Title: "Shape of You", Artist: "Ed Sheeran", Genre: "Pop", Popularity: 8.9},
	{Title: "Uptown Funk", Artist: "Mark Ronson", Genre: "Pop", Popularity: 8.8},
	{Title: "Imagine", Artist: "John Lennon", Genre: "Ballad", Popularity: 9.3},
	{Title: "Happier Than Ever", Artist: "Billie Eilish", Genre: "Pop", Popularity: 8.7},
	{Title: "Levitating", Artist: "Dua Lipa", Genre: "Pop", Popularity: 9.6},
	{Title: "Watermelon Sugar", Artist: "Harry Styles", Genre: "Pop", Popularity: 9.4},
}

// Default returns the built-in twelve-song catalog.
func Default() *Catalog {
	c, err := New(defaultSongs)
	if err != nil {
		// The table above is static; a failure here is a programming error.
		panic(err)
	}
	return c
}
