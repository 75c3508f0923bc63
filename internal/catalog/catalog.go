// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog serves the read-only pony catalog (characters, episodes, songs).

Records come from the remote catalog API. Each list view fetches one batch per
resource and runs it through the list-query pipeline; detail views read one
record by its integer identifier.

Missing optional fields decode to zero values. They are tolerated, never rejected.
*/
package catalog

import "github.com/taibuivan/ponydex/internal/listquery"

// # Resources

// Resource names, used both as remote path segments and as query-key prefixes.
const (
	ResourceCharacter = "character"
	ResourceEpisode   = "episode"
	ResourceSong      = "song"
)

// # Character

// Character is a character of the series.
type Character struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Alias      string   `json:"alias"`
	URL        string   `json:"url"`
	Sex        string   `json:"sex"`
	Residence  string   `json:"residence"`
	Occupation string   `json:"occupation"`
	Kind       []string `json:"kind"`
	Image      []string `json:"image"`
}

const (
	FilterKind       = "kind"
	FilterResidence  = "residence"
	FilterOccupation = "occupation"
)

// CharacterSchema declares the character list filters.
//
// Kind is an exact, case-sensitive tag match; the others are case-insensitive substrings.
var CharacterSchema = listquery.NewSchema(
	listquery.Tag(FilterKind, func(c Character) []string { return c.Kind }),
	listquery.Substring(FilterResidence, func(c Character) string { return c.Residence }),
	listquery.Substring(FilterOccupation, func(c Character) string { return c.Occupation }),
)

// # Episode

// Episode is one episode of the series. Credits are newline-separated names.
type Episode struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Season     int      `json:"season"`
	Episode    int      `json:"episode"`
	Overall    int      `json:"overall"`
	Airdate    string   `json:"airdate"`
	StoryBy    string   `json:"storyby"`
	WrittenBy  string   `json:"writtenby"`
	Storyboard string   `json:"storyboard"`
	Image      string   `json:"image"`
	URL        string   `json:"url"`
	Song       []string `json:"song"`
}

const (
	FilterTitle  = "title"
	FilterWriter = "writer"
	FilterAuthor = "author"
)

// EpisodeSchema declares the episode list filters. Writer matches either credit.
var EpisodeSchema = listquery.NewSchema(
	listquery.Substring(FilterTitle, func(e Episode) string { return e.Name }),
	listquery.AnySubstring(FilterWriter,
		func(e Episode) string { return e.WrittenBy },
		func(e Episode) string { return e.StoryBy },
	),
)

// # Song

// Song is a musical number of the series.
type Song struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Alias        string `json:"alias"`
	URL          string `json:"url"`
	Episode      string `json:"episode"`
	Length       string `json:"length"`
	Video        string `json:"video"`
	MusicBy      string `json:"musicby"`
	LyricsBy     string `json:"lyricsby"`
	KeySignature string `json:"keysignature"`
}

// SongSchema declares the song list filters. Author matches music or lyrics credits.
var SongSchema = listquery.NewSchema(
	listquery.Substring(FilterTitle, func(s Song) string { return s.Name }),
	listquery.AnySubstring(FilterAuthor,
		func(s Song) string { return s.MusicBy },
		func(s Song) string { return s.LyricsBy },
	),
)

// # Dashboard

// Stats holds the record counts shown on the dashboard.
//
// Counts describe the fetched batches, not the full remote corpus.
type Stats struct {
	Characters int `json:"characters"`
	Episodes   int `json:"episodes"`
	Songs      int `json:"songs"`
}
