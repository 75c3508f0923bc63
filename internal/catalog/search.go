// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"github.com/taibuivan/ponydex/internal/listquery"
	"github.com/taibuivan/ponydex/pkg/slice"
)

// The three resources are searched in three different ways. Each strategy is
// kept separate because the remote API offers no common search endpoint.

// characterSearchBatch is the number of characters scanned by a search.
const characterSearchBatch = 200

const searchField = "q"

// characterSearch matches the kind tags, not the name.
var characterSearch = listquery.NewSchema(
	listquery.TagSubstring(searchField, func(c Character) []string { return c.Kind }),
)

// episodeSearch matches the title or either writing credit.
var episodeSearch = listquery.NewSchema(
	listquery.AnySubstring(searchField,
		func(e Episode) string { return e.Name },
		func(e Episode) string { return e.WrittenBy },
		func(e Episode) string { return e.StoryBy },
	),
)

// SearchCharacters returns characters with a kind tag containing term,
// case-insensitively, among the first 200 characters.
func (service *Service) SearchCharacters(context context.Context, term string) ([]Character, error) {
	batch, err := service.source.ListCharacters(context, characterSearchBatch, 0)
	if err != nil {
		return nil, err
	}
	return matching(batch, characterSearch, term), nil
}

// SearchEpisodes returns episodes whose title or writing credits contain term,
// case-insensitively, within the regular episode batch.
func (service *Service) SearchEpisodes(context context.Context, term string) ([]Episode, error) {
	batch, err := service.source.ListEpisodes(context, service.limits.Episodes, 0)
	if err != nil {
		return nil, err
	}
	return matching(batch, episodeSearch, term), nil
}

// SearchSongs looks term up as a literal /song/{term} path. No text matching happens.
func (service *Service) SearchSongs(context context.Context, term string) ([]Song, error) {
	return service.source.LookupSong(context, term)
}

func matching[T any](batch []T, schema *listquery.Schema[T], term string) []T {
	return slice.Filter(batch, schema.Predicate(listquery.FilterState{searchField: term}))
}
