// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/ponydex/internal/listquery"
)

// Source is the remote catalog as seen by the service.
type Source interface {
	ListCharacters(context context.Context, limit, offset int) ([]Character, error)
	GetCharacter(context context.Context, id int) (*Character, error)
	ListEpisodes(context context.Context, limit, offset int) ([]Episode, error)
	GetEpisode(context context.Context, id int) (*Episode, error)
	ListSongs(context context.Context, limit, offset int) ([]Song, error)
	GetSong(context context.Context, id int) (*Song, error)
	LookupSong(context context.Context, segment string) ([]Song, error)
}

// BatchLimits is the size of the single batch fetched per list view.
type BatchLimits struct {
	Characters int
	Episodes   int
	Songs      int
}

// DefaultBatchLimits are the batch sizes the web client has always requested.
var DefaultBatchLimits = BatchLimits{Characters: 555, Episodes: 250, Songs: 200}

type Service struct {
	source Source
	limits BatchLimits
	logger *slog.Logger
}

func NewService(source Source, limits BatchLimits, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		limits: limits,
		logger: logger,
	}
}

// # Lists

// ListCharacters fetches the character batch and returns the requested page of it.
func (service *Service) ListCharacters(context context.Context, query listquery.Query) (listquery.Result[Character], error) {
	if err := CharacterSchema.Validate(query.Filters); err != nil {
		return listquery.Result[Character]{}, err
	}

	batch, err := service.source.ListCharacters(context, service.limits.Characters, 0)
	if err != nil {
		return listquery.Result[Character]{}, err
	}
	return listquery.Paginate(batch, CharacterSchema, query.Filters, query.Page), nil
}

// ListEpisodes fetches the episode batch and returns the requested page of it.
func (service *Service) ListEpisodes(context context.Context, query listquery.Query) (listquery.Result[Episode], error) {
	if err := EpisodeSchema.Validate(query.Filters); err != nil {
		return listquery.Result[Episode]{}, err
	}

	batch, err := service.source.ListEpisodes(context, service.limits.Episodes, 0)
	if err != nil {
		return listquery.Result[Episode]{}, err
	}
	return listquery.Paginate(batch, EpisodeSchema, query.Filters, query.Page), nil
}

// ListSongs fetches the song batch and returns the requested page of it.
func (service *Service) ListSongs(context context.Context, query listquery.Query) (listquery.Result[Song], error) {
	if err := SongSchema.Validate(query.Filters); err != nil {
		return listquery.Result[Song]{}, err
	}

	batch, err := service.source.ListSongs(context, service.limits.Songs, 0)
	if err != nil {
		return listquery.Result[Song]{}, err
	}
	return listquery.Paginate(batch, SongSchema, query.Filters, query.Page), nil
}

// # Details

func (service *Service) GetCharacter(context context.Context, id int) (*Character, error) {
	return service.source.GetCharacter(context, id)
}

func (service *Service) GetEpisode(context context.Context, id int) (*Episode, error) {
	return service.source.GetEpisode(context, id)
}

func (service *Service) GetSong(context context.Context, id int) (*Song, error) {
	return service.source.GetSong(context, id)
}

// # Dashboard

// Stats counts the three batches, fetched concurrently.
func (service *Service) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		characters, err := service.source.ListCharacters(groupCtx, service.limits.Characters, 0)
		stats.Characters = len(characters)
		return err
	})
	group.Go(func() error {
		episodes, err := service.source.ListEpisodes(groupCtx, service.limits.Episodes, 0)
		stats.Episodes = len(episodes)
		return err
	})
	group.Go(func() error {
		songs, err := service.source.ListSongs(groupCtx, service.limits.Songs, 0)
		stats.Songs = len(songs)
		return err
	})

	if err := group.Wait(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
