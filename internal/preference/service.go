// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference

import (
	"context"
	"log/slog"

	"github.com/taibuivan/ponydex/internal/platform/apperr"
	"github.com/taibuivan/ponydex/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get returns the saved preferences, or the defaults when nothing was saved.
func (service *Service) Get(context context.Context, clientID string, prefersDark bool) (Preferences, error) {
	prefs, ok, err := service.repo.Get(context, clientID)
	if err != nil {
		return Preferences{}, apperr.Internal(err)
	}
	if !ok {
		return Defaults(prefersDark), nil
	}
	return prefs, nil
}

// Update applies a partial change on top of the current state and saves it.
func (service *Service) Update(context context.Context, clientID string, prefersDark bool, update Update) (Preferences, error) {
	if update.Theme != nil {
		validator := &validate.Validator{}
		validator.OneOf(FieldTheme, string(*update.Theme), string(ThemeLight), string(ThemeDark))
		if err := validator.Err(); err != nil {
			return Preferences{}, err
		}
	}

	current, err := service.Get(context, clientID, prefersDark)
	if err != nil {
		return Preferences{}, err
	}

	next := update.Apply(current)
	if err := service.repo.Save(context, clientID, next); err != nil {
		return Preferences{}, apperr.Internal(err)
	}

	service.logger.DebugContext(context, "preferences_saved",
		slog.String("client_id", clientID),
		slog.String("theme", string(next.Theme)),
	)
	return next, nil
}
