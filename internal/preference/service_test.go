// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ponydex/internal/platform/apperr"
	"github.com/taibuivan/ponydex/internal/preference"
	"github.com/taibuivan/ponydex/pkg/pointer"
)

type memoryRepository struct {
	mu    sync.Mutex
	saved map[string]preference.Preferences
	fail  error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{saved: map[string]preference.Preferences{}}
}

func (repository *memoryRepository) Get(_ context.Context, clientID string) (preference.Preferences, bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.fail != nil {
		return preference.Preferences{}, false, repository.fail
	}
	prefs, ok := repository.saved[clientID]
	return prefs, ok, nil
}

func (repository *memoryRepository) Save(_ context.Context, clientID string, prefs preference.Preferences) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.fail != nil {
		return repository.fail
	}
	repository.saved[clientID] = prefs
	return nil
}

func newService() (*preference.Service, *memoryRepository) {
	repo := newMemoryRepository()
	return preference.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

const clientID = "0190a6d2-5c3e-7c1a-9b3e-2f6d8a1b2c3d"

/*
TestService_Defaults verifies the initial state for a client that saved nothing.
*/
func TestService_Defaults(t *testing.T) {
	service, repo := newService()
	ctx := context.Background()

	prefs, err := service.Get(ctx, clientID, false)
	require.NoError(t, err)
	assert.Equal(t, preference.Preferences{Theme: preference.ThemeLight, SidebarOpen: false}, prefs)

	prefs, err = service.Get(ctx, clientID, true)
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeDark, prefs.Theme)

	// Reading never persists
	assert.Empty(t, repo.saved)
}

/*
TestService_SavedWinsOverSystem verifies that a stored theme beats the system hint.
*/
func TestService_SavedWinsOverSystem(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	_, err := service.Update(ctx, clientID, true, preference.Update{Theme: pointer.To(preference.ThemeLight)})
	require.NoError(t, err)

	prefs, err := service.Get(ctx, clientID, true)
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeLight, prefs.Theme)
}

/*
TestService_PartialUpdate verifies that unset fields keep their value.
*/
func TestService_PartialUpdate(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	prefs, err := service.Update(ctx, clientID, true, preference.Update{SidebarOpen: pointer.To(true)})
	require.NoError(t, err)
	assert.Equal(t, preference.Preferences{Theme: preference.ThemeDark, SidebarOpen: true}, prefs)

	prefs, err = service.Update(ctx, clientID, false, preference.Update{Theme: pointer.To(preference.ThemeLight)})
	require.NoError(t, err)
	assert.Equal(t, preference.Preferences{Theme: preference.ThemeLight, SidebarOpen: true}, prefs)
}

/*
TestService_InvalidTheme verifies theme validation.
*/
func TestService_InvalidTheme(t *testing.T) {
	service, repo := newService()

	_, err := service.Update(context.Background(), clientID, false, preference.Update{Theme: pointer.To(preference.Theme("sepia"))})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Empty(t, repo.saved)
}

/*
TestService_StoreFailure verifies that store errors are reported as internal.
*/
func TestService_StoreFailure(t *testing.T) {
	service, repo := newService()
	repo.fail = assert.AnError

	_, err := service.Get(context.Background(), clientID, false)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
}
