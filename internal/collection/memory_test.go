// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/ponydex/internal/collection"
	"github.com/taibuivan/ponydex/internal/platform/apperr"
)

// memoryRepository is an in-memory [collection.Repository] with an injectable failure.
type memoryRepository struct {
	mu     sync.Mutex
	ponies map[string]collection.Pony
	clock  time.Time
	fail   error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		ponies: map[string]collection.Pony{},
		clock:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (repository *memoryRepository) tick() time.Time {
	repository.clock = repository.clock.Add(time.Second)
	return repository.clock
}

func (repository *memoryRepository) Create(_ context.Context, pony *collection.Pony) (*collection.Pony, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.fail != nil {
		return nil, repository.fail
	}

	stored := *pony
	stored.CreatedAt = repository.tick()
	stored.UpdatedAt = stored.CreatedAt
	repository.ponies[stored.ID] = stored
	return &stored, nil
}

func (repository *memoryRepository) Update(_ context.Context, pony *collection.Pony) (*collection.Pony, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.fail != nil {
		return nil, repository.fail
	}

	current, ok := repository.ponies[pony.ID]
	if !ok {
		return nil, apperr.NotFound("Pony")
	}
	stored := *pony
	stored.CreatedAt = current.CreatedAt
	stored.UpdatedAt = repository.tick()
	repository.ponies[stored.ID] = stored
	return &stored, nil
}

func (repository *memoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.fail != nil {
		return repository.fail
	}

	if _, ok := repository.ponies[id]; !ok {
		return apperr.NotFound("Pony")
	}
	delete(repository.ponies, id)
	return nil
}

func (repository *memoryRepository) List(_ context.Context) ([]*collection.Pony, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.fail != nil {
		return nil, repository.fail
	}

	ponies := []*collection.Pony{}
	for _, pony := range repository.ponies {
		pony := pony
		ponies = append(ponies, &pony)
	}
	sort.Slice(ponies, func(i, j int) bool { return ponies[i].CreatedAt.After(ponies[j].CreatedAt) })
	return ponies, nil
}

func (repository *memoryRepository) GetByID(_ context.Context, id string) (*collection.Pony, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if repository.fail != nil {
		return nil, repository.fail
	}

	pony, ok := repository.ponies[id]
	if !ok {
		return nil, apperr.NotFound("Pony")
	}
	return &pony, nil
}
