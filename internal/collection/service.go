// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/taibuivan/ponydex/internal/catalog"
	"github.com/taibuivan/ponydex/internal/platform/validate"
	"github.com/taibuivan/ponydex/pkg/pointer"
	"github.com/taibuivan/ponydex/pkg/slice"
	"github.com/taibuivan/ponydex/pkg/uuid"
)

const maxNameLength = 100

// CharacterSearcher finds catalog characters by kind.
type CharacterSearcher interface {
	SearchCharacters(context context.Context, term string) ([]catalog.Character, error)
}

type Service struct {
	repo       Repository
	characters CharacterSearcher
	logger     *slog.Logger
}

func NewService(repo Repository, characters CharacterSearcher, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		characters: characters,
		logger:     logger,
	}
}

// # Reads

func (service *Service) List(context context.Context) ([]*Pony, error) {
	return service.repo.List(context)
}

func (service *Service) Get(context context.Context, id string) (*Pony, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return service.repo.GetByID(context, id)
}

// # Writes

// Create validates and stores a new pony. The ID is assigned here.
func (service *Service) Create(context context.Context, pony Pony) (*Pony, error) {
	pony = normalize(pony)
	if err := validatePony(pony); err != nil {
		return nil, err
	}

	pony.ID = uuid.New()
	created, err := service.repo.Create(context, &pony)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "pony_created",
		slog.String("pony_id", created.ID),
		slog.String("kind", created.Kind),
	)
	return created, nil
}

// Update applies a partial update to the stored pony and stores the result.
func (service *Service) Update(context context.Context, id string, patch Patch) (*Pony, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	current, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	next := normalize(patch.Apply(*current))
	if err := validatePony(next); err != nil {
		return nil, err
	}

	updated, err := service.repo.Update(context, &next)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "pony_updated", slog.String("pony_id", id))
	return updated, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "pony_deleted", slog.String("pony_id", id))
	return nil
}

// # Form Support

// Attributes returns the selectable values of a pony.
func (service *Service) Attributes() Attributes {
	return attributes
}

// Portraits returns catalog images of characters of the given kind.
//
// Only characters tagged with exactly that kind and carrying an image qualify;
// the first image of each is offered.
func (service *Service) Portraits(context context.Context, kind string) ([]Portrait, error) {
	if kind == "" {
		return nil, validate.RequiredError(FieldKind, "This field is required")
	}

	characters, err := service.characters.SearchCharacters(context, kind)
	if err != nil {
		return nil, err
	}

	eligible := slice.Filter(characters, func(character catalog.Character) bool {
		return slices.Contains(character.Kind, kind) && len(character.Image) > 0 && character.Image[0] != ""
	})

	portraits := slice.Map(eligible, func(character catalog.Character) Portrait {
		return Portrait{CharacterID: character.ID, Name: character.Name, Image: character.Image[0]}
	})
	if portraits == nil {
		portraits = []Portrait{}
	}
	return portraits, nil
}

// # Validation

func validateID(id string) error {
	if !uuid.IsValid(id) {
		return validate.RequiredError(FieldID, "Must be a valid UUID")
	}
	return nil
}

// normalize trims the name and turns the personality and skill lists into sets.
func normalize(pony Pony) Pony {
	pony.Name = strings.TrimSpace(pony.Name)
	pony.Personality = slice.Distinct(pony.Personality)
	pony.Skills = slice.Distinct(pony.Skills)
	if pony.Category != nil && *pony.Category == "" {
		pony.Category = nil
	}
	if pony.Role != nil && *pony.Role == "" {
		pony.Role = nil
	}
	return pony
}

/*
validatePony checks presence and the category/role rule.

When a role is chosen it must belong to the chosen category, and the pony's
skills must include every skill the role requires.
*/
func validatePony(pony Pony) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, pony.Name).MaxLen(FieldName, pony.Name, maxNameLength)
	validator.Required(FieldKind, pony.Kind)

	if pony.Role != nil {
		category := pointer.Val(pony.Category)
		knownCategory, role := findRole(category, *pony.Role)

		switch {
		case category == "":
			validator.Custom(FieldCategory, true, "A role requires a category")
		case knownCategory == nil:
			validator.Custom(FieldCategory, true, "Unknown category")
		case role == nil:
			validator.Custom(FieldRole, true, "Role does not belong to category "+category)
		default:
			for _, skill := range role.RequiredSkills {
				validator.Custom(FieldSkills, !slices.Contains(pony.Skills, skill), "Role "+role.Name+" requires skill "+skill)
			}
		}
	} else if pony.Category != nil {
		known, _ := findRole(*pony.Category, "")
		validator.Custom(FieldCategory, known == nil, "Unknown category")
	}

	return validator.Err()
}
