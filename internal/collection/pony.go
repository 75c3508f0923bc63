// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package collection manages the user's own ponies.

Records live in the collection store (PostgreSQL, table collection.pony). The
store owns identity and timestamps; writes are last-write-wins with no locking.

Errors reported by the store travel to the client with their original code and
message (see dberr).
*/
package collection

import (
	"time"

	"github.com/taibuivan/ponydex/pkg/pointer"
)

// Pony is a user-created collection record.
type Pony struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Personality []string  `json:"personality"`
	Skills      []string  `json:"skills"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Category    *string   `json:"category"`
	Role        *string   `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Patch is a partial update. Nil fields are left unchanged; an empty category
// or role clears it.
type Patch struct {
	Name        *string   `json:"name"`
	Kind        *string   `json:"kind"`
	Personality *[]string `json:"personality"`
	Skills      *[]string `json:"skills"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Category    *string   `json:"category"`
	Role        *string   `json:"role"`
}

// Apply returns a copy of pony with the patch applied.
//
// Changing the kind without choosing a new image clears the image, since
// portraits are picked per kind.
func (patch Patch) Apply(pony Pony) Pony {
	if patch.Name != nil {
		pony.Name = *patch.Name
	}
	if patch.Kind != nil && *patch.Kind != pony.Kind {
		pony.Kind = *patch.Kind
		pony.Image = ""
	}
	if patch.Personality != nil {
		pony.Personality = *patch.Personality
	}
	if patch.Skills != nil {
		pony.Skills = *patch.Skills
	}
	if patch.Description != nil {
		pony.Description = *patch.Description
	}
	if patch.Image != nil {
		pony.Image = *patch.Image
	}
	if patch.Category != nil {
		pony.Category = pointer.NonZero(*patch.Category)
	}
	if patch.Role != nil {
		pony.Role = pointer.NonZero(*patch.Role)
	}
	return pony
}

// Portrait is a catalog image offered for a new pony of a given kind.
type Portrait struct {
	CharacterID int    `json:"character_id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
}

const (
	FieldName     = "name"
	FieldKind     = "kind"
	FieldCategory = "category"
	FieldRole     = "role"
	FieldSkills   = "skills"
	FieldID       = "id"
)
