// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import "context"

// Repository is the collection store.
//
// Every method returns the store's own error unchanged in meaning: an
// [apperr.AppError] carrying the store code and message.
type Repository interface {
	// Create inserts a pony and returns the stored row.
	Create(context context.Context, pony *Pony) (*Pony, error)
	// Update replaces the mutable fields of a pony and returns the stored row.
	Update(context context.Context, pony *Pony) (*Pony, error)
	// Delete removes a pony.
	Delete(context context.Context, id string) error
	// List returns every pony, newest first.
	List(context context.Context) ([]*Pony, error)
	// GetByID returns a single pony or NOT_FOUND.
	GetByID(context context.Context, id string) (*Pony, error)
}
