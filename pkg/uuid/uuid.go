// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides the time-ordered identifiers used across Ponydex.

It wraps google/uuid to generate Version 7 values. They are used for collection
records and live search sessions.

Advantages:

  - Sortable: Naturally ordered by creation time (millisecond precision).
  - Friendly: B-tree optimal as a PostgreSQL primary key.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// # Validation

// IsValid reports whether s is a well-formed UUID of any version.
func IsValid(s string) bool {
	return uuid.Validate(s) == nil
}
