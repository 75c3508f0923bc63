// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package listquery implements the list-query pipeline used by every catalog list view.

Given one fetched batch of items, a set of field predicates and a page request, it
produces the filtered page and its pagination metadata.

Pipeline:

  - Filter: every active predicate must hold (AND). Empty values are inactive.
  - Count: TotalItems is the number of items that survived the filter.
  - Window: the current page is clamped to the last available page and sliced out.

Scope:

The pipeline only sees the batch it is given. Totals therefore describe the
fetched batch, never the full remote corpus.
*/
package listquery

import (
	"net/url"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/taibuivan/ponydex/internal/platform/apperr"
)

// # Filter State

// FilterState maps a filter field name to the value typed by the user.
//
// An empty value means the filter is inactive.
type FilterState map[string]string

// Active returns a copy holding only the non-empty entries.
func (f FilterState) Active() FilterState {
	active := make(FilterState, len(f))
	for name, value := range f {
		if value != "" {
			active[name] = value
		}
	}
	return active
}

// With returns a copy of the state with one field set.
func (f FilterState) With(name, value string) FilterState {
	next := make(FilterState, len(f)+1)
	for k, v := range f {
		next[k] = v
	}
	next[name] = value
	return next
}

// FiltersFrom collects filter values from URL query values, skipping the reserved keys.
//
// Only the first value of a repeated key is used.
func FiltersFrom(values url.Values, reserved ...string) FilterState {
	filters := make(FilterState, len(values))
	for name := range values {
		if slices.Contains(reserved, name) {
			continue
		}
		filters[name] = values.Get(name)
	}
	return filters
}

// # Fields

// Field declares one filterable field of T.
type Field[T any] struct {
	name    string
	compile func(value string, fold *cases.Caser) func(T) bool
}

// Name returns the filter name as used in query strings.
func (f Field[T]) Name() string { return f.name }

// Substring declares a case-insensitive substring filter over one string field.
func Substring[T any](name string, get func(T) string) Field[T] {
	return AnySubstring(name, get)
}

// AnySubstring declares a case-insensitive substring filter over several string
// fields. The item matches when ANY of the fields contains the value.
func AnySubstring[T any](name string, getters ...func(T) string) Field[T] {
	return Field[T]{
		name: name,
		compile: func(value string, fold *cases.Caser) func(T) bool {
			needle := fold.String(value)
			return func(item T) bool {
				for _, get := range getters {
					if strings.Contains(fold.String(get(item)), needle) {
						return true
					}
				}
				return false
			}
		},
	}
}

// Tag declares an exact, case-sensitive membership filter over a tag list.
func Tag[T any](name string, get func(T) []string) Field[T] {
	return Field[T]{
		name: name,
		compile: func(value string, _ *cases.Caser) func(T) bool {
			return func(item T) bool {
				return slices.Contains(get(item), value)
			}
		},
	}
}

// TagSubstring declares a case-insensitive substring filter over a tag list.
// The item matches when ANY tag contains the value.
func TagSubstring[T any](name string, get func(T) []string) Field[T] {
	return Field[T]{
		name: name,
		compile: func(value string, fold *cases.Caser) func(T) bool {
			needle := fold.String(value)
			return func(item T) bool {
				return slices.ContainsFunc(get(item), func(tag string) bool {
					return strings.Contains(fold.String(tag), needle)
				})
			}
		},
	}
}

// # Schema

// Schema is the set of filterable fields of one resource.
type Schema[T any] struct {
	fields map[string]Field[T]
	names  []string
}

// NewSchema builds a schema. Later fields with a duplicate name replace earlier ones.
func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	schema := &Schema[T]{fields: make(map[string]Field[T], len(fields))}
	for _, field := range fields {
		if _, exists := schema.fields[field.name]; !exists {
			schema.names = append(schema.names, field.name)
		}
		schema.fields[field.name] = field
	}
	return schema
}

// Names returns the field names in declaration order.
func (s *Schema[T]) Names() []string {
	return slices.Clone(s.names)
}

// Validate rejects filter names the schema does not declare.
func (s *Schema[T]) Validate(filters FilterState) error {
	var details []apperr.FieldError
	for name := range filters {
		if _, ok := s.fields[name]; !ok {
			details = append(details, apperr.FieldError{
				Field:   name,
				Message: "Unknown filter. Supported: " + strings.Join(s.names, ", "),
			})
		}
	}

	if len(details) == 0 {
		return nil
	}

	slices.SortFunc(details, func(a, b apperr.FieldError) int { return strings.Compare(a.Field, b.Field) })
	return apperr.ValidationError("Unsupported filter", details...)
}

// Predicate compiles the active filters into a single AND-combined predicate.
//
// Unknown names are ignored. The returned function is not safe for concurrent use.
func (s *Schema[T]) Predicate(filters FilterState) func(T) bool {
	fold := cases.Fold()

	var checks []func(T) bool
	for _, name := range s.names {
		value := filters[name]
		if value == "" {
			continue
		}
		checks = append(checks, s.fields[name].compile(value, &fold))
	}

	return func(item T) bool {
		for _, check := range checks {
			if !check(item) {
				return false
			}
		}
		return true
	}
}
