// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listquery

import (
	"github.com/taibuivan/ponydex/pkg/pagination"
	"github.com/taibuivan/ponydex/pkg/slice"
)

// # Page State

// PageState is the page request of a list view.
//
// # Invariant
//
// PageSize > 0 and 1 <= CurrentPage <= max(1, TotalPages). [Paginate] enforces
// the upper bound by clamping.
type PageState struct {
	PageSize    int `json:"page_size"`
	CurrentPage int `json:"current_page"`
}

// FromParams converts parsed request parameters into a page state.
func FromParams(params pagination.Params) PageState {
	return PageState{PageSize: params.Limit, CurrentPage: params.Page}
}

// normalize replaces out-of-range values with the defaults.
func (p PageState) normalize() PageState {
	if p.PageSize < 1 {
		p.PageSize = pagination.DefaultLimit
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = pagination.DefaultPage
	}
	return p
}

// # Result

// Result is the filtered, paginated view of a batch.
type Result[T any] struct {
	// View holds the items of the current page. Never nil.
	View []T
	// TotalItems is the number of items in the batch that passed the filters.
	TotalItems int
	// TotalPages is ceil(TotalItems / PageSize); zero when nothing matched.
	TotalPages int
	// Page is the effective page state after clamping.
	Page PageState
}

// Meta converts the result into the response envelope metadata.
func (r Result[T]) Meta() pagination.Meta {
	return pagination.NewMeta(r.Page.CurrentPage, r.Page.PageSize, r.TotalItems)
}

// # Pipeline

// Paginate filters items with the schema's active predicates and slices out the requested page.
//
// It has no side effects: the input slice is never modified or aliased, and
// identical arguments always yield identical results.
func Paginate[T any](items []T, schema *Schema[T], filters FilterState, page PageState) Result[T] {
	page = page.normalize()

	// 1. Filter (AND across active predicates)
	matched := slice.Filter(items, schema.Predicate(filters))

	// 2. Count
	total := len(matched)
	totalPages := pagination.TotalPages(total, page.PageSize)

	// 3. Clamp the page to the last available one
	if last := max(1, totalPages); page.CurrentPage > last {
		page.CurrentPage = last
	}

	// 4. Window
	start := min((page.CurrentPage-1)*page.PageSize, total)
	end := min(start+page.PageSize, total)

	view := make([]T, end-start)
	copy(view, matched[start:end])

	return Result[T]{
		View:       view,
		TotalItems: total,
		TotalPages: totalPages,
		Page:       page,
	}
}
