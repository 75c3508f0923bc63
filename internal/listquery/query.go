// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listquery

import (
	"net/url"
	"strconv"
)

// # Query

// Query is the complete state of one list view: which resource, which filters,
// which page. Its transitions encode the page-reset rules.
type Query struct {
	Resource string
	Filters  FilterState
	Page     PageState
}

// NewQuery starts a list view on page 1 with no filters.
func NewQuery(resource string, pageSize int) Query {
	return Query{
		Resource: resource,
		Filters:  FilterState{},
		Page:     PageState{PageSize: pageSize, CurrentPage: 1}.normalize(),
	}
}

// SetFilter changes one filter value. The view returns to page 1.
func (q Query) SetFilter(name, value string) Query {
	q.Filters = q.Filters.With(name, value)
	q.Page.CurrentPage = 1
	return q
}

// SetPageSize changes the page size. The view returns to page 1.
func (q Query) SetPageSize(size int) Query {
	q.Page = PageState{PageSize: size, CurrentPage: 1}.normalize()
	return q
}

// SetPage moves to another page. Filters are left untouched.
func (q Query) SetPage(page int) Query {
	q.Page.CurrentPage = page
	q.Page = q.Page.normalize()
	return q
}

// Reset clears every filter and returns to page 1 (explicit navigation).
func (q Query) Reset() Query {
	q.Filters = FilterState{}
	q.Page.CurrentPage = 1
	return q
}

// Key returns the deterministic cache key of the query.
//
// Identical resource, active filters, page and page size always produce the same
// key; any change to one of them produces a different key. Inactive (empty)
// filters do not contribute.
func (q Query) Key() string {
	values := url.Values{}
	for name, value := range q.Filters.Active() {
		values.Set("f."+name, value)
	}

	page := q.Page.normalize()
	values.Set("page", strconv.Itoa(page.CurrentPage))
	values.Set("size", strconv.Itoa(page.PageSize))

	// Encode sorts by key, which makes the output independent of map order.
	return q.Resource + "?" + values.Encode()
}
