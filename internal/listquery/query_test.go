// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listquery_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ponydex/internal/listquery"
)

/*
TestQuery_Transitions verifies which transitions reset the page.
*/
func TestQuery_Transitions(t *testing.T) {
	query := listquery.NewQuery("characters", 25).SetPage(3)

	// 1. SetPage keeps filters
	filtered := query.SetFilter("kind", "Unicorn").SetPage(2)
	assert.Equal(t, 2, filtered.Page.CurrentPage)
	assert.Equal(t, "Unicorn", filtered.Filters["kind"])

	// 2. SetFilter resets to page 1
	assert.Equal(t, 1, filtered.SetFilter("residence", "Canterlot").Page.CurrentPage)

	// 3. SetPageSize resets to page 1 and keeps filters
	resized := filtered.SetPageSize(50)
	assert.Equal(t, listquery.PageState{PageSize: 50, CurrentPage: 1}, resized.Page)
	assert.Equal(t, "Unicorn", resized.Filters["kind"])

	// 4. Reset clears filters
	assert.Empty(t, filtered.Reset().Filters)

	// 5. The original value is never mutated
	assert.Equal(t, 3, query.Page.CurrentPage)
	assert.Empty(t, query.Filters)
}

/*
TestQuery_KeyDeterministic verifies that equal queries share a key regardless of
map iteration order and that inactive filters do not contribute.
*/
func TestQuery_KeyDeterministic(t *testing.T) {
	a := listquery.NewQuery("characters", 25).SetFilter("kind", "Unicorn").SetFilter("residence", "Canterlot")
	b := listquery.NewQuery("characters", 25).SetFilter("residence", "Canterlot").SetFilter("kind", "Unicorn").SetFilter("occupation", "")

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Key(), b.Key())
	}
	assert.Equal(t, "characters?f.kind=Unicorn&f.residence=Canterlot&page=1&size=25", a.Key())
}

/*
TestQuery_KeyChangesWithEveryInput verifies that any change yields a different key.
*/
func TestQuery_KeyChangesWithEveryInput(t *testing.T) {
	base := listquery.NewQuery("episodes", 25).SetFilter("title", "winter").SetPage(2)

	variants := []listquery.Query{
		base.SetPage(3),
		base.SetPageSize(10).SetPage(2),
		base.SetFilter("title", "Winter").SetPage(2),
		base.SetFilter("writer", "Amy").SetPage(2),
		{Resource: "songs", Filters: base.Filters, Page: base.Page},
		// Values that would collide under naive concatenation
		base.SetFilter("title", "winter&page=3").SetPage(2),
	}

	seen := map[string]bool{base.Key(): true}
	for _, variant := range variants {
		key := variant.Key()
		assert.False(t, seen[key], key)
		seen[key] = true
	}
}

/*
TestFiltersFrom verifies extraction of filter values from a query string.
*/
func TestFiltersFrom(t *testing.T) {
	values, _ := url.ParseQuery("page=2&limit=10&kind=Unicorn&residence=")
	filters := listquery.FiltersFrom(values, "page", "limit")

	assert.Equal(t, listquery.FilterState{"kind": "Unicorn", "residence": ""}, filters)
	assert.Equal(t, listquery.FilterState{"kind": "Unicorn"}, filters.Active())
}
