// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ponydex/pkg/pagination"
)

/*
TestFromRequest checks defaulting and clamping of page and limit.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: 25}},
		{"explicit", "?page=3&limit=10", pagination.Params{Page: 3, Limit: 10}},
		{"negative_page", "?page=-2", pagination.Params{Page: 1, Limit: 25}},
		{"garbage", "?page=abc&limit=xyz", pagination.Params{Page: 1, Limit: 25}},
		{"limit_clamped", "?limit=5000", pagination.Params{Page: 1, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/characters"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(req))
		})
	}
}

/*
TestNewMeta checks the ceil division, including the zero-total case.
*/
func TestNewMeta(t *testing.T) {
	assert.Equal(t, pagination.Meta{Page: 1, Limit: 25, Total: 0, TotalPages: 0}, pagination.NewMeta(1, 25, 0))
	assert.Equal(t, 1, pagination.NewMeta(1, 25, 25).TotalPages)
	assert.Equal(t, 2, pagination.NewMeta(1, 25, 26).TotalPages)
	assert.Equal(t, 0, pagination.TotalPages(10, 0))
}
