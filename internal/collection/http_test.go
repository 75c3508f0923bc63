// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ponydex/internal/catalog"
	"github.com/taibuivan/ponydex/internal/collection"
	"github.com/taibuivan/ponydex/internal/platform/apperr"
)

func do(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))
	return recorder
}

/*
TestHandler_Lifecycle walks a pony through the HTTP API.
*/
func TestHandler_Lifecycle(t *testing.T) {
	service, _, _ := newService()
	router := collection.NewHandler(service).Routes()

	// 1. Create
	recorder := do(t, router, http.MethodPost, "/", `{"name":"Rarity","kind":"Unicorn","skills":["Art"],"category":"Team Role","role":"Designer"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created struct {
		Data collection.Pony `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	id := created.Data.ID
	assert.Equal(t, []string{}, created.Data.Personality)

	// 2. Patch
	recorder = do(t, router, http.MethodPatch, "/"+id, `{"description":"Generous"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"description":"Generous"`)

	// 3. List and get
	recorder = do(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), id)

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/"+id, "").Code)

	// 4. Delete
	assert.Equal(t, http.StatusNoContent, do(t, router, http.MethodDelete, "/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/"+id, "").Code)
}

/*
TestHandler_Errors verifies the error envelope for each failure class.
*/
func TestHandler_Errors(t *testing.T) {
	service, repo, _ := newService()
	router := collection.NewHandler(service).Routes()

	// 1. Malformed JSON
	recorder := do(t, router, http.MethodPost, "/", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// 2. Validation
	recorder = do(t, router, http.MethodPost, "/", `{"kind":"Yak"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"field":"name"`)

	// 3. Invalid ID
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, "/not-a-uuid", "").Code)

	// 4. Store error keeps its code and message
	repo.fail = apperr.Store("23514", `new row for relation "pony" violates check constraint "pony_name_check"`, http.StatusBadRequest, nil)
	recorder = do(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t,
		`{"error":"new row for relation \"pony\" violates check constraint \"pony_name_check\"","code":"STORE_23514"}`,
		recorder.Body.String(),
	)
}

/*
TestHandler_FormSupport verifies the attribute and portrait endpoints.
*/
func TestHandler_FormSupport(t *testing.T) {
	service, _, characters := newService()
	characters.characters = []catalog.Character{
		{ID: 7, Name: "Gallus", Kind: []string{"Griffon"}, Image: []string{"https://img/gallus.png"}},
	}
	router := collection.NewHandler(service).Routes()

	recorder := do(t, router, http.MethodGet, "/attributes", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Hippogriff"`)

	recorder = do(t, router, http.MethodGet, "/portraits?kind=Griffon", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":[{"character_id":7,"name":"Gallus","image":"https://img/gallus.png"}]}`, recorder.Body.String())

	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, "/portraits", "").Code)
}
