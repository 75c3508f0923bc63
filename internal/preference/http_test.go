// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ponydex/internal/platform/constants"
	"github.com/taibuivan/ponydex/internal/platform/middleware"
	"github.com/taibuivan/ponydex/internal/preference"
)

func newRouter() http.Handler {
	service, _ := newService()
	return middleware.ClientIdentity()(preference.NewHandler(service).Routes())
}

func do(handler http.Handler, method, body string, headers map[string]string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, "/", strings.NewReader(body))
	for name, value := range headers {
		request.Header.Set(name, value)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_Preferences verifies reading defaults and saving changes.
*/
func TestHandler_Preferences(t *testing.T) {
	router := newRouter()
	headers := map[string]string{
		constants.HeaderXClientID:    clientID,
		constants.HeaderPrefersColor: `"dark"`,
	}

	// 1. Defaults follow the client hint
	recorder := do(router, http.MethodGet, "", headers)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"theme":"dark","sidebar_open":false}}`, recorder.Body.String())
	assert.Equal(t, constants.HeaderPrefersColor, recorder.Header().Get(constants.HeaderAcceptCHPrefer))

	// 2. Save
	recorder = do(router, http.MethodPut, `{"sidebar_open":true}`, headers)
	require.Equal(t, http.StatusOK, recorder.Code)

	// 3. Saved state survives a light system hint
	headers[constants.HeaderPrefersColor] = `"light"`
	recorder = do(router, http.MethodGet, "", headers)
	assert.JSONEq(t, `{"data":{"theme":"dark","sidebar_open":true}}`, recorder.Body.String())
}

/*
TestHandler_ClientIDRequired verifies the header checks.
*/
func TestHandler_ClientIDRequired(t *testing.T) {
	router := newRouter()

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "", map[string]string{constants.HeaderXClientID: "pony"}).Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPut, `{"theme":"sepia"}`, map[string]string{constants.HeaderXClientID: clientID}).Code)
}

/*
TestHandler_ColorSchemeHint verifies the default theme for each form of the client hint.
*/
func TestHandler_ColorSchemeHint(t *testing.T) {
	cases := []struct {
		hint  string
		theme string
	}{
		{hint: `"dark"`, theme: "dark"},
		{hint: "dark", theme: "dark"},
		{hint: ` "dark" `, theme: "dark"},
		{hint: `"light"`, theme: "light"},
		{hint: "", theme: "light"},
	}

	for _, tc := range cases {
		t.Run(tc.hint, func(t *testing.T) {
			router := newRouter()
			headers := map[string]string{constants.HeaderXClientID: clientID}
			if tc.hint != "" {
				headers[constants.HeaderPrefersColor] = tc.hint
			}

			recorder := do(router, http.MethodGet, "", headers)

			require.Equal(t, http.StatusOK, recorder.Code)
			assert.JSONEq(t, `{"data":{"theme":"`+tc.theme+`","sidebar_open":false}}`, recorder.Body.String())
		})
	}
}
