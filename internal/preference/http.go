// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ponydex/internal/platform/constants"
	requestutil "github.com/taibuivan/ponydex/internal/platform/request"
	"github.com/taibuivan/ponydex/internal/platform/respond"
)

// Handler implements the HTTP layer for client preferences.
type Handler struct {
	service *Service
}

// NewHandler constructs a new preference [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the preference endpoints.
// Both require the X-Client-ID header.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getPreferences)
	router.Put("/", handler.updatePreferences)

	return router
}

// prefersDark reads the colour scheme client hint and asks the browser to keep sending it.
//
// The hint is a structured-field string, so browsers send it quoted ("dark").
func prefersDark(writer http.ResponseWriter, request *http.Request) bool {
	writer.Header().Set(constants.HeaderAcceptCHPrefer, constants.HeaderPrefersColor)
	writer.Header().Add("Vary", constants.HeaderPrefersColor)

	hint := strings.TrimSpace(request.Header.Get(constants.HeaderPrefersColor))
	return strings.Trim(hint, `"`) == string(ThemeDark)
}

func (handler *Handler) getPreferences(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.RequiredClientID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	prefs, err := handler.service.Get(request.Context(), clientID, prefersDark(writer, request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, prefs)
}

func (handler *Handler) updatePreferences(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.RequiredClientID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var update Update
	if err := requestutil.DecodeJSON(request, &update); err != nil {
		respond.Error(writer, request, err)
		return
	}

	prefs, err := handler.service.Update(request.Context(), clientID, prefersDark(writer, request), update)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, prefs)
}
