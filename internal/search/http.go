// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/ponydex/internal/platform/request"
	"github.com/taibuivan/ponydex/internal/platform/respond"
)

// Handler implements the HTTP layer for one-shot and live search.
type Handler struct {
	aggregator *Aggregator
	registry   *Registry
}

// NewHandler constructs a new search [Handler].
func NewHandler(aggregator *Aggregator, registry *Registry) *Handler {
	return &Handler{aggregator: aggregator, registry: registry}
}

// TypeRequest is the body of a keystroke update.
type TypeRequest struct {
	Query string `json:"query"`
}

// Routes returns a [chi.Router] configured with the search endpoints.
//
//   - GET /?q=: one-shot search, answered when all sections settle.
//   - /sessions: live type-ahead sessions. PUT records a keystroke and answers
//     202 immediately; GET polls the latest state.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.search)

	router.Route("/sessions", func(sessions chi.Router) {
		sessions.Post("/", handler.createSession)
		sessions.Get("/{id}", handler.getSession)
		sessions.Put("/{id}", handler.typeQuery)
		sessions.Delete("/{id}", handler.deleteSession)
	})

	return router
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	results := handler.aggregator.Search(request.Context(), request.URL.Query().Get("q"))
	respond.OK(writer, results)
}

func (handler *Handler) createSession(writer http.ResponseWriter, request *http.Request) {
	session := handler.registry.Create()
	respond.Created(writer, session.Snapshot(handler.registry.now()))
}

func (handler *Handler) getSession(writer http.ResponseWriter, request *http.Request) {
	snapshot, err := handler.registry.Snapshot(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, snapshot)
}

func (handler *Handler) typeQuery(writer http.ResponseWriter, request *http.Request) {
	var input TypeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	snapshot, err := handler.registry.Type(requestutil.ID(request, "id"), input.Query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Accepted(writer, snapshot)
}

func (handler *Handler) deleteSession(writer http.ResponseWriter, request *http.Request) {
	if err := handler.registry.Delete(requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
