// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/ponydex/internal/platform/request"
	"github.com/taibuivan/ponydex/internal/platform/respond"
)

// Handler implements the HTTP layer for the pony collection.
type Handler struct {
	service *Service
}

// NewHandler constructs a new collection [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the collection endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPonies)
	router.Post("/", handler.createPony)

	// Form support
	router.Get("/attributes", handler.attributes)
	router.Get("/portraits", handler.portraits)

	router.Get("/{id}", handler.getPony)
	router.Patch("/{id}", handler.updatePony)
	router.Delete("/{id}", handler.deletePony)

	return router
}

func (handler *Handler) listPonies(writer http.ResponseWriter, request *http.Request) {
	ponies, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ponies)
}

func (handler *Handler) getPony(writer http.ResponseWriter, request *http.Request) {
	pony, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pony)
}

func (handler *Handler) createPony(writer http.ResponseWriter, request *http.Request) {
	var input Pony
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pony, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, pony)
}

func (handler *Handler) updatePony(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pony, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pony)
}

func (handler *Handler) deletePony(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) attributes(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Attributes())
}

func (handler *Handler) portraits(writer http.ResponseWriter, request *http.Request) {
	portraits, err := handler.service.Portraits(request.Context(), request.URL.Query().Get("kind"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, portraits)
}
