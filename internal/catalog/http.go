// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ponydex/internal/listquery"
	"github.com/taibuivan/ponydex/internal/platform/constants"
	requestutil "github.com/taibuivan/ponydex/internal/platform/request"
	"github.com/taibuivan/ponydex/internal/platform/respond"
	"github.com/taibuivan/ponydex/pkg/pagination"
)

// Handler implements the HTTP layer for the read-only catalog.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalog [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the catalog endpoints.
//
// List endpoints accept "page", "limit" and the resource's filter fields, and
// answer with the deterministic query key in the X-Query-Key header.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/characters", listHandler("characters", handler.service.ListCharacters))
	router.Get("/characters/{id}", detailHandler(handler.service.GetCharacter))

	router.Get("/episodes", listHandler("episodes", handler.service.ListEpisodes))
	router.Get("/episodes/{id}", detailHandler(handler.service.GetEpisode))

	router.Get("/songs", listHandler("songs", handler.service.ListSongs))
	router.Get("/songs/{id}", detailHandler(handler.service.GetSong))

	router.Get("/dashboard", handler.dashboard)

	return router
}

func listHandler[T any](resource string, list func(context.Context, listquery.Query) (listquery.Result[T], error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		query := listquery.Query{
			Resource: resource,
			Filters:  listquery.FiltersFrom(request.URL.Query(), pagination.ParamPage, pagination.ParamLimit),
			Page:     listquery.FromParams(pagination.FromRequest(request)),
		}

		result, err := list(request.Context(), query)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		writer.Header().Set(constants.HeaderXQueryKey, query.Key())
		respond.Paginated(writer, result.View, result.Meta())
	}
}

func detailHandler[T any](get func(context.Context, int) (*T, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id, err := requestutil.IntID(request, "id")
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		record, err := get(request.Context(), id)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, record)
	}
}

func (handler *Handler) dashboard(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}
