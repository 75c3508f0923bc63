// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/taibuivan/ponydex/internal/platform/apperr"
	"github.com/taibuivan/ponydex/internal/platform/constants"
	"github.com/taibuivan/ponydex/internal/platform/ctxutil"
	"github.com/taibuivan/ponydex/internal/platform/respond"
)

// # Client Identity

// ClientIdentity extracts the anonymous browser identifier from the X-Client-ID header.
//
// # Flow
//  1. Check for the 'X-Client-ID' header.
//  2. If absent, request proceeds without a client ID.
//  3. If present but not a UUID, the request is rejected with 400.
//  4. If valid, the canonical form is injected into the context.
//
// There is no account model: the ID only scopes cosmetic preferences.
func ClientIdentity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			raw := request.Header.Get(constants.HeaderXClientID)
			if raw == "" {
				next.ServeHTTP(writer, request)
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				respond.Error(writer, request, apperr.ValidationError("X-Client-ID must be a valid UUID",
					apperr.FieldError{Field: constants.HeaderXClientID, Message: "Must be a valid UUID"}))
				return
			}

			ctx := ctxutil.WithClientID(request.Context(), id.String())
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
