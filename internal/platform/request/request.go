// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ponydex/internal/platform/ctxutil"
	"github.com/taibuivan/ponydex/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID/Slug) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID retrieves a named URL parameter and parses it as a positive integer.

Returns:
  - int: The parsed identifier
  - error: A VALIDATION_ERROR naming the parameter if it is not a positive integer
*/
func IntID(request *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil || id < 1 {
		return 0, validate.RequiredError(name, "Must be a positive integer")
	}
	return id, nil
}

/*
RequiredClientID returns the anonymous client ID attached by the ClientIdentity middleware.

Returns:
  - string: Client UUID
  - error: VALIDATION_ERROR if the request carried no X-Client-ID header
*/
func RequiredClientID(request *http.Request) (string, error) {
	clientID := ctxutil.GetClientID(request.Context())
	if clientID == "" {
		return "", validate.RequiredError("X-Client-ID", "This header is required")
	}
	return clientID, nil
}
