// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Propagation
//
// Errors raised by the store itself (a [*pgconn.PgError]) keep their SQLSTATE
// code and message. Only the HTTP status is chosen here.
package dberr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/ponydex/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
//
// The resource name is used for the not-found message (e.g. "Pony not found").
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Errors reported by the store keep their code and message
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperr.Store(pgErr.Code, pgErr.Message, statusFor(pgErr.Code), err)
	}

	// 3. Everything else (network, pool exhaustion, scan mismatch) is internal
	return apperr.Internal(err)
}

// statusFor maps a SQLSTATE code to the HTTP status used for the response.
func statusFor(code string) int {
	switch {
	case code == pgerrcode.UniqueViolation:
		return http.StatusConflict
	case code == pgerrcode.CheckViolation,
		code == pgerrcode.NotNullViolation,
		code == pgerrcode.InvalidTextRepresentation,
		code == pgerrcode.StringDataRightTruncationDataException:
		return http.StatusBadRequest
	case pgerrcode.IsConnectionException(code):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
