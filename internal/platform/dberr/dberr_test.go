// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ponydex/internal/platform/apperr"
	"github.com/taibuivan/ponydex/internal/platform/dberr"
)

/*
TestWrap verifies database errors are mapped without losing the store's code.
*/
func TestWrap(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    string
		status  int
		message string
	}{
		{
			name:    "no rows",
			err:     fmt.Errorf("scan: %w", pgx.ErrNoRows),
			code:    "NOT_FOUND",
			status:  http.StatusNotFound,
			message: "Pony not found",
		},
		{
			name:    "unique violation",
			err:     &pgconn.PgError{Code: pgerrcode.UniqueViolation, Message: "duplicate key value violates unique constraint"},
			code:    "STORE_23505",
			status:  http.StatusConflict,
			message: "duplicate key value violates unique constraint",
		},
		{
			name:    "check violation",
			err:     &pgconn.PgError{Code: pgerrcode.CheckViolation, Message: `new row for relation "pony" violates check constraint "pony_name_check"`},
			code:    "STORE_23514",
			status:  http.StatusBadRequest,
			message: `new row for relation "pony" violates check constraint "pony_name_check"`,
		},
		{
			name:    "connection failure",
			err:     &pgconn.PgError{Code: pgerrcode.ConnectionFailure, Message: "connection failure"},
			code:    "STORE_08006",
			status:  http.StatusServiceUnavailable,
			message: "connection failure",
		},
		{
			name:    "unknown store error",
			err:     &pgconn.PgError{Code: pgerrcode.DivisionByZero, Message: "division by zero"},
			code:    "STORE_22012",
			status:  http.StatusInternalServerError,
			message: "division by zero",
		},
		{
			name:    "not a database error",
			err:     errors.New("pool closed"),
			code:    "INTERNAL_ERROR",
			status:  http.StatusInternalServerError,
			message: "An unexpected error occurred",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := apperr.As(dberr.Wrap(tc.err, "Pony"))
			require.NotNil(t, appErr)

			assert.Equal(t, tc.code, appErr.Code)
			assert.Equal(t, tc.status, appErr.HTTPStatus)
			assert.Equal(t, tc.message, appErr.Message)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Pony"))
}
