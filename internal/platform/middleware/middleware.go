// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware provides the HTTP chain wrapped around every Ponydex route.

Order used by the server:

	RequestID -> StructuredLogger -> Timeout -> RateLimit -> PanicRecovery -> CORS -> ClientIdentity

Failures are written with [respond.Error], so middleware errors share the
envelope of the domain handlers.
*/
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/taibuivan/ponydex/internal/platform/constants"
	"github.com/taibuivan/ponydex/internal/platform/ctxutil"
	"github.com/taibuivan/ponydex/pkg/uuid"
)

// # Request Tracing

// RequestID reuses the caller's X-Request-ID or generates a UUIDv7, then echoes it.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get(constants.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New()
			}

			writer.Header().Set(constants.HeaderXRequestID, requestID)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithRequestID(request.Context(), requestID)))
		})
	}
}

// # Helpers

// RealIP returns the client address, preferring X-Real-IP then the first X-Forwarded-For hop.
func RealIP(request *http.Request) string {
	if ip := request.Header.Get(constants.HeaderXRealIP); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
