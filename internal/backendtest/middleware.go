// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var loginCtxKey = contextKey("login")

func loginFromContext(ctx context.Context) string {
	login, _ := ctx.Value(loginCtxKey).(string)
	return login
}

// withLogging attaches a request-scoped logger and logs one entry per
// request.
func (b *Backend) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := b.logger.With().
			Str("request_id", middleware.GetReqID(r.Context())).
			Logger()
		r = r.WithContext(log.WithContext(r.Context()))

		start := b.now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Int("size", ww.BytesWritten()).
			Send()
	})
}

// injectFailures answers with a status queued by [Backend.FailNext].
func (b *Backend) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status, ok := b.takeFailure(r.Method, r.URL.Path); ok {
			writeError(w, status, http.StatusText(status))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// auth rejects requests without a valid bearer token with 401 and stores
// the token subject in the request context.
func (b *Backend) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		tokenString, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}

		login, err := b.parseToken(tokenString)
		if err != nil {
			if errors.Is(err, errTokenExpired) {
				log.Err(err).Msg("token expired")
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, http.StatusUnauthorized, app.MsgAccessDenied)
			return
		}

		b.mu.Lock()
		_, known := b.accounts[login]
		b.mu.Unlock()
		if !known {
			writeError(w, http.StatusUnauthorized, app.MsgUnknownAccount)
			return
		}

		ctx := context.WithValue(r.Context(), loginCtxKey, login)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
