// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"github.com/MKhiriev/go-rest-resource/internal/utils"
	"github.com/go-chi/chi/v5"
)

// accessTokenHeader carries the raw access token, without a scheme prefix.
const accessTokenHeader = "x-access-token"

// auth is an HTTP middleware that enforces token authentication on protected
// collections. Other collections pass through untouched.
//
// The token is read from the x-access-token header and validated via
// [service.AuthService.ParseToken]. On success the login is stored in the
// request context under [utils.LoginCtxKey]. Missing, expired or invalid
// tokens are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		collection := chi.URLParam(r, collectionParam)
		if !h.services.CollectionService.Protected(collection) {
			next.ServeHTTP(w, r)
			return
		}

		tokenString := r.Header.Get(accessTokenHeader)
		if tokenString == "" {
			writeError(w, r, ErrEmptyAccessToken)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().Str("login", token.Login).Str("collection", collection).Msg("access granted")

		ctx = context.WithValue(ctx, utils.LoginCtxKey, token.Login)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
