// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-resource/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	collectionParam = "collection"
	idParam         = "id"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	// routes without authorization
	router.Post("/auth/login", h.login)

	// collection routes; protected collections require a token
	router.Route("/{"+collectionParam+"}", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/count", h.count)
		r.Get("/search", h.search)
		r.Get("/{"+idParam+"}", h.get)
		r.Put("/{"+idParam+"}", h.update)
		r.Delete("/{"+idParam+"}", h.remove)
	})

	return router
}
