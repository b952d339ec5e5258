// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ctf-backend/internal/app"
	"github.com/MKhiriev/go-ctf-backend/internal/utils"
	"github.com/MKhiriev/go-ctf-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIPrefix is the common prefix of every REST route.
const APIPrefix = "/api/v1"

// Init builds the router. Middleware order: panic recovery, trace id,
// access log, CORS, request timeout.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route(APIPrefix, func(r chi.Router) {
		// routes without authorization
		r.Get("/version", h.getServerVersion)
		r.Post("/login/access-token", h.login)
		r.Post("/users", h.createAccount)
		r.Post("/users/", h.createAccount)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/users/me", h.readMe)
			r.Get("/users/{id}", h.readAccount)
			r.Put("/users/{id}", h.updateAccount)
			r.Delete("/users/{id}", h.deleteAccount)

			r.Group(func(r chi.Router) {
				r.Use(h.adminOnly)

				r.Get("/users", h.listAccounts)
				r.Get("/users/", h.listAccounts)
			})
		})
	})

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgNotFound}, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
}
