// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/go-ctf-backend/internal/config"
	"github.com/rs/cors"
)

const wildcard = "*"

// allMethods replaces a "*" method entry; cors only matches listed methods.
var allMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// newCORS builds the cross-origin policy from cfg. It returns nil when no
// origin is allowed. Preflight requests are answered with 204 and never
// reach the routes.
func newCORS(cfg config.Server) *cors.Cors {
	if len(cfg.AllowedOrigins) == 0 {
		return nil
	}

	opts := cors.Options{
		AllowedOrigins:       cfg.AllowedOrigins,
		AllowedMethods:       cfg.AllowedMethods,
		AllowedHeaders:       cfg.AllowedHeaders,
		ExposedHeaders:       []string{"Authorization", traceIDHeader},
		AllowCredentials:     cfg.AllowCredentials,
		OptionsSuccessStatus: http.StatusNoContent,
	}
	if slices.Contains(cfg.AllowedMethods, wildcard) {
		opts.AllowedMethods = allMethods
	}
	// a credentialed response may not carry "*", so echo the origin instead
	if cfg.AllowCredentials && slices.Contains(cfg.AllowedOrigins, wildcard) {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(string) bool { return true }
	}

	return cors.New(opts)
}

func (h *Handler) withCORS(next http.Handler) http.Handler {
	if h.cors == nil {
		return next
	}
	return h.cors.Handler(next)
}
