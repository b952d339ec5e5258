// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ctf-backend/internal/service"
	"github.com/MKhiriev/go-ctf-backend/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, resolves the caller
// via [service.AuthService.Authorize] and stores the account in the request
// context with [utils.WithAccount].
//
// Rejections:
//   - 401 when the header is absent or not "Bearer <token>", or when the
//     token subject no longer exists.
//   - 403 when the token fails verification or the account is inactive.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		account, err := h.services.AuthService.Authorize(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAccount(ctx, account)))
	})
}

// adminOnly rejects callers without the ADMIN role. It must run after auth.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, err := callerFromRequest(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if !caller.IsAdmin() {
			writeError(w, r, service.ErrInsufficientPrivileges)
			return
		}

		next.ServeHTTP(w, r)
	})
}
