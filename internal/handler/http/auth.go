// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/service"
	"github.com/MKhiriev/go-ctf-backend/internal/store"
	"github.com/MKhiriev/go-ctf-backend/internal/utils"
	"github.com/MKhiriev/go-ctf-backend/models"
)

// login exchanges email and password for a bearer token. The token is
// returned both in the body and in the "Authorization" response header.
// An unknown email and a wrong password produce the same 401.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var login models.AccountLogin
	if err := decodeJSON(r, &login); err != nil {
		writeError(w, r, err)
		return
	}

	account, token, err := h.services.AuthService.Login(ctx, login)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			log.Debug().Err(err).Msg("login with unknown email")
			err = service.ErrCredentialMismatch
		}
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", account.ID).Msg("account successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.String()))
	utils.WriteJSON(w, models.NewAccountResponse(account, token.String()), http.StatusOK)
}
