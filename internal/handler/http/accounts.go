// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/service"
	"github.com/MKhiriev/go-ctf-backend/internal/utils"
	"github.com/MKhiriev/go-ctf-backend/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var create models.AccountCreate
	if err := decodeJSON(r, &create); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.CreateAccount(ctx, create)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", account.ID).Str("username", account.Username).Msg("account created")
	utils.WriteJSON(w, models.NewAccountResponse(account, ""), http.StatusCreated)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.AccountService.ReadAccounts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	responses := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, models.NewAccountResponse(account, ""))
	}

	utils.WriteJSON(w, responses, http.StatusOK)
}

func (h *Handler) readMe(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewAccountResponse(caller, ""), http.StatusOK)
}

func (h *Handler) readAccount(w http.ResponseWriter, r *http.Request) {
	id, err := h.authorizedAccountID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.ReadAccountByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewAccountResponse(account, ""), http.StatusOK)
}

// updateAccount applies a partial update. Role and isActive may only be
// changed by an admin, even on the caller's own account.
func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := h.authorizedAccountID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.AccountUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	caller, _ := utils.GetAccountFromContext(ctx)
	if update.TouchesPrivileges() && !caller.IsAdmin() {
		writeError(w, r, fmt.Errorf("%w: role and isActive are admin-only", service.ErrInsufficientPrivileges))
		return
	}

	account, err := h.services.AccountService.UpdateAccountByID(ctx, id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", account.ID).Int64("caller_id", caller.ID).Msg("account updated")
	utils.WriteJSON(w, models.NewAccountResponse(account, ""), http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := h.authorizedAccountID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	msg, err := h.services.AccountService.DeleteAccountByID(ctx, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", id).Msg("account deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: msg}, http.StatusOK)
}

// authorizedAccountID parses the {id} path parameter and checks that the
// caller is either that account or an admin.
func (h *Handler) authorizedAccountID(r *http.Request) (int64, error) {
	id, err := accountIDFromRequest(r)
	if err != nil {
		return 0, err
	}

	caller, err := callerFromRequest(r)
	if err != nil {
		return 0, err
	}

	if caller.ID != id && !caller.IsAdmin() {
		return 0, fmt.Errorf("%w: account %d cannot access account %d", service.ErrInsufficientPrivileges, caller.ID, id)
	}

	return id, nil
}

func accountIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAccountID, raw)
	}
	return id, nil
}

func callerFromRequest(r *http.Request) (models.Account, error) {
	caller, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		return models.Account{}, service.ErrAccountNotAuthenticated
	}
	return caller, nil
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
