// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-ctf-backend/internal/app"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/service"
	"github.com/MKhiriev/go-ctf-backend/internal/store"
	"github.com/MKhiriev/go-ctf-backend/internal/utils"
	"github.com/MKhiriev/go-ctf-backend/models"
)

// errorMapping pairs a sentinel with its response. The first matching entry
// wins, so an error wrapping several sentinels always maps the same way:
// authentication, then authorization, then lookup, then input errors.
type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgNotAuthenticated},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgNotAuthenticated},
	{service.ErrAccountNotAuthenticated, http.StatusUnauthorized, app.MsgNotAuthenticated},
	{service.ErrCredentialMismatch, http.StatusUnauthorized, app.MsgInvalidEmailPassword},

	{service.ErrInvalidToken, http.StatusForbidden, app.MsgCouldNotValidateCredentials},
	{service.ErrInactiveAccount, http.StatusForbidden, app.MsgInactiveAccount},
	{service.ErrInsufficientPrivileges, http.StatusForbidden, app.MsgNotEnoughPrivileges},

	{store.ErrAccountNotFound, http.StatusNotFound, app.MsgAccountNotFound},
	{store.ErrAccountAlreadyExists, http.StatusConflict, app.MsgAccountAlreadyExists},

	// the message is taken from the error itself, see messageFromError
	{service.ErrValidationFailure, http.StatusBadRequest, ""},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidAccountID, http.StatusBadRequest, app.MsgInvalidAccountID},
}

func lookupError(err error) (errorMapping, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m, true
		}
	}
	return errorMapping{}, false
}

func statusFromError(err error) int {
	if m, ok := lookupError(err); ok {
		return m.status
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing detail for err. Unmapped errors
// never leak their text.
func messageFromError(err error) string {
	m, ok := lookupError(err)
	if !ok {
		return app.MsgInternalServerError
	}
	if m.target != service.ErrValidationFailure {
		return m.message
	}

	msg := err.Error()
	if i := strings.Index(msg, service.ErrValidationFailure.Error()); i >= 0 {
		return msg[i:]
	}
	return service.ErrValidationFailure.Error()
}

// writeError logs err and writes the mapped status with a JSON
// {"detail": ...} body. 401 responses carry a Bearer challenge.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteJSON(w, models.ErrorResponse{Detail: messageFromError(err)}, status)
}
