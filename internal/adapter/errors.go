// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors returned for non-2xx responses, wrapped with the server detail.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrMissingToken is returned by authenticated calls before Login or SetToken.
	ErrMissingToken = errors.New("no bearer token set")

	ErrInvalidBaseURL = errors.New("invalid base url")
)
