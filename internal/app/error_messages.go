// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// CTF backend handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "detail" field of HTTP error bodies. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidAccountID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidAccountID = "invalid account id"

	// MsgInvalidEmailPassword is returned by the login route for both an
	// unknown email and a wrong password.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgNotAuthenticated is returned when the Authorization header is
	// missing or garbled, or when the token subject no longer exists.
	MsgNotAuthenticated = "not authenticated"

	// MsgCouldNotValidateCredentials is returned for tokens that fail
	// verification.
	MsgCouldNotValidateCredentials = "could not validate credentials"

	MsgInactiveAccount = "inactive account"

	// MsgNotEnoughPrivileges is returned when a caller touches another
	// account or admin-only fields without the ADMIN role.
	MsgNotEnoughPrivileges = "the account doesn't have enough privileges"

	MsgAccountNotFound      = "account not found"
	MsgAccountAlreadyExists = "account with the specified username and/or email already exists"

	MsgNotFound         = "not found"
	MsgMethodNotAllowed = "method not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
