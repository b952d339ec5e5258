// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-ctf-backend/internal/validators"
)

var (
	// ErrValidationFailure marks rejected input. Validator messages are
	// safe to show to clients.
	ErrValidationFailure = validators.ErrValidationFailure

	ErrCredentialMismatch = errors.New("invalid email/password")

	ErrInvalidToken            = errors.New("could not validate credentials")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrAccountNotAuthenticated = errors.New("account is not authenticated")
	ErrInactiveAccount         = errors.New("inactive account")
	ErrInsufficientPrivileges  = errors.New("the account doesn't have enough privileges")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
