// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the account domain logic between the HTTP layer and
// the store: password hashing, credential checks, token issuing and the
// translation of store failures into domain errors.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ctf-backend/models"
)

// AccountService manages account lifecycle. Store sentinels
// (store.ErrAccountNotFound, store.ErrAccountAlreadyExists) are preserved
// through wrapping so callers can match them with errors.Is.
type AccountService interface {
	// CreateAccount hashes the password and stores a new active USER account.
	CreateAccount(ctx context.Context, create models.AccountCreate) (models.Account, error)

	// ReadAccounts lists every account ordered by creation.
	ReadAccounts(ctx context.Context) ([]models.Account, error)

	ReadAccountByID(ctx context.Context, id int64) (models.Account, error)
	ReadAccountByUsername(ctx context.Context, username string) (models.Account, error)
	ReadAccountByEmail(ctx context.Context, email string) (models.Account, error)

	// Authenticate resolves the account by email and checks the password.
	// An unknown email yields store.ErrAccountNotFound, a wrong password
	// ErrCredentialMismatch.
	Authenticate(ctx context.Context, login models.AccountLogin) (models.Account, error)

	// UpdateAccountByID applies only the supplied fields and refreshes updated_at.
	UpdateAccountByID(ctx context.Context, id int64, update models.AccountUpdate) (models.Account, error)

	// DeleteAccountByID removes the account and returns a confirmation message.
	DeleteAccountByID(ctx context.Context, id int64) (string, error)

	IsUsernameTaken(ctx context.Context, username string) (bool, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)

	// EnsureAdmin returns the ADMIN account for email, creating or promoting it.
	EnsureAdmin(ctx context.Context, username, email, password string) (models.Account, error)
}

// TokenService issues and verifies stateless bearer tokens.
type TokenService interface {
	// Issue signs a token for accountID. A zero ttl selects the configured
	// duration; a negative ttl issues a token without expiration.
	Issue(ctx context.Context, accountID int64, ttl time.Duration) (models.Token, error)

	// Verify returns the account id carried by a valid token or ErrInvalidToken.
	Verify(ctx context.Context, token string) (int64, error)
}

// AuthService ties credentials and tokens to accounts.
type AuthService interface {
	Login(ctx context.Context, login models.AccountLogin) (models.Account, models.Token, error)
	Authorize(ctx context.Context, token string) (models.Account, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
