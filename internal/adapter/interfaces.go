// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a REST client of the accounts API. It is used by
// the accountctl command line tool.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ctf-backend/models"
)

// AccountsAdapter talks to a running accounts server. Authenticated calls
// send the token stored by Login or SetToken.
type AccountsAdapter interface {
	// SetToken stores a bearer token for subsequent authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Register creates a new account. No token is required.
	Register(ctx context.Context, create models.AccountCreate) (models.AccountResponse, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, login models.AccountLogin) (models.AccountResponse, error)

	Me(ctx context.Context) (models.AccountResponse, error)

	// List returns every account. Requires an admin token.
	List(ctx context.Context) ([]models.AccountResponse, error)

	Get(ctx context.Context, id int64) (models.AccountResponse, error)

	// Update sends only the fields present in update.
	Update(ctx context.Context, id int64, update models.AccountUpdate) (models.AccountResponse, error)

	// Delete removes the account and returns the server confirmation message.
	Delete(ctx context.Context, id int64) (string, error)
}
