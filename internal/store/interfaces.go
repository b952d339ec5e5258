// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists accounts. The SQL implementation runs on
// PostgreSQL (pgx) or SQLite (go-sqlite3) with squirrel-built queries;
// an in-memory implementation serves development and tests.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/account_repository_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ctf-backend/models"
)

// AccountRepository is the single source of truth for accounts.
//
// Lookups that match nothing return ErrAccountNotFound; writes that break
// username or email uniqueness return ErrAccountAlreadyExists.
type AccountRepository interface {
	// CreateAccount inserts account and returns it with the store-assigned
	// ID. Username, Email, PasswordHash, IsEmailVerified, IsActive, Role and
	// CreatedAt are taken from the argument.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// ListAccounts returns every account ordered by creation time, then ID.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	FindAccountByID(ctx context.Context, id int64) (models.Account, error)
	FindAccountByUsername(ctx context.Context, username string) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)

	// UpdateAccount applies the non-nil fields of patch, sets updated_at and
	// returns the stored result.
	UpdateAccount(ctx context.Context, id int64, patch models.AccountPatch, updatedAt time.Time) (models.Account, error)

	// DeleteAccount removes the account permanently.
	DeleteAccount(ctx context.Context, id int64) error

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
