// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ctf-backend/models"
)

// accountsTable is quoted since USER is reserved in PostgreSQL.
const accountsTable = `"user"`

const (
	columnID              = "id"
	columnUsername        = "username"
	columnEmail           = "email"
	columnHashedPassword  = "hashed_password"
	columnIsEmailVerified = "is_email_verified"
	columnIsActive        = "is_active"
	columnRole            = "role"
	columnCreatedAt       = "created_at"
	columnUpdatedAt       = "updated_at"
)

// accountColumns is the scan order used by scanAccount.
var accountColumns = []string{
	columnID,
	columnUsername,
	columnEmail,
	columnHashedPassword,
	columnIsEmailVerified,
	columnIsActive,
	columnRole,
	columnCreatedAt,
	columnUpdatedAt,
}

var returningAccount = "RETURNING " + strings.Join(accountColumns, ", ")

func buildInsertAccountQuery(b sq.StatementBuilderType, account models.Account) (string, []any, error) {
	return b.Insert(accountsTable).
		Columns(
			columnUsername,
			columnEmail,
			columnHashedPassword,
			columnIsEmailVerified,
			columnIsActive,
			columnRole,
			columnCreatedAt,
		).
		Values(
			account.Username,
			account.Email,
			nullableString(account.PasswordHash),
			account.IsEmailVerified,
			account.IsActive,
			string(account.Role),
			account.CreatedAt,
		).
		Suffix(returningAccount).
		ToSql()
}

func buildSelectAccountsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(accountColumns...).
		From(accountsTable).
		OrderBy(columnCreatedAt, columnID).
		ToSql()
}

// buildSelectAccountByQuery selects the account whose column equals value.
func buildSelectAccountByQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	return b.Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

func buildExistsQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	return b.Select("1").
		From(accountsTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

// buildUpdateAccountQuery always sets updated_at, then every non-nil patch field.
func buildUpdateAccountQuery(b sq.StatementBuilderType, id int64, patch models.AccountPatch, updatedAt time.Time) (string, []any, error) {
	q := b.Update(accountsTable).Set(columnUpdatedAt, updatedAt)

	if patch.Username != nil {
		q = q.Set(columnUsername, *patch.Username)
	}
	if patch.Email != nil {
		q = q.Set(columnEmail, *patch.Email)
	}
	if patch.PasswordHash != nil {
		q = q.Set(columnHashedPassword, nullableString(*patch.PasswordHash))
	}
	if patch.Role != nil {
		q = q.Set(columnRole, string(*patch.Role))
	}
	if patch.IsActive != nil {
		q = q.Set(columnIsActive, *patch.IsActive)
	}

	return q.Where(sq.Eq{columnID: id}).
		Suffix(returningAccount).
		ToSql()
}

func buildDeleteAccountQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(accountsTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		account      models.Account
		passwordHash sql.NullString
		role         string
		updatedAt    sql.NullTime
	)

	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&passwordHash,
		&account.IsEmailVerified,
		&account.IsActive,
		&role,
		&account.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}

	account.PasswordHash = passwordHash.String
	account.Role = models.Role(role)
	if updatedAt.Valid {
		t := updatedAt.Time
		account.UpdatedAt = &t
	}

	return account, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
