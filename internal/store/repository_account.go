// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/models"
)

// accountRepository is the SQL implementation of [AccountRepository]. It
// runs on any [DB] dialect.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	db *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, log *logger.Logger) AccountRepository {
	log.Debug().Str("dialect", string(db.dialect)).Msg("creating account repository")
	return &accountRepository{db: db}
}

// CreateAccount inserts the account inside a transaction and returns the
// stored row via RETURNING.
//
// Error handling:
//   - unique violation on username or email → [ErrAccountAlreadyExists]
//     (the transaction is rolled back);
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(r.db.builder(), account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error building query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error beginning transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	created, err := scanAccount(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.errorClassifier.IsUniqueViolation(err) {
			log.Debug().Str("func", "*accountRepository.CreateAccount").Msg("username or email already taken")
			return models.Account{}, ErrAccountAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error committing transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountsQuery(r.db.builder())
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

func (r *accountRepository) FindAccountByID(ctx context.Context, id int64) (models.Account, error) {
	return r.findAccountBy(ctx, "*accountRepository.FindAccountByID", columnID, id)
}

func (r *accountRepository) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	return r.findAccountBy(ctx, "*accountRepository.FindAccountByUsername", columnUsername, username)
}

func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findAccountBy(ctx, "*accountRepository.FindAccountByEmail", columnEmail, email)
}

func (r *accountRepository) findAccountBy(ctx context.Context, funcName, column string, value any) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountByQuery(r.db.builder(), column, value)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// UpdateAccount issues one UPDATE ... RETURNING inside a transaction.
//
// Error handling:
//   - no row with the id → [ErrAccountNotFound];
//   - unique violation → [ErrAccountAlreadyExists], the row is left unchanged.
func (r *accountRepository) UpdateAccount(ctx context.Context, id int64, patch models.AccountPatch, updatedAt time.Time) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(r.db.builder(), id, patch, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateAccount").Msg("error building query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateAccount").Msg("error beginning transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	updated, err := scanAccount(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Account{}, ErrAccountNotFound
		case r.db.errorClassifier.IsUniqueViolation(err):
			log.Debug().Str("func", "*accountRepository.UpdateAccount").Msg("username or email already taken")
			return models.Account{}, ErrAccountAlreadyExists
		default:
			log.Err(err).Str("func", "*accountRepository.UpdateAccount").Msg("error updating account")
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateAccount").Msg("error committing transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return updated, nil
}

func (r *accountRepository) DeleteAccount(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "*accountRepository.ExistsByUsername", columnUsername, username)
}

func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "*accountRepository.ExistsByEmail", columnEmail, email)
}

func (r *accountRepository) exists(ctx context.Context, funcName, column string, value any) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsQuery(r.db.builder(), column, value)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	default:
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
